// Package tui provides the Bubble Tea integration for the recycling game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dadispowerful/recycle/internal/config"
	"github.com/dadispowerful/recycle/internal/core"
	"github.com/dadispowerful/recycle/internal/facts"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FactsMsg delivers the facts picked for a run.
type FactsMsg struct {
	Facts []string
	Err   error // Set when the remote source failed and the fallback was used
}

// fetchFactsCmd fetches and picks facts off the frame loop. The remote
// source is tried first; the embedded list is the fallback.
func fetchFactsCmd(cfg config.FactsConfig, seed int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
		defer cancel()

		var remoteErr error
		if cfg.URL != "" {
			list, err := facts.HTTP{URL: cfg.URL}.Fetch(ctx)
			if err == nil {
				return FactsMsg{Facts: pick(list, cfg.Count, seed)}
			}
			remoteErr = err
		}

		list, err := facts.Embedded{}.Fetch(ctx)
		if err != nil {
			return FactsMsg{Err: err}
		}
		return FactsMsg{Facts: pick(list, cfg.Count, seed), Err: remoteErr}
	}
}

func pick(list []string, n int, seed int64) []string {
	if n <= 0 {
		n = len(list)
	}
	return facts.Pick(core.NewSimpleRNG(seed), list, n)
}
