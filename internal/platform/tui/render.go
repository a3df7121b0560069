package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dadispowerful/recycle/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(1, 3)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	modalHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderModal draws a centered box with a title, a body and a hint line.
func renderModal(width, height int, title, body, hint string) string {
	inner := min(max(width-10, 20), 60)

	parts := []string{modalTitleStyle.Render(title)}
	if body != "" {
		parts = append(parts, "", lipgloss.NewStyle().Width(inner).Render(body))
	}
	if hint != "" {
		parts = append(parts, "", modalHintStyle.Render(hint))
	}

	box := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderLevelUp is the between-levels screen with the fact for the new level.
func renderLevelUp(width, height, level int, fact string) string {
	body := fact
	if body == "" {
		body = "Nice sorting! Every item in the can is one less in the landfill."
	}
	return renderModal(width, height,
		fmt.Sprintf("Level %d", level),
		body,
		"Press Enter to play the next level")
}
