// Package facts supplies the short sustainability facts shown between levels.
//
// Facts come from a Source. The embedded source never fails; the HTTP source
// reads the JSON document served by the game's content endpoint. Fetching is
// always done off the frame loop by the caller.
package facts

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dadispowerful/recycle/internal/core"
)

//go:embed facts.yaml
var embeddedYAML []byte

// ErrNoFacts is returned when a source yields an empty list.
var ErrNoFacts = errors.New("facts: no facts available")

// Source produces the full list of known facts.
type Source interface {
	Fetch(ctx context.Context) ([]string, error)
}

// Embedded is the built-in fact list.
type Embedded struct{}

// Fetch decodes the embedded YAML list.
func (Embedded) Fetch(context.Context) ([]string, error) {
	var doc struct {
		Facts []string `yaml:"facts"`
	}
	if err := yaml.Unmarshal(embeddedYAML, &doc); err != nil {
		return nil, fmt.Errorf("facts: cannot decode embedded list: %w", err)
	}
	if len(doc.Facts) == 0 {
		return nil, ErrNoFacts
	}
	return doc.Facts, nil
}

// HTTP fetches facts from a JSON endpoint shaped like
// {"Questions": {"0": "...", "1": "..."}}.
type HTTP struct {
	URL    string
	Client *http.Client
}

// Fetch performs one GET request. Entries are returned in numeric key order.
func (h HTTP) Fetch(ctx context.Context) ([]string, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("facts: cannot build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("facts: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("facts: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("facts: cannot read response: %w", err)
	}
	return decodeQuestions(body)
}

// decodeQuestions extracts the "Questions" map in numeric key order.
func decodeQuestions(data []byte) ([]string, error) {
	var doc struct {
		Questions map[string]string `json:"Questions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("facts: cannot decode response: %w", err)
	}
	if len(doc.Questions) == 0 {
		return nil, ErrNoFacts
	}

	keys := make([]string, 0, len(doc.Questions))
	for k := range doc.Questions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, doc.Questions[k])
	}
	return out, nil
}

// Pick draws up to n distinct facts in random order.
func Pick(rng *core.SimpleRNG, all []string, n int) []string {
	if n > len(all) {
		n = len(all)
	}
	idx := make([]int, len(all))
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: the first n slots end up shuffled.
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, all[idx[i]])
	}
	return out
}

// ForLevel returns the fact to show after reaching level (2 is the first
// level-up). It cycles when the run outlasts the list.
func ForLevel(list []string, level int) string {
	if len(list) == 0 || level < 2 {
		return ""
	}
	return list[(level-2)%len(list)]
}
