// Package registry maps game IDs to factories. Games register in init(),
// so the CLI, the SSH server and the menu can create them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dadispowerful/recycle/internal/core"
)

// Game is what the terminal front end drives. Implementations hold no
// Bubble Tea state; the platform owns timing, input and drawing.
type Game interface {
	// ID is the key used on the command line and in the scores table.
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset starts a new run for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions and pointer events
	// collected since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the run into dst, which is cleared beforehand.
	Render(dst *core.Screen)

	// State reports score, lives, level and the pause flags.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
