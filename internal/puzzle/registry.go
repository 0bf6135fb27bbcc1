package puzzle

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/puzzle-forge/internal/config"
)

// Options carries the externally-visible generation parameters. Seed fully
// determines every random decision a generator makes.
type Options struct {
	Seed       int64
	Difficulty config.Difficulty
	// Size overrides the config's difficulty-derived grid size when > 0.
	// Generators that have a fixed board ignore it.
	Size int
}

// Generator is the interface all puzzle generators implement. Generators
// contain pure logic: the same Options must always produce the same
// Instance.
type Generator interface {
	// ID returns a unique identifier for this game (e.g., "sudoku").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Generate builds a solved grid for opts.Seed, removes information to
	// form the player-facing puzzle, and returns the pair.
	Generate(cfg config.Config, opts Options) (*Instance, error)
}

// Info contains metadata about a registered game.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new generator instance.
type Factory func() Generator

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a generator factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("puzzle: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a generator by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("puzzle: unknown game %q", id)
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
