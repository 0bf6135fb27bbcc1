package puzzle

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/puzzle-forge/internal/config"
	"github.com/vovakirdan/puzzle-forge/internal/core"
)

func grid(rows [][]int) *core.Grid[int] {
	g, err := core.FromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func TestInstanceValidate(t *testing.T) {
	solution := grid([][]int{
		{1, 2},
		{2, 1},
	})

	tests := []struct {
		name    string
		puzzle  *core.Grid[int]
		wantErr bool
	}{
		{"matching with blanks", grid([][]int{{1, 0}, {0, 1}}), false},
		{"fully revealed", grid([][]int{{1, 2}, {2, 1}}), false},
		{"all blank", grid([][]int{{0, 0}, {0, 0}}), false},
		{"dimension mismatch", grid([][]int{{1, 0, 0}, {0, 1, 0}}), true},
		{"contradicting cell", grid([][]int{{2, 0}, {0, 1}}), true},
		{"missing grid", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := &Instance{Puzzle: tc.puzzle, Solution: solution}
			err := in.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrShapeMismatch) {
					t.Errorf("Validate() error = %v, expected ErrShapeMismatch", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestDeriveSeed(t *testing.T) {
	day := time.Date(2024, 3, 9, 15, 30, 0, 0, time.UTC)
	sameDay := time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)

	if DeriveSeed(day, config.Easy, 0) != DeriveSeed(sameDay, config.Easy, 0) {
		t.Error("seed must depend on the date, not the time of day")
	}
	if DeriveSeed(day, config.Easy, 0) == DeriveSeed(day, config.Hard, 0) {
		t.Error("different difficulties must derive different seeds")
	}
	if DeriveSeed(day, config.Easy, 0) == DeriveSeed(day, config.Easy, 1) {
		t.Error("attempt counter must change the seed")
	}
}

func TestParseSeed(t *testing.T) {
	if got := ParseSeed("12345"); got != 12345 {
		t.Errorf("ParseSeed(\"12345\") = %d, expected 12345", got)
	}
	if got := ParseSeed("-7"); got != -7 {
		t.Errorf("ParseSeed(\"-7\") = %d, expected -7", got)
	}
	a, b := ParseSeed("daily-dragon"), ParseSeed("daily-dragon")
	if a != b {
		t.Error("string seeds must hash deterministically")
	}
	if ParseSeed("daily-dragon") == ParseSeed("daily-dragoon") {
		t.Error("distinct strings should almost surely hash differently")
	}
}

func TestRegistry(t *testing.T) {
	// Register via a throwaway ID to avoid clashing with game packages.
	const id = "registry-test-game"
	if Exists(id) {
		t.Fatalf("%q unexpectedly registered", id)
	}
	Register(id, func() Generator { return stubGen{} })

	if !Exists(id) {
		t.Error("Exists() should report the registered game")
	}
	g, err := Create(id)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != id {
		t.Errorf("ID() = %q, expected %q", g.ID(), id)
	}

	found := false
	for _, info := range List() {
		if info.ID == id && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() does not include the registered game")
	}

	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
}

type stubGen struct{}

func (stubGen) ID() string    { return "registry-test-game" }
func (stubGen) Title() string { return "Stub" }
func (stubGen) Generate(config.Config, Options) (*Instance, error) {
	return nil, nil
}
