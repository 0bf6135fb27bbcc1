// Package config provides YAML-based generation parameters and difficulty
// tables for the puzzle generators.
package config

import "fmt"

// Difficulty is a named difficulty level. It selects rows from the
// per-game density tables; everything beyond that fixed table lookup
// (solver-based grading and the like) is out of scope.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easy, Normal, Hard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// IntByDifficulty is an exhaustive difficulty-indexed integer table.
// Using a struct instead of a map means a missing level is a compile-time
// hole, not a silent zero at runtime.
type IntByDifficulty struct {
	Easy   int `yaml:"easy"`
	Normal int `yaml:"normal"`
	Hard   int `yaml:"hard"`
}

// For returns the table entry for d, defaulting to Normal.
func (t IntByDifficulty) For(d Difficulty) int {
	switch d {
	case Easy:
		return t.Easy
	case Hard:
		return t.Hard
	default:
		return t.Normal
	}
}

// FloatByDifficulty is an exhaustive difficulty-indexed float table.
type FloatByDifficulty struct {
	Easy   float64 `yaml:"easy"`
	Normal float64 `yaml:"normal"`
	Hard   float64 `yaml:"hard"`
}

// For returns the table entry for d, defaulting to Normal.
func (t FloatByDifficulty) For(d Difficulty) float64 {
	switch d {
	case Easy:
		return t.Easy
	case Hard:
		return t.Hard
	default:
		return t.Normal
	}
}

// SudokuConfig parametrizes the sudoku generator.
type SudokuConfig struct {
	// Givens is the target number of clues left after carving.
	Givens IntByDifficulty `yaml:"givens"`
}

// LatinConfig parametrizes the Latin-square puzzle generator.
type LatinConfig struct {
	Size IntByDifficulty `yaml:"size"`
	// ClueRatio is the fraction of cells kept as givens.
	ClueRatio FloatByDifficulty `yaml:"clue_ratio"`
}

// PyramidConfig parametrizes the card-elimination deal generator.
type PyramidConfig struct {
	// MaxAttempts bounds reshuffles while looking for a solvable deal.
	MaxAttempts int `yaml:"max_attempts"`
	// MaxNodes caps the memoized search so unsolvable deals cannot run away.
	MaxNodes int `yaml:"max_nodes"`
}

// MirrorsConfig parametrizes the mirror-visibility puzzle generator.
type MirrorsConfig struct {
	Size          IntByDifficulty   `yaml:"size"`
	MirrorDensity FloatByDifficulty `yaml:"mirror_density"`
}

// Config is the root generation configuration.
type Config struct {
	Sudoku  SudokuConfig  `yaml:"sudoku"`
	Latin   LatinConfig   `yaml:"latin"`
	Pyramid PyramidConfig `yaml:"pyramid"`
	Mirrors MirrorsConfig `yaml:"mirrors"`
}
