package config

import (
	_ "embed"
)

//go:embed defaults/forge.yaml
var defaultYAML []byte

// Default returns the built-in generation configuration, used when no
// config file is found and as the last-resort fallback if the embedded
// YAML fails to parse.
func Default() Config {
	return Config{
		Sudoku: SudokuConfig{
			Givens: IntByDifficulty{Easy: 40, Normal: 34, Hard: 28},
		},
		Latin: LatinConfig{
			Size:      IntByDifficulty{Easy: 4, Normal: 5, Hard: 6},
			ClueRatio: FloatByDifficulty{Easy: 0.6, Normal: 0.45, Hard: 0.35},
		},
		Pyramid: PyramidConfig{
			MaxAttempts: 25,
			MaxNodes:    200000,
		},
		Mirrors: MirrorsConfig{
			Size:          IntByDifficulty{Easy: 4, Normal: 5, Hard: 7},
			MirrorDensity: FloatByDifficulty{Easy: 0.2, Normal: 0.3, Hard: 0.35},
		},
	}
}
