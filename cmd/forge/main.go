// forge is a command-line generator for seeded grid puzzles.
//
// Usage:
//
//	forge list                - List available games
//	forge gen <game>          - Generate a puzzle
//	forge pick                - Pick a puzzle from a precomputed dataset
//	forge history [game]      - Show generation history
//
// Global flags:
//
//	--seed <value>    - RNG seed; a decimal is used as-is, any other text is hashed
//	                    (empty = today's daily seed)
//	--db <path>       - Path to history database (default: ~/.forge/history.db)
//	--config <path>   - Path to a generation config file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/puzzle-forge/internal/games/latin"
	_ "github.com/vovakirdan/puzzle-forge/internal/games/mirrors"
	_ "github.com/vovakirdan/puzzle-forge/internal/games/pyramid"
	_ "github.com/vovakirdan/puzzle-forge/internal/games/sudoku"
)

var (
	// Global flags
	flagSeed   string
	flagDBPath string
	flagConfig string
)

// logger writes diagnostics to stderr so puzzle output on stdout stays
// pipeable.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Puzzle Forge - Generate seeded grid puzzles in your terminal",
	Long: `Puzzle Forge generates grid puzzles from a seed: the same seed always
produces the same puzzle, so boards can be shared, replayed, and stored
by seed alone.

Available commands:
  list     - Show all available games
  gen      - Generate a puzzle for a game
  pick     - Pick a puzzle from a precomputed dataset
  history  - View generation history

Examples:
  forge list
  forge gen sudoku --difficulty hard
  forge gen latin --seed daily-practice --size 6
  forge pick --dataset puzzles.json --filter difficulty=easy
  forge history sudoku`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "RNG seed (empty = daily seed from today's date)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.forge/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to generation config file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(historyCmd)
}
