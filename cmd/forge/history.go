package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzle-forge/internal/puzzle"
	"github.com/vovakirdan/puzzle-forge/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show generation history",
	Long: `Display recently generated puzzles, newest first.

With a game argument only that game's history is shown; every entry
carries the seed needed to regenerate the puzzle.

Examples:
  forge history
  forge history sudoku --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum entries to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !puzzle.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'forge list' to see available games.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open history database", "err", err)
	}
	defer store.Close()

	entries, err := store.History(gameID, historyLimit)
	if err != nil {
		logger.Fatal("cannot read history", "err", err)
	}

	if len(entries) == 0 {
		fmt.Println("No puzzles recorded yet.")
		fmt.Println()
		fmt.Println("Generate one with 'forge gen <game> --store'.")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-10s  %-20s  %-4s  %-6s  %s\n",
		"Game", "Difficulty", "Seed", "Size", "Unique", "Date")
	fmt.Printf("  %-8s  %-10s  %-20s  %-4s  %-6s  %s\n",
		"----", "----------", "----", "----", "------", "----")

	// Print entries
	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-10s  %-20d  %-4d  %-6v  %s\n",
			e.Game, e.Difficulty, e.Seed, e.Size, e.Unique, dateStr)
	}
}
