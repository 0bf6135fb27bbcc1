package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzle-forge/internal/config"
	"github.com/vovakirdan/puzzle-forge/internal/games/mirrors"
	"github.com/vovakirdan/puzzle-forge/internal/puzzle"
	"github.com/vovakirdan/puzzle-forge/internal/storage"
)

var (
	genDifficulty string
	genSize       int
	genSolution   bool
	genStore      bool
)

var genCmd = &cobra.Command{
	Use:   "gen <game>",
	Short: "Generate a puzzle",
	Long: `Generate a puzzle for the given game from a seed.

With no --seed, the daily seed for today's date and difficulty is used,
so everyone generating today's puzzle gets the same board.

Examples:
  forge gen sudoku
  forge gen sudoku --difficulty hard --seed 12345
  forge gen latin --size 6 --solution
  forge gen mirrors --seed friday-night --store`,
	Args: cobra.ExactArgs(1),
	Run:  runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "normal", "Difficulty: easy, normal, hard")
	genCmd.Flags().IntVar(&genSize, "size", 0, "Grid size override (0 = from config)")
	genCmd.Flags().BoolVar(&genSolution, "solution", false, "Print the solution as well")
	genCmd.Flags().BoolVar(&genStore, "store", false, "Record the puzzle in the history database")
}

// resolveSeed turns the --seed flag into a concrete seed: empty means
// today's daily seed for the difficulty.
func resolveSeed(d config.Difficulty) int64 {
	if flagSeed != "" {
		return puzzle.ParseSeed(flagSeed)
	}
	return puzzle.DeriveSeed(time.Now(), d, 0)
}

func runGen(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !puzzle.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'forge list' to see available games.")
		os.Exit(1)
	}

	difficulty, err := config.ParseDifficulty(genDifficulty)
	if err != nil {
		logger.Fatal("invalid difficulty", "err", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}

	gen, err := puzzle.Create(gameID)
	if err != nil {
		logger.Fatal("cannot create generator", "err", err)
	}

	opts := puzzle.Options{
		Seed:       resolveSeed(difficulty),
		Difficulty: difficulty,
		Size:       genSize,
	}

	in, err := gen.Generate(cfg, opts)
	if err != nil {
		logger.Fatal("generation failed", "game", gameID, "err", err)
	}
	if err := in.Validate(); err != nil {
		logger.Fatal("generated instance is inconsistent", "game", gameID, "err", err)
	}

	fmt.Printf("%s  difficulty=%s  seed=%d  unique=%v\n\n",
		gen.Title(), in.Meta.Difficulty, in.Meta.Seed, in.Meta.Unique)
	fmt.Println(renderGrid(in.Puzzle, gameID))

	if gameID == "mirrors" {
		printClues(mirrors.AllClues(in.Solution))
	}

	if genSolution {
		fmt.Println("Solution:")
		fmt.Println(renderGrid(in.Solution, gameID))
	}

	if genStore {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Fatal("cannot open history database", "err", err)
		}
		defer store.Close()

		id, err := store.SaveInstance(in.Meta)
		if err != nil {
			logger.Fatal("cannot record puzzle", "err", err)
		}
		logger.Info("puzzle recorded", "id", id, "game", gameID)
	}
}

// printClues prints the border visibility counts for a mirrors board.
func printClues(c mirrors.Clues) {
	fmt.Printf("Clues  top=%v bottom=%v left=%v right=%v\n\n",
		c.Top, c.Bottom, c.Left, c.Right)
}
