package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/puzzle-forge/internal/config"
	"github.com/vovakirdan/puzzle-forge/internal/core"
	"github.com/vovakirdan/puzzle-forge/internal/dataset"
)

var (
	pickDataset string
	pickFilters []string
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a puzzle from a precomputed dataset",
	Long: `Pick one puzzle from a dataset published by a generation pipeline.

The dataset is a JSON file or URL with a {"puzzles": [...], "count": N}
envelope. Filters narrow the candidates by attribute equality; a filter
that would eliminate every candidate is relaxed instead of failing, so
you always get the closest available puzzle. Selection is seeded, so the
same seed and filters pick the same record.

Examples:
  forge pick --dataset puzzles.json
  forge pick --dataset https://example.com/daily.json --filter difficulty=hard
  forge pick --dataset puzzles.json --filter size=9 --filter difficulty=easy`,
	Run: runPick,
}

func init() {
	pickCmd.Flags().StringVar(&pickDataset, "dataset", "", "Dataset file path or http(s) URL (required)")
	pickCmd.Flags().StringArrayVar(&pickFilters, "filter", nil, "Attribute filter key=value (repeatable)")
	pickCmd.MarkFlagRequired("dataset")
}

func runPick(cmd *cobra.Command, args []string) {
	filters := dataset.Filters{}
	for _, f := range pickFilters {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			fmt.Fprintf(os.Stderr, "Error: bad filter %q, expected key=value\n", f)
			os.Exit(1)
		}
		filters[key] = value
	}

	cache := dataset.NewCache(pickDataset, logger)
	records := cache.Load(cmd.Context())

	rng := core.NewRand(resolveSeed(config.Normal))
	rec, ok := dataset.Pick(records, filters, rng)
	if !ok {
		logger.Fatal("no puzzles available", "dataset", pickDataset)
	}

	fmt.Printf("Picked puzzle id=%d  difficulty=%s  size=%d  seed=%d\n\n",
		rec.ID, rec.Difficulty, rec.Size, rec.Seed)
	if len(rec.Grid) > 0 {
		fmt.Printf("grid: %s\n", rec.Grid)
	}
	if len(rec.Clues) > 0 {
		fmt.Printf("clues: %s\n", rec.Clues)
	}
}
