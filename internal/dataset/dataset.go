// Package dataset consumes precomputed puzzle collections produced by
// external pipelines. Records are loaded once per cache, filtered by
// attribute equality, and selected deterministically with a seeded RNG.
package dataset

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/vovakirdan/puzzle-forge/internal/core"
)

// Record is one precomputed puzzle as published in a dataset file. The
// grid/clue/solution payloads are opaque to this package; games decode
// them with their own shapes.
type Record struct {
	ID         int             `json:"id"`
	Seed       int64           `json:"seed"`
	Difficulty string          `json:"difficulty"`
	Size       int             `json:"size"`
	Grid       json.RawMessage `json:"grid"`
	Clues      json.RawMessage `json:"clues"`
	Solution   json.RawMessage `json:"solution"`
}

// attr returns the record's value for a filterable attribute key.
func (r Record) attr(key string) (string, bool) {
	switch key {
	case "id":
		return strconv.Itoa(r.ID), true
	case "difficulty":
		return r.Difficulty, true
	case "size":
		return strconv.Itoa(r.Size), true
	default:
		return "", false
	}
}

// Filters maps attribute names to required values.
type Filters map[string]string

// Pick filters records by attribute equality and selects one with the
// seeded RNG. Filters are applied one at a time in sorted key order; any
// filter that would eliminate the whole remaining set is relaxed (skipped)
// instead, so a miss on one attribute degrades the match rather than
// producing nothing. Returns false only when records is empty.
func Pick(records []Record, filters Filters, rng *core.SeededRand) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	remaining := records
	for _, key := range keys {
		want := filters[key]
		var narrowed []Record
		for _, r := range remaining {
			if got, ok := r.attr(key); ok && got == want {
				narrowed = append(narrowed, r)
			}
		}
		if len(narrowed) > 0 {
			remaining = narrowed
		}
	}

	return remaining[rng.Intn(len(remaining))], true
}
