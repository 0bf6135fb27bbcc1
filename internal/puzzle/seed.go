package puzzle

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/puzzle-forge/internal/config"
	"github.com/vovakirdan/puzzle-forge/internal/core"
)

// DeriveSeed produces the seed for a daily puzzle: a stable hash of the
// calendar date, difficulty, and attempt counter, so every player who asks
// for the same day's puzzle gets the same board and a retry gets a fresh
// one.
func DeriveSeed(date time.Time, d config.Difficulty, attempt int) int64 {
	key := fmt.Sprintf("%s-%s-%d", date.Format("2006-01-02"), d, attempt)
	return core.StringToSeed(key)
}

// ParseSeed interprets user seed input: a decimal integer is used
// directly, anything else is hashed onto the seed domain. Both forms are
// deterministic, so seeds round-trip through display and sharing.
func ParseSeed(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return core.StringToSeed(s)
}
