package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord represents a 2D grid coordinate. Row increases downward, Col
// increases to the right.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Key returns the canonical string encoding of the coordinate, suitable as
// a set or map key shared with external puzzle records.
func (c Coord) Key() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// ParseKey decodes a coordinate key produced by Key.
func ParseKey(key string) (Coord, error) {
	row, col, ok := strings.Cut(key, ",")
	if !ok {
		return Coord{}, fmt.Errorf("core: malformed cell key %q", key)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return Coord{}, fmt.Errorf("core: malformed cell key %q: %w", key, err)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return Coord{}, fmt.Errorf("core: malformed cell key %q: %w", key, err)
	}
	return Coord{Row: r, Col: c}, nil
}
