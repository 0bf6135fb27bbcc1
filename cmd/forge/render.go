package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/puzzle-forge/internal/core"
	"github.com/vovakirdan/puzzle-forge/internal/games/mirrors"
	"github.com/vovakirdan/puzzle-forge/internal/puzzle"
)

var (
	cellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	blankStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// mirrorSymbols maps mirrors cell codes to board glyphs. Blank cells are
// hidden occupants the player has to deduce.
var mirrorSymbols = map[int]string{
	puzzle.Blank:            " ?",
	mirrors.Empty:           " .",
	mirrors.MirrorSlash:     " /",
	mirrors.MirrorBackslash: ` \`,
	mirrors.Ghost:           " G",
	mirrors.Vampire:         " V",
	mirrors.Zombie:          " Z",
}

// renderGrid formats a grid for the terminal, styling cells when stdout is
// a TTY and falling back to plain text when piped.
func renderGrid(g *core.Grid[int], gameID string) string {
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			b.WriteString(renderCell(g.Cells[r][c], gameID, styled))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderCell(v int, gameID string, styled bool) string {
	var text string
	if gameID == "mirrors" {
		if s, ok := mirrorSymbols[v]; ok {
			text = s
		} else {
			text = " ?"
		}
	} else if v == puzzle.Blank {
		text = " ."
	} else {
		text = fmt.Sprintf("%2d", v)
	}

	if !styled {
		return text
	}
	if v == puzzle.Blank {
		return blankStyle.Render(text)
	}
	return cellStyle.Render(text)
}
