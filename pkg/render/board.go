package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"github.com/muesli/termenv"
)

const (
	_Separator = "---+---+---"
	// ANSI colors, 4 is blue, 1 is red
	_ColorPlayerA = "4"
	_ColorPlayerB = "1"
)

// Prints the board with coloured marks, empty cells show their keypad number
type BoardRenderer struct {
	out *termenv.Output
}

func NewBoardRenderer(w io.Writer, opts ...termenv.OutputOption) *BoardRenderer {
	return &BoardRenderer{out: termenv.NewOutput(w, opts...)}
}

func (br *BoardRenderer) cell(grid ttt.Grid, row, col int) string {
	switch c := grid[row][col]; c {
	case ttt.PlayerA:
		return br.out.String(c.Symbol()).Foreground(br.out.Color(_ColorPlayerA)).Bold().String()
	case ttt.PlayerB:
		return br.out.String(c.Symbol()).Foreground(br.out.Color(_ColorPlayerB)).Bold().String()
	}

	if br.out.Profile == termenv.Ascii {
		return " "
	}
	keypad := strconv.Itoa(ttt.Move{Row: uint8(row), Col: uint8(col)}.Keypad())
	return br.out.String(keypad).Faint().String()
}

// Render the grid, in the same layout as ttt.Grid.String
func (br *BoardRenderer) Render(grid ttt.Grid) string {
	builder := strings.Builder{}
	for row := range 3 {
		if row > 0 {
			builder.WriteString(_Separator + "\n")
		}
		for col := range 3 {
			if col > 0 {
				builder.WriteString("|")
			}
			builder.WriteString(" " + br.cell(grid, row, col) + " ")
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

func (br *BoardRenderer) Print(grid ttt.Grid) error {
	_, err := fmt.Fprint(br.out, br.Render(grid))
	return err
}
