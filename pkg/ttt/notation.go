package ttt

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const StartingPosition string = "3/3/3 x"

// String notation of the position, much like FEN for chess:
//
//	<row>/<row>/<row> <turn>
//
// Each row lists its cells from the left, 'x' and 'o' for the pieces and
// a digit for a run of empty cells. <turn> is either 'x' or 'o'.
//
// Examples:
//
// * 3/3/3 x (starting position)
//
// * xox/xoo/o1x x
func (s *GameState) Notation() string {
	builder := strings.Builder{}

	for rowIndex, row := range s.grid {
		counter := 0
		for _, cell := range row {
			if cell == Empty {
				counter++
				continue
			}
			if counter > 0 {
				builder.WriteString(fmt.Sprintf("%d", counter))
				counter = 0
			}
			builder.WriteString(cell.String())
		}
		if counter > 0 {
			builder.WriteString(fmt.Sprintf("%d", counter))
		}
		if rowIndex < 2 {
			builder.WriteByte('/')
		}
	}

	builder.WriteByte(' ')
	builder.WriteString(s.turn.String())
	return builder.String()
}

// Parse the notation into a new state, see Notation for the format.
// Piece counts must match the side to move, x always moves first,
// and only the player who moved last may have a line.
func FromNotation(notation string) (*GameState, error) {
	sections := strings.Fields(notation)
	if len(sections) != 2 {
		return nil, errors.Errorf("notation %q: expected 2 sections, got %d", notation, len(sections))
	}

	rows := strings.Split(sections[0], "/")
	if len(rows) != 3 {
		return nil, errors.Errorf("notation %q: expected 3 rows, got %d", notation, len(rows))
	}

	s := NewGameState()
	counts := [3]int{}

	for r, row := range rows {
		col := 0
		for _, ch := range row {
			switch {
			case ch >= '1' && ch <= '3':
				col += int(ch - '0')
			case ch == 'x' || ch == 'o':
				if col > 2 {
					return nil, errors.Errorf("notation %q: row %d is too long", notation, r)
				}
				piece := PlayerA
				if ch == 'o' {
					piece = PlayerB
				}
				m := Move{Row: uint8(r), Col: uint8(col)}
				s.grid[m.Row][m.Col] = piece
				s.bitboards[bitboardIndex(piece)] |= 1 << m.Index()
				counts[piece]++
				col++
			default:
				return nil, errors.Errorf("notation %q: unexpected character %q in row %d", notation, ch, r)
			}
		}
		if col != 3 {
			return nil, errors.Errorf("notation %q: row %d has %d cells", notation, r, col)
		}
	}

	switch sections[1] {
	case "x":
		s.turn = PlayerA
		if counts[PlayerA] != counts[PlayerB] {
			return nil, errors.Errorf("notation %q: x to move requires equal piece counts", notation)
		}
	case "o":
		s.turn = PlayerB
		if counts[PlayerA] != counts[PlayerB]+1 {
			return nil, errors.Errorf("notation %q: o to move requires one more x than o", notation)
		}
	default:
		return nil, errors.Errorf("notation %q: invalid turn %q", notation, sections[1])
	}

	// The player with a line made the last move, so the other one is to move
	crossLine := hasLine(s.bitboards[_bitboardCrossIdx])
	circleLine := hasLine(s.bitboards[_bitboardCircleIdx])
	switch {
	case crossLine && circleLine:
		return nil, errors.Errorf("notation %q: both players have a line", notation)
	case crossLine && s.turn != PlayerB:
		return nil, errors.Errorf("notation %q: x has a line, o must be to move", notation)
	case circleLine && s.turn != PlayerA:
		return nil, errors.Errorf("notation %q: o has a line, x must be to move", notation)
	}

	s.moveCount = counts[PlayerA] + counts[PlayerB]
	s.Evaluate()
	return s, nil
}
