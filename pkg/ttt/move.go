package ttt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A single (row, column) coordinate on the board
type Move struct {
	Row uint8
	Col uint8
}

// Create a move from the row-major index (0..8)
func MoveFromIndex(index int) Move {
	return Move{Row: uint8(index / 3), Col: uint8(index % 3)}
}

// Both coordinates are inside the board
func (m Move) Valid() bool {
	return m.Row < 3 && m.Col < 3
}

// Row-major index of the move
func (m Move) Index() int {
	return int(m.Row)*3 + int(m.Col)
}

// Keypad number of the move, 1 for (0, 0) up to 9 for (2, 2)
func (m Move) Keypad() int {
	return m.Index() + 1
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Parse a move typed on the keypad, "1" is the top left corner,
// "9" the bottom right one
func ParseKeypad(s string) (Move, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 9 {
		return Move{}, errors.Wrapf(ErrOutOfRange, "keypad %q, choose from [1 - 9]", s)
	}
	return MoveFromIndex(n - 1), nil
}

type MoveList struct {
	Moves [9]Move
	size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv Move) {
	ml.Moves[ml.size] = mv
	ml.size++
}

// Get the actual slice of the moves
func (ml *MoveList) Slice() []Move {
	return ml.Moves[:ml.size]
}

func (ml *MoveList) Size() int {
	return int(ml.size)
}

func (ml *MoveList) Contains(mv Move) bool {
	for _, m := range ml.Slice() {
		if m == mv {
			return true
		}
	}
	return false
}

func (ml *MoveList) String() string {
	if ml.size == 0 {
		return "empty"
	}

	strMoves := make([]string, ml.size)
	for i, m := range ml.Slice() {
		strMoves[i] = m.String()
	}
	return strings.Join(strMoves, " ")
}
