package ttt

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1
	_fullBoard         = 0b111111111
)

// The 3x3 game, owns its grid exclusively. Copying the struct by value
// gives an independent state, since every field is a value type.
type GameState struct {
	grid      Grid
	bitboards [2]uint16
	turn      Cell
	moveCount int
	terminal  bool
}

// Create a fresh game, with PlayerA to move
func NewGameState() *GameState {
	s := &GameState{}
	s.Reset()
	return s
}

// Reinitialize every field, the only way out of a terminal state
func (s *GameState) Reset() {
	s.grid = Grid{}
	s.bitboards = [2]uint16{}
	s.turn = PlayerA
	s.moveCount = 0
	s.terminal = false
}

// Make a deep copy of the state (has no shared memory with this object)
func (s *GameState) Clone() *GameState {
	clone := *s
	return &clone
}

func bitboardIndex(player Cell) int {
	if player == PlayerB {
		return _bitboardCircleIdx
	}
	return _bitboardCrossIdx
}

// Validate and make the move of the active player.
// Returns the grid after the move and the reward of the resulting position.
// On error, nothing is changed and the caller may retry with another move.
func (s *GameState) ApplyMove(m Move) (Grid, Reward, error) {
	if !m.Valid() {
		return s.grid, RewardNone, errors.Wrapf(ErrOutOfRange, "move %v", m)
	}
	if s.IsOver() {
		return s.grid, s.Reward(), errors.Wrapf(ErrGameOver, "move %v", m)
	}
	if s.grid[m.Row][m.Col] != Empty {
		return s.grid, RewardNone, errors.Wrapf(ErrInvalidMove, "move %v on %s", m, s.grid[m.Row][m.Col])
	}

	s.place(m)
	return s.grid, s.Evaluate(), nil
}

// Puts the active player's piece, accepts only checked moves
func (s *GameState) place(m Move) {
	s.grid[m.Row][m.Col] = s.turn
	s.bitboards[bitboardIndex(s.turn)] |= 1 << m.Index()
	s.turn = s.turn.Opponent()
	s.moveCount++
}

// Getters

func (s *GameState) Turn() Cell {
	return s.turn
}

func (s *GameState) MoveCount() int {
	return s.moveCount
}

// Set only once a line was completed, a full board doesn't set it
func (s *GameState) Terminal() bool {
	return s.terminal
}

func (s *GameState) Full() bool {
	return s.moveCount == 9
}

// No more moves can be made: either a completed line or a full board
func (s *GameState) IsOver() bool {
	return s.terminal || s.Full()
}

func (s *GameState) Status() Status {
	switch {
	case s.terminal:
		return Won
	case s.Full():
		return Drawn
	}
	return InProgress
}

// The player who completed a line, Empty otherwise
func (s *GameState) Winner() Cell {
	if !s.terminal {
		return Empty
	}
	return s.lineReward().Winner()
}

func (s *GameState) Grid() Grid {
	return s.grid
}

func (s *GameState) At(m Move) Cell {
	if !m.Valid() {
		return Empty
	}
	return s.grid[m.Row][m.Col]
}

func (s *GameState) String() string {
	return s.grid.String()
}

func (g Grid) String() string {
	builder := strings.Builder{}
	for i, row := range g {
		if i > 0 {
			builder.WriteString("---+---+---\n")
		}
		for j, cell := range row {
			if j > 0 {
				builder.WriteString("|")
			}
			builder.WriteString(" " + cell.Symbol() + " ")
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
