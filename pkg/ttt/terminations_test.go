package ttt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Place the pieces directly, without checking turns or counts
func stateWith(pieces map[Cell][]Move) *GameState {
	s := NewGameState()
	for piece, moves := range pieces {
		for _, m := range moves {
			s.grid[m.Row][m.Col] = piece
			s.bitboards[bitboardIndex(piece)] |= 1 << m.Index()
			s.moveCount++
		}
	}
	return s
}

func line(cells ...[2]uint8) []Move {
	moves := make([]Move, len(cells))
	for i, c := range cells {
		moves[i] = Move{Row: c[0], Col: c[1]}
	}
	return moves
}

var winningLines = map[string][]Move{
	"column 0":      line([2]uint8{0, 0}, [2]uint8{1, 0}, [2]uint8{2, 0}),
	"column 1":      line([2]uint8{0, 1}, [2]uint8{1, 1}, [2]uint8{2, 1}),
	"column 2":      line([2]uint8{0, 2}, [2]uint8{1, 2}, [2]uint8{2, 2}),
	"row 0":         line([2]uint8{0, 0}, [2]uint8{0, 1}, [2]uint8{0, 2}),
	"row 1":         line([2]uint8{1, 0}, [2]uint8{1, 1}, [2]uint8{1, 2}),
	"row 2":         line([2]uint8{2, 0}, [2]uint8{2, 1}, [2]uint8{2, 2}),
	"main diagonal": line([2]uint8{0, 0}, [2]uint8{1, 1}, [2]uint8{2, 2}),
	"anti-diagonal": line([2]uint8{0, 2}, [2]uint8{1, 1}, [2]uint8{2, 0}),
}

func TestEvaluateLines(t *testing.T) {
	for name, moves := range winningLines {
		for _, player := range []Cell{PlayerA, PlayerB} {
			t.Run(name+"/"+player.String(), func(t *testing.T) {
				s := stateWith(map[Cell][]Move{player: moves})

				assert.Equal(t, RewardFor(player), s.Evaluate())
				assert.True(t, s.Terminal())
				assert.Equal(t, Won, s.Status())
				assert.Equal(t, player, s.Winner())
			})
		}
	}
}

func TestEvaluateTopRowOnly(t *testing.T) {
	s := stateWith(map[Cell][]Move{PlayerA: winningLines["row 0"]})

	assert.Equal(t, RewardPlayerA, s.Evaluate())
	assert.True(t, s.Terminal())
}

func TestEvaluateIncompleteLines(t *testing.T) {
	// Two of each line, mixed players and empty cells never count
	s := stateWith(map[Cell][]Move{
		PlayerA: line([2]uint8{0, 0}, [2]uint8{0, 1}, [2]uint8{1, 2}),
		PlayerB: line([2]uint8{0, 2}, [2]uint8{1, 1}),
	})

	assert.Equal(t, RewardNone, s.Evaluate())
	assert.False(t, s.Terminal())
	assert.Equal(t, InProgress, s.Status())
}

func TestRewardDoesNotMutate(t *testing.T) {
	s := stateWith(map[Cell][]Move{PlayerB: winningLines["row 2"]})

	assert.Equal(t, RewardPlayerB, s.Reward())
	assert.False(t, s.Terminal())
	assert.Equal(t, RewardPlayerB, s.Evaluate())
	assert.True(t, s.Terminal())
}
