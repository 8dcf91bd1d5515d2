package rollout

import (
	"math/rand"
	"testing"

	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	center = ttt.Move{Row: 1, Col: 1}
	corner = ttt.Move{Row: 0, Col: 0}
	edge   = ttt.Move{Row: 0, Col: 1}
)

func TestValueMapBestTieBreak(t *testing.T) {
	vm := NewValueMap()
	_, ok := vm.Best()
	assert.False(t, ok)

	vm.Add(edge, 1)
	vm.Add(center, 1)
	vm.Add(corner, -1)

	best, ok := vm.Best()
	require.True(t, ok)
	assert.Equal(t, edge, best, "ties go to the first inserted move")

	vm.Add(center, 1)
	best, _ = vm.Best()
	assert.Equal(t, center, best)
}

func TestValueMapAllNegative(t *testing.T) {
	vm := NewValueMap()
	vm.Add(corner, -1)
	vm.Add(corner, -1)
	vm.Add(edge, -1)

	best, ok := vm.Best()
	require.True(t, ok)
	assert.Equal(t, edge, best)
}

func TestValueMapMerge(t *testing.T) {
	a := NewValueMap()
	a.Add(center, 1)
	a.Add(corner, 0)

	b := NewValueMap()
	b.Add(edge, -1)
	b.Add(center, 1)
	b.Add(edge, 1)

	a.Merge(b)
	a.Merge(nil)

	assert.Equal(t, []ttt.Move{center, corner, edge}, a.Keys())
	assert.Equal(t, 2, a.Value(center))
	assert.Equal(t, 2, a.Visits(center))
	assert.Equal(t, 0, a.Value(edge))
	assert.Equal(t, 2, a.Visits(edge))
	assert.Equal(t, 5, a.TotalVisits())
	assert.Equal(t, 3, a.Len())
}

func TestValueMapGrid(t *testing.T) {
	vm := NewValueMap()
	vm.Add(center, 3)
	vm.Add(ttt.Move{Row: 2, Col: 0}, -2)

	grid := vm.Grid()
	expected := ValueGrid{}
	expected[1][1] = 3
	expected[2][0] = -2

	assert.Equal(t, expected, grid)
	assert.Equal(t, 3.0, grid.MaxAbs())
	assert.Equal(t, 0.0, ValueGrid{}.MaxAbs())
}

func TestSimulateAttributesFirstMove(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for range 500 {
		board := ttt.NewGameState()
		_, _, err := board.ApplyMove(center)
		require.NoError(t, err)
		before := *board

		reward, move, err := Rollout(board, rng)
		require.NoError(t, err)

		assert.Equal(t, before, *board, "rollout must not touch the board")
		assert.True(t, board.LegalMoves().Contains(move))
		assert.NotEqual(t, center, move)
		assert.Contains(t, []ttt.Reward{ttt.RewardPlayerA, ttt.RewardNone, ttt.RewardPlayerB}, reward)
	}
}

func TestSimulatePlaysToTheEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	s := ttt.NewGameState()

	reward, move, err := Simulate(s, rng)
	require.NoError(t, err)

	assert.True(t, s.IsOver())
	assert.Equal(t, s.Reward(), reward)
	assert.Equal(t, ttt.PlayerA, s.At(move), "first move belongs to the side that started")
}

func TestSimulateFinishedGame(t *testing.T) {
	s, err := ttt.FromNotation("xxx/oo1/3 o")
	require.NoError(t, err)

	reward, _, err := Simulate(s, rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(err, ttt.ErrGameOver), "got %v", err)
	assert.Equal(t, ttt.RewardPlayerA, reward)
}

func TestLimits(t *testing.T) {
	limits := DefaultLimits()
	assert.Equal(t, DefaultDifficulty, limits.Difficulty)

	limits.SetDifficulty(0).SetThreads(-2).SetSeed(9).SetPerspective(PerspectivePlayerA)
	assert.Equal(t, 1, limits.Difficulty)
	assert.Equal(t, 1, limits.NThreads)
	assert.Equal(t, int64(9), limits.Seed)
	assert.Contains(t, limits.String(), `"Perspective":"player-a"`)
}

func TestParsePolicyAndPerspective(t *testing.T) {
	p, err := ParsePolicy("search")
	require.NoError(t, err)
	assert.Equal(t, PolicySearch, p)
	_, err = ParsePolicy("minimax")
	assert.Error(t, err)

	var perspective Perspective
	require.NoError(t, perspective.UnmarshalText([]byte("player-a")))
	assert.Equal(t, PerspectivePlayerA, perspective)
	assert.Error(t, perspective.UnmarshalText([]byte("player-b")))
}
