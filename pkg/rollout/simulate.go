package rollout

import (
	"math/rand"

	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"github.com/pkg/errors"
)

// Play the game until it's over, both sides choosing uniformly random moves.
// The state must be exclusively owned by the caller, it will be played out.
// Returns the final reward (from PlayerA's perspective) and the first move made,
// which belongs to the side active when the playout started
func Simulate(state *ttt.GameState, rng *rand.Rand) (ttt.Reward, ttt.Move, error) {
	var (
		moves     ttt.MoveList
		move      ttt.Move
		firstMove ttt.Move
		reward    ttt.Reward
		err       error
	)

	if state.IsOver() {
		return state.Reward(), firstMove, errors.Wrap(ttt.ErrGameOver, "playout from a finished game")
	}

	for moveCount := 0; !state.IsOver(); moveCount++ {
		state.GenerateMoves(&moves)
		if moves.Size() == 0 {
			return reward, firstMove, errors.WithStack(ttt.ErrNoLegalMoves)
		}

		// Choose at random move
		move = moves.Moves[rng.Intn(moves.Size())]
		if _, reward, err = state.ApplyMove(move); err != nil {
			return reward, firstMove, errors.WithMessage(err, "playout")
		}

		if moveCount == 0 {
			firstMove = move
		}
	}

	return reward, firstMove, nil
}

// Simulate on a private clone of the board, the board itself is left untouched
func Rollout(board *ttt.GameState, rng *rand.Rand) (ttt.Reward, ttt.Move, error) {
	return Simulate(board.Clone(), rng)
}
