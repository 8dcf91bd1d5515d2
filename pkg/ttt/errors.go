package ttt

import "github.com/pkg/errors"

// Errors reported by the game state, they never leave the state mutated.
// Use errors.Is to match them, since they are usually wrapped with the move.
var (
	ErrInvalidMove  = errors.New("invalid move, cell is occupied")
	ErrOutOfRange   = errors.New("move out of range")
	ErrGameOver     = errors.New("game is over")
	ErrNoLegalMoves = errors.New("no legal moves")
)
