package ttt

import "math/bits"

// Every empty cell in row-major order. The list is empty only when the board is full,
// note that it does not check for a completed line, see IsOver
func (s *GameState) LegalMoves() *MoveList {
	movelist := NewMoveList()
	s.GenerateMoves(movelist)
	return movelist
}

// Same as LegalMoves, but fills the given list (clearing it first), used in playouts
func (s *GameState) GenerateMoves(movelist *MoveList) {
	movelist.size = 0
	free := uint(_fullBoard ^ (s.bitboards[_bitboardCrossIdx] | s.bitboards[_bitboardCircleIdx]))
	for free != 0 {
		movelist.AppendMove(MoveFromIndex(bits.TrailingZeros(free)))
		free &= free - 1
	}
}
