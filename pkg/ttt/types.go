package ttt

import "fmt"

type Cell uint8
type Reward int8
type Status uint8

// Grid is a value snapshot of the board, indexed [row][column]
type Grid [3][3]Cell

// Enum for the cells, also used to name the players
const (
	Empty   Cell = 0
	PlayerA Cell = 1 // first mover, 'x'
	PlayerB Cell = 2 // 'o'
)

const (
	RewardPlayerB Reward = -1
	RewardNone    Reward = 0 // draw or game still going
	RewardPlayerA Reward = 1
)

const (
	InProgress Status = iota
	Won
	Drawn
)

// Get the other player, Empty has no opponent
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Empty
}

// Display symbol of the cell
func (c Cell) Symbol() string {
	switch c {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	}
	return " "
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case PlayerA:
		return "x"
	case PlayerB:
		return "o"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Reward for a win of given player
func RewardFor(player Cell) Reward {
	switch player {
	case PlayerA:
		return RewardPlayerA
	case PlayerB:
		return RewardPlayerB
	}
	return RewardNone
}

// Player who gets this reward, Empty for a draw
func (r Reward) Winner() Cell {
	switch {
	case r > 0:
		return PlayerA
	case r < 0:
		return PlayerB
	}
	return Empty
}

func (r Reward) String() string {
	switch {
	case r > 0:
		return "x wins"
	case r < 0:
		return "o wins"
	}
	return "draw"
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}
