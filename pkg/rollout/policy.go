package rollout

import (
	"fmt"

	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"github.com/pkg/errors"
)

type Policy int
type Perspective int

const (
	// Uniformly random legal move
	PolicyRandom Policy = iota
	// Monte Carlo rollouts, the move with the best accumulated reward
	PolicySearch
)

const (
	// Rewards credited to the deciding side: a PlayerB agent negates them
	PerspectiveSideToMove Perspective = iota
	// Raw PlayerA-signed rewards, whichever side decides
	PerspectivePlayerA
)

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "random":
		return PolicyRandom, nil
	case "search":
		return PolicySearch, nil
	}
	return PolicyRandom, errors.Errorf("unknown policy %q, expected random or search", s)
}

func (p Policy) String() string {
	switch p {
	case PolicyRandom:
		return "random"
	case PolicySearch:
		return "search"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

func ParsePerspective(s string) (Perspective, error) {
	switch s {
	case "side-to-move":
		return PerspectiveSideToMove, nil
	case "player-a":
		return PerspectivePlayerA, nil
	}
	return PerspectiveSideToMove, errors.Errorf("unknown perspective %q, expected side-to-move or player-a", s)
}

func (p Perspective) String() string {
	switch p {
	case PerspectiveSideToMove:
		return "side-to-move"
	case PerspectivePlayerA:
		return "player-a"
	}
	return fmt.Sprintf("perspective(%d)", int(p))
}

func (p Perspective) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Perspective) UnmarshalText(text []byte) error {
	v, err := ParsePerspective(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Multiplier applied to PlayerA-signed rewards when 'turn' is deciding
func (p Perspective) sign(turn ttt.Cell) int {
	if p == PerspectiveSideToMove && turn == ttt.PlayerB {
		return -1
	}
	return 1
}
