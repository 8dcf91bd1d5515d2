package rollout

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-rollout/pkg/ttt"
)

// Finished games of an agent, safe for concurrent use
type Results struct {
	wins   atomic.Uint32
	losses atomic.Uint32
	draws  atomic.Uint32
}

// Record the final reward of a game the agent played as 'side'
func (r *Results) Record(reward ttt.Reward, side ttt.Cell) {
	switch reward.Winner() {
	case ttt.Empty:
		r.draws.Add(1)
	case side:
		r.wins.Add(1)
	default:
		r.losses.Add(1)
	}
}

func (r *Results) Wins() int {
	return int(r.wins.Load())
}

func (r *Results) Losses() int {
	return int(r.losses.Load())
}

func (r *Results) Draws() int {
	return int(r.draws.Load())
}

func (r *Results) Total() int {
	return r.Wins() + r.Losses() + r.Draws()
}

func (r *Results) Reset() {
	r.wins.Store(0)
	r.losses.Store(0)
	r.draws.Store(0)
}
