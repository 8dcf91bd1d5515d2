package rollout

import "github.com/IlikeChooros/go-rollout/pkg/ttt"

type DecisionStats struct {
	Rollouts int
	TimeMs   int
	Rps      uint32 // rollouts per second
	Turn     ttt.Cell
	// Set only for the OnDecision callback
	Best   ttt.Move
	Values *ValueMap
}

// Listener function callback, will receive current decision statistics
type ListenerFunc func(DecisionStats)

type StatsListener struct {
	// called every N rollouts of all workers, by the main rollout worker only
	onRollout ListenerFunc
	nRollouts int

	// called once the search decision is made
	onDecision ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nRollouts: 1}
}

// Attach new rollout progress callback, called only by the main rollout worker,
// meaning no need for synchronization here. Slows down the search if the interval is small
func (listener *StatsListener) OnRollout(onRollout ListenerFunc) *StatsListener {
	listener.onRollout = onRollout
	return listener
}

func (listener *StatsListener) SetRolloutInterval(n int) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nRollouts = n
	return listener
}

// Attach 'on decision' callback, receives the final values of the rollouts
func (listener *StatsListener) OnDecision(onDecision ListenerFunc) *StatsListener {
	listener.onDecision = onDecision
	return listener
}

func (listener *StatsListener) interval() int {
	return max(listener.nRollouts, 1)
}

func (listener *StatsListener) invokeRollout(stats DecisionStats) {
	if listener.onRollout != nil {
		listener.onRollout(stats)
	}
}

func (listener *StatsListener) invokeDecision(stats DecisionStats) {
	if listener.onDecision != nil {
		listener.onDecision(stats)
	}
}
