package rollout

/*

Monte Carlo rollout agent

For every search decision the agent clones the live state 'Difficulty' times,
plays each clone to the end with random moves for both sides, and credits the
final reward to the first move of that playout. The move with the largest
accumulated reward is played.

*/

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Decisions of one agent must not overlap, use Clone to get agents for other goroutines
type Agent struct {
	limits   *Limits
	listener *StatsListener
	logger   zerolog.Logger
	history  History
	results  Results
	rollouts atomic.Uint32
	timer    *_Timer

	mu     sync.Mutex // guards rng and values
	rng    *rand.Rand
	values *ValueMap
}

// Create an agent running 'difficulty' rollouts per decision, with default limits otherwise
func New(difficulty int) *Agent {
	return NewWithLimits(DefaultLimits().SetDifficulty(difficulty))
}

func NewWithLimits(limits *Limits) *Agent {
	agent := &Agent{
		listener: &StatsListener{},
		logger:   zerolog.Nop(),
		timer:    _NewTimer(),
	}
	agent.SetLimits(limits)
	return agent
}

// Set the limits, a non-zero seed reseeds the agent's random generator,
// on zero the generator is seeded once from SeedGeneratorFn
func (a *Agent) SetLimits(limits *Limits) {
	if limits == nil {
		limits = DefaultLimits()
	}
	a.limits = limits.sanitized()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.limits.Seed != 0 {
		a.rng = rand.New(rand.NewSource(a.limits.Seed))
	} else if a.rng == nil {
		a.rng = rand.New(rand.NewSource(SeedGeneratorFn()))
	}
}

func (a *Agent) Limits() *Limits {
	return a.limits
}

func (a *Agent) Difficulty() int {
	return a.limits.Difficulty
}

func (a *Agent) SetLogger(logger zerolog.Logger) {
	a.logger = logger
}

func (a *Agent) StatsListener() *StatsListener {
	return a.listener
}

func (a *Agent) SetListener(listener StatsListener) {
	*a.listener = listener
}

func (a *Agent) ResetListener() {
	a.listener.OnRollout(nil).OnDecision(nil)
}

// Value grids of every search decision made so far
func (a *Agent) History() *History {
	return &a.history
}

// Values of the most recent search decision, nil before the first one
func (a *Agent) LastValues() *ValueMap {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.values
}

func (a *Agent) Results() *Results {
	return &a.results
}

// Record the final reward of a game this agent played as 'side'
func (a *Agent) Record(reward ttt.Reward, side ttt.Cell) {
	a.results.Record(reward, side)
}

// Number of rollouts made in the current (or last) decision
func (a *Agent) Rollouts() int {
	return int(a.rollouts.Load())
}

// Create a new agent with the same limits and logger, but its own random
// generator, history, results and an empty listener
func (a *Agent) Clone() *Agent {
	limits := *a.limits
	limits.Seed = a.nextSeed()
	clone := NewWithLimits(&limits)
	clone.logger = a.logger
	return clone
}

func (a *Agent) nextSeed() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	// Never 0, since that means 'generate one'
	return a.rng.Int63() | 1
}

// Legal moves of the state, in row-major order
func (a *Agent) LegalMoves(state *ttt.GameState) []ttt.Move {
	moves := state.LegalMoves()
	result := make([]ttt.Move, moves.Size())
	copy(result, moves.Slice())
	return result
}

// Choose the move to play in given state. The state is never modified,
// search rollouts run on clones of it
func (a *Agent) SelectAction(state *ttt.GameState, policy Policy) (ttt.Move, error) {
	if state.IsOver() {
		return ttt.Move{}, errors.Wrapf(ttt.ErrGameOver, "select %s action", policy)
	}

	moves := a.LegalMoves(state)
	if len(moves) == 0 {
		return ttt.Move{}, errors.Wrapf(ttt.ErrNoLegalMoves, "select %s action", policy)
	}

	switch policy {
	case PolicyRandom:
		a.mu.Lock()
		move := moves[a.rng.Intn(len(moves))]
		a.mu.Unlock()
		return move, nil
	case PolicySearch:
		// Nothing to simulate
		if len(moves) == 1 {
			a.rollouts.Store(0)
			return moves[0], nil
		}
		return a.search(state)
	}

	return ttt.Move{}, errors.Errorf("unknown policy %v", policy)
}
