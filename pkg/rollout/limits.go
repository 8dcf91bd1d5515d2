package rollout

import (
	"encoding/json"
	"strings"
)

// Limits of a single search decision
type Limits struct {
	// Number of rollouts per decision, at least 1
	Difficulty int
	// Number of rollout workers, at least 1
	NThreads int
	// Seed of the agent's random generator, 0 means SeedGeneratorFn is used
	Seed int64
	// Point of view of the rollout rewards
	Perspective Perspective
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultDifficulty  int         = 1000
	DefaultThreads     int         = 1
	DefaultSeed        int64       = 0
	DefaultPerspective Perspective = PerspectiveSideToMove
)

func DefaultLimits() *Limits {
	return &Limits{
		Difficulty:  DefaultDifficulty,
		NThreads:    DefaultThreads,
		Seed:        DefaultSeed,
		Perspective: DefaultPerspective,
	}
}

// Set the number of rollouts per decision, values below 1 are raised to 1
func (l *Limits) SetDifficulty(difficulty int) *Limits {
	l.Difficulty = max(difficulty, 1)
	return l
}

func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}

func (l *Limits) SetSeed(seed int64) *Limits {
	l.Seed = seed
	return l
}

func (l *Limits) SetPerspective(perspective Perspective) *Limits {
	l.Perspective = perspective
	return l
}

// Make sure the limits are usable, without touching the original
func (l Limits) sanitized() *Limits {
	l.Difficulty = max(l.Difficulty, 1)
	l.NThreads = max(l.NThreads, 1)
	return &l
}
