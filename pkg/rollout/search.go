package rollout

import (
	"context"
	"math/rand"

	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Run the rollouts on 'NThreads' workers. Each worker has its own random generator,
// clones and value map, so the only synchronization is the final merge,
// done in worker order. For a fixed seed and thread count the result doesn't
// depend on scheduling.
func (a *Agent) search(state *ttt.GameState) (ttt.Move, error) {
	limits := a.limits
	workers := min(limits.NThreads, limits.Difficulty)
	seed := a.nextSeed()
	sign := limits.Perspective.sign(state.Turn())

	a.rollouts.Store(0)
	a.timer.Reset()

	locals := make([]*ValueMap, workers)
	g, ctx := errgroup.WithContext(context.Background())

	per, rest := limits.Difficulty/workers, limits.Difficulty%workers
	for id := range workers {
		n := per
		if id < rest {
			n++
		}

		g.Go(func() error {
			local, err := a.rolloutWorker(ctx, state, id, n, seed+int64(id), sign)
			locals[id] = local
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return ttt.Move{}, errors.WithMessage(err, "search")
	}

	values := NewValueMap()
	for _, local := range locals {
		values.Merge(local)
	}

	best, ok := values.Best()
	if !ok {
		return ttt.Move{}, errors.Wrap(ttt.ErrNoLegalMoves, "search")
	}

	a.history.Append(values.Grid())
	a.mu.Lock()
	a.values = values
	a.mu.Unlock()

	stats := a.stats(state.Turn())
	stats.Best = best
	stats.Values = values

	a.logger.Debug().
		Stringer("turn", state.Turn()).
		Stringer("best", best).
		Int("value", values.Value(best)).
		Int("rollouts", stats.Rollouts).
		Int("workers", workers).
		Int("time_ms", stats.TimeMs).
		Uint32("rps", stats.Rps).
		Msg("search decision")

	a.listener.invokeDecision(stats)
	return best, nil
}

// Run 'n' rollouts from the state, accumulating the rewards into a local map
func (a *Agent) rolloutWorker(ctx context.Context, state *ttt.GameState, id, n int, seed int64, sign int) (*ValueMap, error) {
	rng := rand.New(rand.NewSource(seed))
	local := NewValueMap()
	interval := a.listener.interval()
	next := interval

	for range n {
		if err := ctx.Err(); err != nil {
			return local, err
		}

		reward, move, err := Rollout(state, rng)
		if err != nil {
			return local, err
		}
		local.Add(move, sign*int(reward))

		// The main worker reports every crossed multiple of the interval,
		// counting the rollouts of all workers
		total := int(a.rollouts.Add(1))
		if id == mainWorkerId && a.listener.onRollout != nil && total >= next {
			next = (total/interval + 1) * interval
			a.listener.invokeRollout(a.statsAt(state.Turn(), total))
		}
	}

	return local, nil
}

func (a *Agent) stats(turn ttt.Cell) DecisionStats {
	return a.statsAt(turn, a.Rollouts())
}

func (a *Agent) statsAt(turn ttt.Cell, rollouts int) DecisionStats {
	elapsed := a.timer.Deltatime()
	return DecisionStats{
		Rollouts: rollouts,
		TimeMs:   elapsed,
		Rps:      uint32(rollouts * 1000 / elapsed),
		Turn:     turn,
	}
}
