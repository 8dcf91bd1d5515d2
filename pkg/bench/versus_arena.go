package bench

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/IlikeChooros/go-rollout/pkg/rollout"
	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

/*
Arena benchmark subpackage, plays a series of games between the search policy
of an agent and its own uniformly random policy.
*/

// Play a single game from the starting position. The search policy moves for
// 'searchSide', the random policy of the same agent for the other side.
// Returns the final reward and the moves played.
func PlayGame(ctx context.Context, agent *rollout.Agent, searchSide ttt.Cell) (ttt.Reward, []ttt.Move, error) {
	if searchSide != ttt.PlayerA && searchSide != ttt.PlayerB {
		return ttt.RewardNone, nil, errors.Errorf("invalid search side %v", searchSide)
	}

	state := ttt.NewGameState()
	moves := make([]ttt.Move, 0, 9)

	for !state.IsOver() {
		if err := ctx.Err(); err != nil {
			return ttt.RewardNone, moves, errors.WithStack(err)
		}

		policy := rollout.PolicyRandom
		if state.Turn() == searchSide {
			policy = rollout.PolicySearch
		}

		move, err := agent.SelectAction(state, policy)
		if err != nil {
			return ttt.RewardNone, moves, errors.WithMessagef(err, "move %d", len(moves)+1)
		}
		if _, _, err = state.ApplyMove(move); err != nil {
			return ttt.RewardNone, moves, errors.WithMessagef(err, "move %d", len(moves)+1)
		}
		moves = append(moves, move)
	}

	return state.Reward(), moves, nil
}

type VersusArena struct {
	VersusArenaStats
	Agent      *rollout.Agent
	NGames     int
	NThreads   int
	SearchSide ttt.Cell // Empty alternates the sides between games
	ctx        context.Context

	wg      sync.WaitGroup
	started atomic.Uint32
	mu      sync.Mutex // guards errs and scores
	errs    *multierror.Error
	scores  []float64
	done    chan struct{}
	summary Summary
}

func NewVersusArena(agent *rollout.Agent) *VersusArena {
	return &VersusArena{
		Agent:      agent,
		NGames:     100,
		NThreads:   2,
		SearchSide: ttt.Empty,
		ctx:        context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames, nThreads int, searchSide ttt.Cell) *VersusArena {
	va.NGames = nGames
	va.NThreads = nThreads
	va.SearchSide = searchSide
	return va
}

// Start the games in the background, distributing them equally between
// the workers. Use Wait to get the summary.
func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = NopListener{}
	}

	nThreads := max(1, min(va.NThreads, va.NGames))
	nGames := max(0, va.NGames)

	va.VersusArenaStats = VersusArenaStats{}
	va.started.Store(0)
	va.errs = nil
	va.scores = make([]float64, 0, nGames)
	va.done = make(chan struct{})

	listener.OnStart(nGames, nThreads)
	per, rest := nGames/nThreads, nGames%nThreads
	for id := range nThreads {
		n := per
		if id < rest {
			n++
		}

		// Every worker has its own agent, the decisions of one must not overlap
		agent := va.Agent.Clone()
		va.wg.Add(1)
		go va.worker(id, n, agent, listener)
	}

	go func() {
		va.wg.Wait()
		va.mu.Lock()
		summary := newSummary(&va.VersusArenaStats, va.scores)
		summary.Workers = nThreads
		summary.Difficulty = va.Agent.Difficulty()
		summary.SearchSide = sideName(va.SearchSide)
		va.summary = summary
		va.mu.Unlock()

		listener.OnSummary(summary)
		listener.OnEnd()
		close(va.done)
	}()
}

// Wait for all games to finish, returns the summary and the errors of
// the failed games, if any
func (va *VersusArena) Wait() (Summary, error) {
	if va.done == nil {
		return Summary{}, errors.New("arena was not started")
	}
	<-va.done

	va.mu.Lock()
	defer va.mu.Unlock()
	return va.summary, va.errs.ErrorOrNil()
}

func (va *VersusArena) searchSide() ttt.Cell {
	if va.SearchSide != ttt.Empty {
		return va.SearchSide
	}
	if (va.started.Add(1)-1)%2 == 0 {
		return ttt.PlayerA
	}
	return ttt.PlayerB
}

func (va *VersusArena) worker(id, nGames int, agent *rollout.Agent, listener ListenerLike) {
	defer va.wg.Done()
	finished := 0

	for range nGames {
		side := va.searchSide()
		reward, moves, err := PlayGame(va.ctx, agent, side)
		if err != nil {
			if va.ctx.Err() != nil {
				break
			}
			va.mu.Lock()
			va.errs = multierror.Append(va.errs, errors.WithMessagef(err, "worker %d", id))
			va.mu.Unlock()
			continue
		}

		result := toMatchResult(reward, side)
		va.add(result)
		va.Agent.Record(reward, side)
		va.mu.Lock()
		va.scores = append(va.scores, float64(result))
		va.mu.Unlock()

		finished++
		listener.OnGameFinished(WorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: finished,
			Moves:         moves,
			Result:        result,
			SearchSide:    side,
			SearchWins:    va.SearchWins(),
			RandomWins:    va.RandomWins(),
			Draws:         va.Draws(),
		})
	}

	listener.OnFinishedWork(WorkerInfo{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: finished,
		SearchWins:    va.SearchWins(),
		RandomWins:    va.RandomWins(),
		Draws:         va.Draws(),
	})
}

func sideName(side ttt.Cell) string {
	if side == ttt.Empty {
		return "alternate"
	}
	return side.String()
}
