package session

/*

Human versus computer game over plain text streams.

The computer always uses the search policy. The human types keypad numbers,
1 being the top left corner and 9 the bottom right one. Bad input is reported
and asked for again, the game state only reports the problem.

*/

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/IlikeChooros/go-rollout/pkg/render"
	"github.com/IlikeChooros/go-rollout/pkg/rollout"
	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Option func(*Session)

// Let the human play the first move, as PlayerA
func WithHumanFirst(humanFirst bool) Option {
	return func(s *Session) {
		s.humanFirst = humanFirst
	}
}

// Print the value grid after every computer decision
func WithValues(printer *render.HeatmapPrinter) Option {
	return func(s *Session) {
		s.values = printer
	}
}

func WithRenderer(renderer *render.BoardRenderer) Option {
	return func(s *Session) {
		s.board = renderer
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

type Session struct {
	agent      *rollout.Agent
	in         *bufio.Scanner
	out        io.Writer
	board      *render.BoardRenderer
	values     *render.HeatmapPrinter
	humanFirst bool
	logger     zerolog.Logger
}

func New(agent *rollout.Agent, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		agent:  agent,
		in:     bufio.NewScanner(in),
		out:    out,
		board:  render.NewBoardRenderer(out, termenv.WithProfile(termenv.Ascii)),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Side played by the human
func (s *Session) Human() ttt.Cell {
	if s.humanFirst {
		return ttt.PlayerA
	}
	return ttt.PlayerB
}

// Play a single game, returns the final reward. The result is recorded
// in the agent's results, from the computer's side.
func (s *Session) Play(ctx context.Context) (ttt.Reward, error) {
	state := ttt.NewGameState()
	human := s.Human()
	computer := human.Opponent()

	fmt.Fprintf(s.out, "GAME STARTED: Difficulty Level = %d\n", s.agent.Difficulty())
	s.logger.Debug().Stringer("human", human).Msg("session started")

	for !state.IsOver() {
		if err := ctx.Err(); err != nil {
			return ttt.RewardNone, errors.WithStack(err)
		}

		if state.Turn() == computer {
			if err := s.computerTurn(state); err != nil {
				return ttt.RewardNone, err
			}
			fmt.Fprint(s.out, "\n\n")
			if err := s.board.Print(state.Grid()); err != nil {
				return ttt.RewardNone, errors.Wrap(err, "print board")
			}
			fmt.Fprint(s.out, "\n\n")
			continue
		}

		if err := s.humanTurn(state); err != nil {
			return ttt.RewardNone, err
		}
		if err := s.board.Print(state.Grid()); err != nil {
			return ttt.RewardNone, errors.Wrap(err, "print board")
		}
	}

	reward := state.Reward()
	s.agent.Record(reward, computer)
	fmt.Fprintln(s.out, Verdict(reward, human))
	s.logger.Debug().Stringer("reward", reward).Msg("session finished")
	return reward, nil
}

func (s *Session) computerTurn(state *ttt.GameState) error {
	move, err := s.agent.SelectAction(state, rollout.PolicySearch)
	if err != nil {
		return errors.WithMessage(err, "computer move")
	}

	fmt.Fprintf(s.out, "Computer played position: %s\n", move)
	if _, _, err = state.ApplyMove(move); err != nil {
		return errors.WithMessage(err, "computer move")
	}

	// No rollouts means the move was forced, the values are stale
	if s.values != nil && s.agent.Rollouts() > 0 {
		if values := s.agent.LastValues(); values != nil {
			if err := s.values.Print(values.Grid()); err != nil {
				return errors.Wrap(err, "print values")
			}
		}
	}
	return nil
}

// Ask until the human enters a legal move, and play it
func (s *Session) humanTurn(state *ttt.GameState) error {
	for {
		fmt.Fprintln(s.out, "Actions to choose from: [1 - 9]")
		fmt.Fprint(s.out, "Enter a move: ")

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return errors.Wrap(err, "read move")
			}
			return errors.Wrap(io.ErrUnexpectedEOF, "read move")
		}

		move, err := ttt.ParseKeypad(s.in.Text())
		if err != nil {
			s.logger.Debug().Err(err).Msg("rejected input")
			fmt.Fprintln(s.out, "Invalid action, try again!")
			continue
		}

		fmt.Fprintf(s.out, "You played position: %s\n", move)
		_, _, err = state.ApplyMove(move)
		if errors.Is(err, ttt.ErrInvalidMove) {
			fmt.Fprintln(s.out, "Invalid move, try again")
			continue
		}
		return errors.WithMessage(err, "human move")
	}
}

// Final message from the human's point of view
func Verdict(reward ttt.Reward, human ttt.Cell) string {
	switch reward.Winner() {
	case ttt.Empty:
		return "You draw!"
	case human:
		return "You win!"
	}
	return "You lose!"
}
