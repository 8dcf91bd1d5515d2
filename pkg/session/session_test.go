package session

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-rollout/pkg/render"
	"github.com/IlikeChooros/go-rollout/pkg/rollout"
	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every keypad number once, in order. Enough to finish any game, since
// a rejected number is never tried again
const allKeypads = "1\n2\n3\n4\n5\n6\n7\n8\n9\n"

func newAgent() *rollout.Agent {
	return rollout.NewWithLimits(rollout.DefaultLimits().SetDifficulty(60).SetSeed(21))
}

func TestPlayComputerFirst(t *testing.T) {
	var out bytes.Buffer
	agent := newAgent()
	s := New(agent, strings.NewReader(allKeypads), &out)

	reward, err := s.Play(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "GAME STARTED: Difficulty Level = 60\n"))
	assert.Contains(t, text, "Computer played position: (")
	assert.Contains(t, text, "Actions to choose from: [1 - 9]")
	assert.Contains(t, text, "Enter a move: ")
	assert.Contains(t, text, "You played position: (")
	assert.True(t, strings.HasSuffix(text, Verdict(reward, ttt.PlayerB)+"\n"))

	assert.Equal(t, 1, agent.Results().Total())
	assert.Equal(t, ttt.PlayerB, s.Human())
}

func TestPlayRepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	input := "0\nten\n5\n5\n" + allKeypads
	s := New(newAgent(), strings.NewReader(input), &out, WithHumanFirst(true))

	_, err := s.Play(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Invalid action, try again!"))
	assert.Contains(t, text, "You played position: (1, 1)\n")
	// The center is taken by the first "5"
	assert.Contains(t, text, "Invalid move, try again")
	assert.Equal(t, ttt.PlayerA, s.Human())

	first := strings.Index(text, "You played position")
	assert.Less(t, first, strings.Index(text, "Computer played position"), "human moves first")
}

func TestPlayUnexpectedEOF(t *testing.T) {
	s := New(newAgent(), strings.NewReader("3\n"), io.Discard, WithHumanFirst(true))

	_, err := s.Play(context.Background())
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)
}

func TestPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agent := newAgent()
	_, err := New(agent, strings.NewReader(allKeypads), io.Discard).Play(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.Equal(t, 0, agent.Results().Total())
}

func TestPlayShowsValues(t *testing.T) {
	var out bytes.Buffer
	s := New(newAgent(), strings.NewReader(allKeypads), &out,
		WithValues(render.NewHeatmapPrinter(&out, false)))

	_, err := s.Play(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "--------------------\n")
}

var errClosedOutput = errors.New("output closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errClosedOutput
}

func TestPlayOutputErrors(t *testing.T) {
	// Board printing fails after the first computer move
	agent := newAgent()
	_, err := New(agent, strings.NewReader(allKeypads), failingWriter{}).Play(context.Background())
	assert.True(t, errors.Is(err, errClosedOutput), "got %v", err)
	assert.Equal(t, 0, agent.Results().Total())

	// Value printing fails on its own writer
	var out bytes.Buffer
	s := New(newAgent(), strings.NewReader(allKeypads), &out,
		WithValues(render.NewHeatmapPrinter(failingWriter{}, false)))
	_, err = s.Play(context.Background())
	assert.True(t, errors.Is(err, errClosedOutput), "got %v", err)
	assert.Contains(t, out.String(), "Computer played position")
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "You win!", Verdict(ttt.RewardPlayerB, ttt.PlayerB))
	assert.Equal(t, "You lose!", Verdict(ttt.RewardPlayerA, ttt.PlayerB))
	assert.Equal(t, "You win!", Verdict(ttt.RewardPlayerA, ttt.PlayerA))
	assert.Equal(t, "You draw!", Verdict(ttt.RewardNone, ttt.PlayerA))
}
