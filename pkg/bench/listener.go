package bench

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// Arena callbacks, OnGameFinished and OnFinishedWork are called from the
// worker goroutines, the rest from the arena's own goroutine
type ListenerLike interface {
	OnStart(nGames, nThreads int)
	OnGameFinished(info WorkerInfo)
	OnFinishedWork(info WorkerInfo)
	OnSummary(summary Summary)
	OnEnd()
}

type NopListener struct{}

func (NopListener) OnStart(int, int)          {}
func (NopListener) OnGameFinished(WorkerInfo) {}
func (NopListener) OnFinishedWork(WorkerInfo) {}
func (NopListener) OnSummary(Summary)         {}
func (NopListener) OnEnd()                    {}

// Prints a single progress line and the final summary
type DefaultListener struct {
	out      *termenv.Output
	mu       sync.Mutex
	nGames   int
	finished int
}

func NewDefaultListener(w io.Writer, opts ...termenv.OutputOption) *DefaultListener {
	return &DefaultListener{out: termenv.NewOutput(w, opts...)}
}

func (d *DefaultListener) colored(s string, color string) termenv.Style {
	return d.out.String(s).Foreground(d.out.Color(color))
}

func (d *DefaultListener) OnStart(nGames, nThreads int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nGames = nGames
	d.finished = 0
	if d.out.Profile != termenv.Ascii {
		d.out.HideCursor()
	}
	fmt.Fprintf(d.out, "%s %d games on %d threads\n",
		d.out.String("Playing").Bold(), nGames, nThreads)
}

func (d *DefaultListener) OnGameFinished(info WorkerInfo) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.finished++

	if d.out.Profile != termenv.Ascii {
		d.out.ClearLine()
	}
	fmt.Fprintf(d.out, "\r[%4d/%d] search %s random %s draws %s",
		d.finished, d.nGames,
		d.colored(fmt.Sprint(info.SearchWins), "2"),
		d.colored(fmt.Sprint(info.RandomWins), "1"),
		d.colored(fmt.Sprint(info.Draws), "3"),
	)
}

func (d *DefaultListener) OnFinishedWork(WorkerInfo) {}

func (d *DefaultListener) OnSummary(s Summary) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintf(d.out, "\n%s\n", d.out.String("Summary").Bold().Underline())
	fmt.Fprintf(d.out, "games:       %d (%d workers, difficulty %d, search plays %s)\n",
		s.TotalGames, s.Workers, s.Difficulty, s.SearchSide)
	fmt.Fprintf(d.out, "search wins: %s (%.1f%%)\n", d.colored(fmt.Sprint(s.SearchWins), "2"), 100*s.WinRate)
	fmt.Fprintf(d.out, "random wins: %s (%.1f%%)\n", d.colored(fmt.Sprint(s.RandomWins), "1"), 100*s.LossRate)
	fmt.Fprintf(d.out, "draws:       %s (%.1f%%)\n", d.colored(fmt.Sprint(s.Draws), "3"), 100*s.DrawRate)
	fmt.Fprintf(d.out, "mean score:  %.3f ± %.3f\n", s.MeanScore, s.StdErr)
}

func (d *DefaultListener) OnEnd() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.out.Profile != termenv.Ascii {
		d.out.ShowCursor()
	}
}
