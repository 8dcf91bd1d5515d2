package bench

import "github.com/rs/zerolog"

// Distributes the arena callbacks between several listeners, in order
type MultiListener []ListenerLike

func (ml MultiListener) OnStart(nGames, nThreads int) {
	for _, l := range ml {
		l.OnStart(nGames, nThreads)
	}
}

func (ml MultiListener) OnGameFinished(info WorkerInfo) {
	for _, l := range ml {
		l.OnGameFinished(info)
	}
}

func (ml MultiListener) OnFinishedWork(info WorkerInfo) {
	for _, l := range ml {
		l.OnFinishedWork(info)
	}
}

func (ml MultiListener) OnSummary(summary Summary) {
	for _, l := range ml {
		l.OnSummary(summary)
	}
}

func (ml MultiListener) OnEnd() {
	for _, l := range ml {
		l.OnEnd()
	}
}

// Logs every finished game at debug level and the summary at info level
type LogListener struct {
	NopListener
	logger zerolog.Logger
}

func NewLogListener(logger zerolog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) OnGameFinished(info WorkerInfo) {
	l.logger.Debug().
		Int("worker", info.WorkerID).
		Int("game", info.FinishedGames).
		Stringer("search_side", info.SearchSide).
		Int("result", int(info.Result)).
		Int("moves", len(info.Moves)).
		Msg("game finished")
}

func (l *LogListener) OnFinishedWork(info WorkerInfo) {
	l.logger.Debug().
		Int("worker", info.WorkerID).
		Int("games", info.FinishedGames).
		Msg("worker finished")
}

func (l *LogListener) OnSummary(s Summary) {
	l.logger.Info().
		Int("games", s.TotalGames).
		Int("search_wins", s.SearchWins).
		Int("random_wins", s.RandomWins).
		Int("draws", s.Draws).
		Float64("mean_score", s.MeanScore).
		Float64("std_err", s.StdErr).
		Msg("arena summary")
}
