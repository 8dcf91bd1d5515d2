package main

/*

Tic-tac-toe against the Monte Carlo rollout agent

	tictactoe -difficulty 1000 -human-first
	tictactoe -selfplay 200 -arena-threads 4 -threads 2
	tictactoe -config rollout.toml -values -heatmap values.html

*/

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/IlikeChooros/go-rollout/pkg/bench"
	"github.com/IlikeChooros/go-rollout/pkg/config"
	"github.com/IlikeChooros/go-rollout/pkg/render"
	"github.com/IlikeChooros/go-rollout/pkg/rollout"
	"github.com/IlikeChooros/go-rollout/pkg/session"
	"github.com/IlikeChooros/go-rollout/pkg/ttt"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type options struct {
	configPath string
	selfplay   int
	cfg        *config.Config
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	defaults := config.Default()

	var (
		configPath  = fs.String("config", "", "TOML config file, flags override its values")
		difficulty  = fs.Int("difficulty", defaults.Difficulty, "number of rollouts per decision")
		threads     = fs.Int("threads", defaults.Threads, "number of rollout workers per decision")
		arena       = fs.Int("arena-threads", defaults.ArenaThreads, "self-play games run in parallel, each using -threads rollout workers")
		seed        = fs.Int64("seed", defaults.Seed, "random seed, 0 picks one from the clock")
		perspective = fs.String("perspective", defaults.Perspective.String(), "rollout rewards: side-to-move or player-a")
		humanFirst  = fs.Bool("human-first", defaults.HumanFirst, "human plays the first move as X")
		values      = fs.Bool("values", defaults.ShowValues, "print the value grid of every computer decision")
		heatmap     = fs.String("heatmap", defaults.Heatmap, "write the decision heat maps to this HTML file")
		logLevel    = fs.String("log-level", defaults.LogLevel, "trace, debug, info, warn, error")
		selfplay    = fs.Int("selfplay", 0, "play n games of search against random instead of a human game")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var perr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "difficulty":
			cfg.Difficulty = *difficulty
		case "threads":
			cfg.Threads = *threads
		case "arena-threads":
			cfg.ArenaThreads = *arena
		case "seed":
			cfg.Seed = *seed
		case "perspective":
			perr = cfg.Perspective.UnmarshalText([]byte(*perspective))
		case "human-first":
			cfg.HumanFirst = *humanFirst
		case "values":
			cfg.ShowValues = *values
		case "heatmap":
			cfg.Heatmap = *heatmap
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if perr != nil {
		return nil, perr
	}
	if *selfplay < 0 {
		return nil, errors.Errorf("selfplay must not be negative, got %d", *selfplay)
	}

	return &options{configPath: *configPath, selfplay: *selfplay, cfg: cfg}, cfg.Validate()
}

func newLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func run(ctx context.Context, opts *options, logger zerolog.Logger) error {
	cfg := opts.cfg
	agent := rollout.NewWithLimits(cfg.Limits())
	agent.SetLogger(logger)
	logger.Debug().Str("limits", agent.Limits().String()).Msg("agent ready")

	if opts.selfplay > 0 {
		arena := bench.NewVersusArena(agent).
			WithContext(ctx).
			Setup(opts.selfplay, cfg.ArenaThreads, ttt.Empty)
		arena.Start(bench.MultiListener{
			bench.NewDefaultListener(os.Stdout),
			bench.NewLogListener(logger),
		})
		_, err := arena.Wait()
		return err
	}

	sessionOpts := []session.Option{
		session.WithHumanFirst(cfg.HumanFirst),
		session.WithRenderer(render.NewBoardRenderer(os.Stdout)),
		session.WithLogger(logger),
	}
	if cfg.ShowValues {
		colors := termenv.NewOutput(os.Stdout).Profile != termenv.Ascii
		sessionOpts = append(sessionOpts, session.WithValues(render.NewHeatmapPrinter(os.Stdout, colors)))
	}

	if _, err := session.New(agent, os.Stdin, os.Stdout, sessionOpts...).Play(ctx); err != nil {
		return err
	}

	if cfg.Heatmap == "" {
		return nil
	}
	f, err := os.Create(cfg.Heatmap)
	if err != nil {
		return errors.Wrap(err, "heatmap")
	}
	defer f.Close()

	if err := render.WriteHeatmapPage(f, agent.History().Grids()); err != nil {
		return err
	}
	logger.Info().Str("file", cfg.Heatmap).Int("decisions", agent.History().Len()).Msg("heat maps written")
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(opts.cfg.Level())
	if opts.configPath != "" {
		logger.Debug().Str("path", opts.configPath).Msg("config loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Error().Err(err).Msg("tictactoe")
		stop()
		os.Exit(1)
	}
}
