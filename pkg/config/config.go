package config

import (
	"io"
	"os"
	"runtime"

	"github.com/IlikeChooros/go-rollout/pkg/rollout"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Settings of the programs, every field can be overridden on the command line
type Config struct {
	Difficulty int   `toml:"difficulty"`
	Threads    int   `toml:"threads"`
	Seed       int64 `toml:"seed"`
	// Self-play games run in parallel, each with 'Threads' rollout workers
	ArenaThreads int                 `toml:"arena_threads"`
	Perspective  rollout.Perspective `toml:"perspective"`
	HumanFirst   bool                `toml:"human_first"`
	ShowValues   bool                `toml:"show_values"`
	Heatmap      string              `toml:"heatmap"`
	LogLevel     string              `toml:"log_level"`
}

func Default() *Config {
	return &Config{
		Difficulty:   rollout.DefaultDifficulty,
		Threads:      rollout.DefaultThreads,
		Seed:         rollout.DefaultSeed,
		ArenaThreads: runtime.NumCPU(),
		Perspective:  rollout.DefaultPerspective,
		LogLevel:     zerolog.LevelWarnValue,
	}
}

// Decode the TOML document on top of the defaults, unknown keys are rejected
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(r).DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return cfg, cfg.Validate()
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	return cfg, errors.WithMessagef(err, "config %s", path)
}

// Reports every problem of the config at once
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Difficulty < 1 {
		result = multierror.Append(result, errors.Errorf("difficulty must be at least 1, got %d", c.Difficulty))
	}
	if c.Threads < 1 {
		result = multierror.Append(result, errors.Errorf("threads must be at least 1, got %d", c.Threads))
	}
	if c.ArenaThreads < 1 {
		result = multierror.Append(result, errors.Errorf("arena threads must be at least 1, got %d", c.ArenaThreads))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, errors.Wrapf(err, "log level %q", c.LogLevel))
	}

	return result.ErrorOrNil()
}

func (c *Config) Limits() *rollout.Limits {
	return rollout.DefaultLimits().
		SetDifficulty(c.Difficulty).
		SetThreads(c.Threads).
		SetSeed(c.Seed).
		SetPerspective(c.Perspective)
}

// Parsed log level, warn if the configured one is invalid
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}
