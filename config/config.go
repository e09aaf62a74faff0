package config

import (
	"fmt"
	"os"
	"strconv"

	"multiagent/searcher"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	EnvDepth     = "MULTIAGENT_DEPTH"
	EnvAlgorithm = "MULTIAGENT_ALGORITHM"
	EnvLogLevel  = "MULTIAGENT_LOG_LEVEL"
)

type Config struct {
	Search   Search   `yaml:"search"`
	Roles    Roles    `yaml:"roles"`
	SelfPlay SelfPlay `yaml:"selfplay"`
	LogLevel string   `yaml:"log_level"`
}

type Search struct {
	Algorithm string `yaml:"algorithm"`
	Depth     int    `yaml:"depth"` // Negative searches until the game ends
}

// Roles maps each tic-tac-toe player to max, min or random.
type Roles struct {
	X string `yaml:"x"`
	O string `yaml:"o"`
}

type SelfPlay struct {
	Games  int    `yaml:"games"`
	Seed   uint64 `yaml:"seed"`
	Output string `yaml:"output"`
}

func Default() Config {
	return Config{
		Search: Search{
			Algorithm: string(searcher.AlgorithmExpectimax),
			Depth:     9,
		},
		Roles: Roles{
			X: searcher.Chance.String(),
			O: searcher.Maximizer.String(),
		},
		SelfPlay: SelfPlay{
			Games:  10,
			Seed:   1,
			Output: "experiments",
		},
		LogLevel: zerolog.LevelInfoValue,
	}
}

// Load reads path over the defaults, then applies environment overrides. An empty path only
// applies the overrides. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "failed to read the config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "failed to parse the config file %s", path)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if value, ok := os.LookupEnv(EnvDepth); ok {
		depth, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvDepth)
		}
		c.Search.Depth = depth
	}
	if value, ok := os.LookupEnv(EnvAlgorithm); ok {
		c.Search.Algorithm = value
	}
	if value, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = value
	}
	return nil
}

// Validate reports every problem of the configuration at once.
func (c Config) Validate() error {
	errs := c.validateSearch()

	x, errX := searcher.ParseRole(c.Roles.X)
	if errX != nil {
		errs = multierror.Append(errs, errors.WithMessage(errX, "roles.x"))
	}
	o, errO := searcher.ParseRole(c.Roles.O)
	if errO != nil {
		errs = multierror.Append(errs, errors.WithMessage(errO, "roles.o"))
	}
	if errX == nil && errO == nil {
		switch {
		case x == o:
			errs = multierror.Append(errs, fmt.Errorf("roles.x and roles.o are both %s", x))
		case searcher.Algorithm(c.Search.Algorithm) == searcher.AlgorithmMinimax && (x == searcher.Chance || o == searcher.Chance):
			errs = multierror.Append(errs, fmt.Errorf("minimax cannot search random players"))
		}
	}

	if c.SelfPlay.Games < 1 {
		errs = multierror.Append(errs, fmt.Errorf("selfplay.games must be positive, got %d", c.SelfPlay.Games))
	}
	if c.SelfPlay.Output == "" {
		errs = multierror.Append(errs, fmt.Errorf("selfplay.output must be set"))
	}

	return errs.ErrorOrNil()
}

// ValidatePlay checks only the settings of an interactive game, where the roles are fixed by
// which side the human takes.
func (c Config) ValidatePlay() error {
	return c.validateSearch().ErrorOrNil()
}

func (c Config) validateSearch() *multierror.Error {
	var errs *multierror.Error

	if _, err := searcher.ParseAlgorithm(c.Search.Algorithm); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.Search.Depth == 0 {
		errs = multierror.Append(errs, fmt.Errorf("search depth 0 never recommends a move"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}
