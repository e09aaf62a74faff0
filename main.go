package main

import (
	"os"

	"multiagent/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
	algorithm  string
	depth      int
	games      int
	output     string

	cfg config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "multiagent",
		Short:        "Play tic-tac-toe against minimax and expectimax search",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newPlayCmd(opts), newSelfPlayCmd(opts))
	return rootCmd
}

// load reads the config file and environment, applies the flags that were set and checks the
// result with validate.
func (o *options) load(cmd *cobra.Command, validate func(config.Config) error) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("algorithm") {
		cfg.Search.Algorithm = o.algorithm
	}
	if flags.Changed("depth") {
		cfg.Search.Depth = o.depth
	}
	if flags.Changed("games") {
		cfg.SelfPlay.Games = o.games
	}
	if flags.Changed("output") {
		cfg.SelfPlay.Output = o.output
	}
	if err := validate(cfg); err != nil {
		return errors.WithMessage(err, "invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})

	o.cfg = cfg
	return nil
}
