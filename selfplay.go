package main

import (
	"fmt"

	"multiagent/config"
	"multiagent/engine"
	"multiagent/experiments"
	"multiagent/experiments/metrics"
	"multiagent/game/tictactoe"
	"multiagent/searcher"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func newSelfPlayCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play agents against each other and record the games as CSV",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd, config.Config.Validate)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfPlay(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.games, "games", 0, "Number of games")
	cmd.Flags().StringVar(&opts.output, "output", "", "Directory for the experiment records")
	return cmd
}

func runSelfPlay(cmd *cobra.Command, opts *options) error {
	cfg := opts.cfg
	roles, err := parseSides(cfg.Roles.X, cfg.Roles.O)
	if err != nil {
		return err
	}
	algorithm := searcher.Algorithm(cfg.Search.Algorithm)
	players := []tictactoe.Player{tictactoe.X, tictactoe.O}

	configs := make([]metrics.AgentConfig, 0, len(players))
	for _, p := range players {
		config := metrics.AgentConfig{Player: p.String(), Kind: "random", Role: roles[p].String()}
		if roles[p] != searcher.Chance {
			config.Kind = "search"
			config.Algorithm = string(algorithm)
			config.Depth = cfg.Search.Depth
		}
		configs = append(configs, config)
	}

	seeds := rand.New(rand.NewSource(cfg.SelfPlay.Seed))
	experiment := experiments.Experiment[tictactoe.Board]{
		Name:    "selfplay",
		Games:   cfg.SelfPlay.Games,
		Output:  cfg.SelfPlay.Output,
		Configs: configs,
		NewGame: func(id int) (engine.Engine[tictactoe.Board], error) {
			agents := map[tictactoe.Player]ticTacToeAgent{}
			for _, p := range players {
				a, err := roles.newAgent(p, algorithm, cfg.Search.Depth, seeds.Uint64())
				if err != nil {
					return nil, err
				}
				agents[p] = a
			}
			e := engine.LocalEngine(tictactoe.New(), agents)
			e.Winner = winner
			return e, nil
		},
	}

	summary, err := experiment.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "X wins: %d, O wins: %d, draws: %d\nRecords written to %s\n",
		summary.Wins["X"], summary.Wins["O"], summary.Wins[""], summary.Dir)
	return nil
}
