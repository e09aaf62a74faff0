package main

import (
	"multiagent/config"
	"multiagent/engine"
	"multiagent/game/tictactoe"
	"multiagent/player"
	"multiagent/searcher"

	"github.com/spf13/cobra"
)

func newPlayCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of tic-tac-toe against the search",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd, config.Config.ValidatePlay)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.algorithm, "algorithm", "", "Search algorithm (minimax or expectimax)")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "Search depth, negative for unlimited")
	return cmd
}

// runPlay pits the person at the console against a maximizing search. Under expectimax the
// human is modelled as a random player, under minimax as a perfect opponent.
func runPlay(cmd *cobra.Command, opts *options) error {
	cfg := opts.cfg
	console := player.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

	asX, err := console.Affirm("Would you like to be X?")
	if err != nil {
		return err
	}
	human, ai := tictactoe.O, tictactoe.X
	if asX {
		human, ai = tictactoe.X, tictactoe.O
	}

	algorithm := searcher.Algorithm(cfg.Search.Algorithm)
	humanRole := searcher.Minimizer
	if algorithm == searcher.AlgorithmExpectimax {
		humanRole = searcher.Chance
	}
	roles := sides{ai: searcher.Maximizer, human: humanRole}

	computer, err := roles.newAgent(ai, algorithm, cfg.Search.Depth, cfg.SelfPlay.Seed)
	if err != nil {
		return err
	}
	board := tictactoe.New()
	e := engine.LocalEngine(board, map[tictactoe.Player]ticTacToeAgent{
		human: player.NewHuman(console),
		ai:    computer,
	})
	e.Winner = winner
	e.Observe = func(u engine.Update[tictactoe.Board, tictactoe.Position, tictactoe.Player]) {
		if u.Agent == ai {
			console.Printf("AI played: %v\n", u.Move)
		}
		console.Printf("Current board:\n%s", console.Board(u.State))
	}

	console.Printf("Current board:\n%s", console.Board(board))
	_, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	switch gameMetric.Winner {
	case "":
		console.Printf("It's a draw.\n")
	case human.String():
		console.Printf("You win!\n")
	default:
		console.Printf("%s wins.\n", gameMetric.Winner)
	}
	return nil
}
