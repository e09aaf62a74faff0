package main

import (
	"multiagent/agent"
	"multiagent/game"
	"multiagent/game/tictactoe"
	"multiagent/searcher"

	"github.com/pkg/errors"
)

type ticTacToeAgent = agent.Agent[tictactoe.Board, tictactoe.Position]

// sides assigns a search role to each player.
type sides map[tictactoe.Player]searcher.Role

func parseSides(x, o string) (sides, error) {
	roleX, err := searcher.ParseRole(x)
	if err != nil {
		return nil, errors.WithMessage(err, "player X")
	}
	roleO, err := searcher.ParseRole(o)
	if err != nil {
		return nil, errors.WithMessage(err, "player O")
	}
	return sides{tictactoe.X: roleX, tictactoe.O: roleO}, nil
}

// evaluate scores boards for the maximizing player, or against the minimizing one when nobody
// maximizes.
func (s sides) evaluate() game.Evaluate[tictactoe.Board, game.Score] {
	if s[tictactoe.X] == searcher.Maximizer || s[tictactoe.O] == searcher.Minimizer {
		return tictactoe.Outcome(tictactoe.X)
	}
	return tictactoe.Outcome(tictactoe.O)
}

// newAgent returns a search agent for players that maximize or minimize and a seeded random agent
// for random players.
func (s sides) newAgent(player tictactoe.Player, search searcher.Algorithm, depth int, seed uint64) (ticTacToeAgent, error) {
	if s[player] == searcher.Chance {
		return agent.NewRandomAgent[tictactoe.Board, tictactoe.Position, tictactoe.Player](tictactoe.Positions, seed), nil
	}
	a, err := agent.NewSearchAgent(search, depth, tictactoe.Positions, s.evaluate(), searcher.ByAgent(s))
	if err != nil {
		return nil, err
	}
	return a, nil
}

func winner(board tictactoe.Board) string {
	if w := board.Winner(); w != tictactoe.None {
		return w.String()
	}
	return ""
}
