package player

import (
	"multiagent/game/tictactoe"
)

// Human asks the person at the console for every move.
type Human struct {
	console *Console
}

func NewHuman(console *Console) *Human {
	return &Human{console: console}
}

func (h *Human) FindMove(board tictactoe.Board) (tictactoe.Position, error) {
	return h.console.Position("Which position would you like to play? [0-8]", board)
}
