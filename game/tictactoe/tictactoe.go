// Package tictactoe implements the 3x3 grid-claiming game on top of game.State.
package tictactoe

import (
	"fmt"
	"strings"

	"multiagent/game"
)

type Player int

const (
	None Player = iota
	X
	O
)

// Other returns the opponent of p. None has no opponent.
func (p Player) Other() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	}
	return None
}

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// Position is one of the nine squares, numbered row-major from the top left.
type Position int

const (
	TopLeft Position = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

const Size = 9

// Row and Col of the square on the grid.
func (p Position) Row() int { return int(p) / 3 }
func (p Position) Col() int { return int(p) % 3 }

func (p Position) valid() bool {
	return p >= TopLeft && p <= BottomRight
}

func (p Position) String() string {
	return fmt.Sprintf("%d", int(p))
}

// ParsePosition reads a square number between 0 and 8.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 || s[0] < '0' || s[0] > '8' {
		return 0, fmt.Errorf("invalid position %q: expected a digit between 0 and 8", s)
	}
	return Position(s[0] - '0'), nil
}

// Positions enumerates every square in row-major order.
func Positions(yield func(Position) bool) {
	for p := TopLeft; p <= BottomRight; p++ {
		if !yield(p) {
			return
		}
	}
}

var lines = [8][3]Position{
	{TopLeft, TopCenter, TopRight},
	{CenterLeft, Center, CenterRight},
	{BottomLeft, BottomCenter, BottomRight},
	{TopLeft, CenterLeft, BottomLeft},
	{TopCenter, Center, BottomCenter},
	{TopRight, CenterRight, BottomRight},
	{TopLeft, Center, BottomRight},
	{TopRight, Center, BottomLeft},
}

// Board is an immutable game position. The zero value is a finished, empty board; use New.
type Board struct {
	active Player
	cells  [Size]Player
}

var _ game.State[Board, Position, Player] = Board{}

// New returns the empty board with X to move.
func New() Board {
	return Board{active: X}
}

// FromCells builds a position from claimed squares, with active to move. It is meant for
// setting up positions; the active player is cleared if the cells already end the game.
func FromCells(cells [Size]Player, active Player) Board {
	b := Board{active: active, cells: cells}
	if b.Winner() != None || b.full() {
		b.active = None
	}
	return b
}

func (b Board) NextAgent() (Player, bool) {
	return b.active, b.active != None
}

func (b Board) Successor(p Position) (Board, bool) {
	if b.active == None || !p.valid() || b.cells[p] != None {
		return Board{}, false
	}

	next := b
	next.cells[p] = b.active
	if next.Winner() != None || next.full() {
		next.active = None
	} else {
		next.active = b.active.Other()
	}
	return next, true
}

// Cell returns the player who claimed p, or None.
func (b Board) Cell(p Position) Player {
	return b.cells[p]
}

// Winner returns the player owning a full line, or None.
func (b Board) Winner() Player {
	for _, line := range lines {
		owner := b.cells[line[0]]
		if owner != None && owner == b.cells[line[1]] && owner == b.cells[line[2]] {
			return owner
		}
	}
	return None
}

func (b Board) full() bool {
	for _, cell := range b.cells {
		if cell == None {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("\n--+---+--\n")
		}
		fmt.Fprintf(&sb, "%s | %s | %s", b.cells[row*3], b.cells[row*3+1], b.cells[row*3+2])
	}
	return sb.String()
}

// Outcome scores finished boards from player's perspective: +1 for a win, -1 for a loss and 0
// for a draw or an unfinished board.
func Outcome(player Player) game.Evaluate[Board, game.Score] {
	return func(b Board) game.Score {
		switch b.Winner() {
		case None:
			return 0
		case player:
			return 1
		default:
			return -1
		}
	}
}
