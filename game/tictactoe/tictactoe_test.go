package tictactoe

import (
	"slices"
	"testing"

	"multiagent/game"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New()

	agent, ok := b.NextAgent()
	require.True(t, ok, "Empty board should not be finished")
	require.Equal(t, X, agent, "X should move first")
	for p := range Positions {
		require.Equal(t, None, b.Cell(p), "Square %v should be empty", p)
	}
}

func TestPositions(t *testing.T) {
	got := slices.Collect(game.Enumerator[Position](Positions).Seq())

	require.Len(t, got, Size)
	require.Equal(t, TopLeft, got[0], "Enumeration should start at the top left")
	require.Equal(t, BottomRight, got[Size-1], "Enumeration should end at the bottom right")
	require.Equal(t, 1, Center.Row())
	require.Equal(t, 2, BottomRight.Col())
}

func TestSuccessor(t *testing.T) {
	t.Run("claiming an empty square alternates players", func(t *testing.T) {
		b, ok := New().Successor(Center)

		require.True(t, ok, "Empty square should be legal")
		require.Equal(t, X, b.Cell(Center))
		agent, ok := b.NextAgent()
		require.True(t, ok)
		require.Equal(t, O, agent, "O should move after X")
	})

	t.Run("claimed square is illegal", func(t *testing.T) {
		b, _ := New().Successor(Center)

		_, ok := b.Successor(Center)

		require.False(t, ok, "Claimed square should be illegal")
		require.False(t, game.IsLegal[Board, Position, Player](b, Center))
		require.True(t, game.IsLegal[Board, Position, Player](b, TopLeft))
	})

	t.Run("out of range square is illegal", func(t *testing.T) {
		_, ok := New().Successor(Position(9))
		require.False(t, ok)
	})

	t.Run("successor leaves the original untouched", func(t *testing.T) {
		b := New()
		_, _ = b.Successor(TopLeft)

		require.Equal(t, None, b.Cell(TopLeft), "Board should be immutable")
	})

	t.Run("completing a line finishes the game", func(t *testing.T) {
		b := New()
		for _, p := range []Position{TopLeft, CenterLeft, TopCenter, Center, TopRight} {
			var ok bool
			b, ok = b.Successor(p)
			require.True(t, ok, "Move %v should be legal", p)
		}

		require.Equal(t, X, b.Winner())
		require.True(t, game.IsFinished[Board, Position, Player](b), "Win should finish the game")
		_, ok := b.Successor(BottomLeft)
		require.False(t, ok, "No move is legal on a finished board")
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		b := New()
		// X O X / X O O / O X X
		for _, p := range []Position{TopLeft, TopCenter, TopRight, Center, CenterLeft, CenterRight, BottomCenter, BottomLeft, BottomRight} {
			var ok bool
			b, ok = b.Successor(p)
			require.True(t, ok, "Move %v should be legal", p)
		}

		require.Equal(t, None, b.Winner())
		require.True(t, game.IsFinished[Board, Position, Player](b), "Full board should finish the game")
	})
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name  string
		cells [Size]Player
		want  Player
	}{
		{
			name:  "column",
			cells: [Size]Player{O, X, None, O, X, None, O, None, X},
			want:  O,
		},
		{
			name:  "anti-diagonal",
			cells: [Size]Player{O, O, X, None, X, None, X, None, None},
			want:  X,
		},
		{
			name:  "no line",
			cells: [Size]Player{X, O, X, None, None, None, None, None, None},
			want:  None,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := FromCells(tc.cells, X)
			require.Equal(t, tc.want, b.Winner())
			if tc.want != None {
				require.True(t, game.IsFinished[Board, Position, Player](b), "Board with a line should be finished")
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	won := FromCells([Size]Player{X, X, X, O, O, None, None, None, None}, O)

	require.Equal(t, game.Score(1), Outcome(X)(won))
	require.Equal(t, game.Score(-1), Outcome(O)(won))
	require.Equal(t, game.Score(0), Outcome(X)(New()))
}

func TestParsePosition(t *testing.T) {
	got, err := ParsePosition(" 4\n")
	require.NoError(t, err)
	require.Equal(t, Center, got)

	for _, input := range []string{"", "9", "-1", "a", "12"} {
		_, err := ParsePosition(input)
		require.Error(t, err, "Input %q should be rejected", input)
	}
}

func TestString(t *testing.T) {
	b, _ := New().Successor(TopLeft)
	b, _ = b.Successor(Center)

	require.Equal(t, "X |   |  \n--+---+--\n  | O |  \n--+---+--\n  |   |  ", b.String())
}
