package player

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"multiagent/agent"
	"multiagent/game/tictactoe"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

var _ agent.Agent[tictactoe.Board, tictactoe.Position] = (*Human)(nil)

func plainConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return NewConsole(strings.NewReader(input), &out, termenv.WithProfile(termenv.Ascii)), &out
}

func TestAffirm(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  bool
		tries int
	}{
		{name: "upper case yes", input: "Y\n", want: true, tries: 1},
		{name: "lower case no", input: "n\n", want: false, tries: 1},
		{name: "surrounding spaces", input: "  y \n", want: true, tries: 1},
		{name: "retries until understood", input: "maybe\nyes\nN\n", want: false, tries: 3},
		{name: "last line without newline", input: "y", want: true, tries: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, out := plainConsole(tc.input)

			got, err := c.Affirm("Would you like to be X?")

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.tries, strings.Count(out.String(), "Would you like to be X? [Y/n] "), "Question should be asked once per try")
			require.Equal(t, tc.tries-1, strings.Count(out.String(), "I didn't catch that."))
		})
	}

	t.Run("end of input", func(t *testing.T) {
		c, _ := plainConsole("what\n")

		_, err := c.Affirm("Again?")

		require.ErrorIs(t, err, io.EOF, "Running out of input should be reported")
	})
}

func TestPosition(t *testing.T) {
	board, ok := tictactoe.New().Successor(tictactoe.Center)
	require.True(t, ok)

	t.Run("accepts a free square", func(t *testing.T) {
		c, out := plainConsole("2\n")

		got, err := c.Position("Where?", board)

		require.NoError(t, err)
		require.Equal(t, tictactoe.TopRight, got)
		require.Equal(t, "Where? ", out.String())
	})

	t.Run("rejects bad input and occupied squares", func(t *testing.T) {
		c, out := plainConsole("nine\n9\n4\n0\n")

		got, err := c.Position("Where?", board)

		require.NoError(t, err)
		require.Equal(t, tictactoe.TopLeft, got)
		require.Equal(t, 2, strings.Count(out.String(), "I didn't catch that."), "Unparsable input should be retried")
		require.Equal(t, 1, strings.Count(out.String(), "That square has already been played."), "Occupied squares should be retried")
	})

	t.Run("human agent reads from the console", func(t *testing.T) {
		c, out := plainConsole("8\n")

		got, err := NewHuman(c).FindMove(board)

		require.NoError(t, err)
		require.Equal(t, tictactoe.BottomRight, got)
		require.Contains(t, out.String(), "Which position would you like to play? [0-8]")
	})
}

func TestBoard(t *testing.T) {
	board := tictactoe.New()
	for _, p := range []tictactoe.Position{tictactoe.TopLeft, tictactoe.Center} {
		var ok bool
		board, ok = board.Successor(p)
		require.True(t, ok)
	}

	t.Run("plain", func(t *testing.T) {
		c, _ := plainConsole("")

		want := " X | 1 | 2 \n" +
			"---+---+---\n" +
			" 3 | O | 5 \n" +
			"---+---+---\n" +
			" 6 | 7 | 8 \n"
		require.Equal(t, want, c.Board(board))
	})

	t.Run("coloured", func(t *testing.T) {
		c := NewConsole(strings.NewReader(""), io.Discard, termenv.WithProfile(termenv.ANSI))

		got := c.Board(board)

		require.Contains(t, got, "\x1b[", "ANSI terminals should get escape sequences")
		require.Contains(t, got, "X")
		require.Contains(t, got, "O")
	})
}
