package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"multiagent/game/tictactoe"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

const (
	retryUnparsed = "I didn't catch that."
	retryOccupied = "That square has already been played."
)

// Console reads answers from a human and writes prompts and boards back.
type Console struct {
	in  *bufio.Reader
	out *termenv.Output
}

// NewConsole detects the colour support of out unless a profile is passed in options.
func NewConsole(in io.Reader, out io.Writer, options ...termenv.OutputOption) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: termenv.NewOutput(out, options...),
	}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Affirm asks a yes/no question until it gets Y, y, N or n.
func (c *Console) Affirm(question string) (bool, error) {
	for {
		c.Printf("%s [Y/n] ", question)
		response, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch response {
		case "Y", "y":
			return true, nil
		case "N", "n":
			return false, nil
		}
		c.Printf("%s\n", retryUnparsed)
	}
}

// Position asks for a square until it gets one that is free on board.
func (c *Console) Position(prompt string, board tictactoe.Board) (tictactoe.Position, error) {
	for {
		c.Printf("%s ", prompt)
		response, err := c.readLine()
		if err != nil {
			return 0, err
		}
		position, err := tictactoe.ParsePosition(response)
		if err != nil {
			c.Printf("%s\n", retryUnparsed)
			continue
		}
		if _, ok := board.Successor(position); !ok {
			c.Printf("%s\n", retryOccupied)
			continue
		}
		return position, nil
	}
}

// Board renders the grid with coloured marks. Free squares show their position number.
func (c *Console) Board(board tictactoe.Board) string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		cells := make([]any, 3)
		for col := range cells {
			cells[col] = c.cell(board, tictactoe.Position(row*3+col))
		}
		fmt.Fprintf(&sb, " %s | %s | %s \n", cells...)
	}
	return sb.String()
}

func (c *Console) cell(board tictactoe.Board, position tictactoe.Position) string {
	switch mark := board.Cell(position); mark {
	case tictactoe.X:
		return c.out.String(mark.String()).Foreground(c.out.Color("1")).Bold().String()
	case tictactoe.O:
		return c.out.String(mark.String()).Foreground(c.out.Color("4")).Bold().String()
	}
	return c.out.String(position.String()).Faint().String()
}

// readLine returns the next trimmed line. A final line without a newline is still returned.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read from the console")
	}
	return strings.TrimSpace(line), nil
}
