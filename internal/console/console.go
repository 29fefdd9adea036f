// Package console talks to the players over line-oriented text streams.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const badInput = "Bad input, try again"

var ErrInputClosed = errors.New("input closed")

type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (that *Console) PrintInstructions() {
	that.println("Welcome to TicTacToe!")
	that.println("Take turns placing X's and O's on the grid. X moves first.")
	that.println("The first player to get three of their marks in a row wins!")
}

// SelectDifficulty asks for a difficulty tier until a known one is entered.
func (that *Console) SelectDifficulty(ctx context.Context) (entity.Difficulty, error) {
	for {
		answer, err := that.ask(ctx, "Select a difficulty level. Type 'easy', 'medium', or 'hard'")
		if err != nil {
			return "", err
		}

		difficulty, err := entity.ParseDifficulty(answer)
		if err == nil {
			return difficulty, nil
		}

		that.println(badInput)
	}
}

// GetHumanMove reads a row and a column. Non-numeric input is reported as apperror.ErrIllegalMove.
func (that *Console) GetHumanMove(ctx context.Context, _ entity.Side) (entity.Move, error) {
	row, err := that.askInt(ctx, "What row do you choose?")
	if err != nil {
		return entity.Move{}, err
	}

	col, err := that.askInt(ctx, "What column do you choose?")
	if err != nil {
		return entity.Move{}, err
	}

	return entity.Move{Row: row, Col: col}, nil
}

func (that *Console) RejectMove(_ error) {
	that.println(badInput)
}

func (that *Console) AnnounceTurn(side entity.Side) {
	that.println(fmt.Sprintf("Player %s, it's your turn", side))
}

func (that *Console) AnnounceOutcome(outcome entity.Outcome) {
	that.println(outcome.Message())
	that.println("Game Over")
}

// Render prints the board with row and column indices.
func (that *Console) Render(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("\nCurrent Board:\n")
	sb.WriteString("  ")
	for col := 0; col < entity.Size; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")

	for row := 0; row < entity.Size; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < entity.Size; col++ {
			fmt.Fprintf(&sb, " %s", board[row][col])
		}
		sb.WriteString("\n")
	}

	that.print(sb.String())
}

func (that *Console) askInt(ctx context.Context, prompt string) (int, error) {
	answer, err := that.ask(ctx, prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrIllegalMove, answer)
	}

	return value, nil
}

func (that *Console) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	that.println(prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Console) println(line string) {
	that.print(line + "\n")
}

func (that *Console) print(text string) {
	// a broken terminal is not a game error
	_, _ = io.WriteString(that.out, text)
}
