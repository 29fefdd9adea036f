package entity

import (
	"errors"
	"fmt"
)

// Size is the side length of the board.
const Size = 3

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

const (
	X Side = iota + 1
	O
)

const (
	markX     = "X"
	markO     = "O"
	markEmpty = "-"
)

var (
	ErrInvalidCell = errors.New("invalid cell value")
	ErrInvalidSide = errors.New("invalid side")

	// WinCombos are the rows, columns and diagonals as row-major cell indices.
	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Cell is the content of a single board position.
type Cell int

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return markX
	case PlayerO:
		return markO
	default:
		return markEmpty
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case markX:
		*that = PlayerX
	case markO:
		*that = PlayerO
	case markEmpty, "":
		*that = Empty
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCell, text)
	}

	return nil
}

// Side is one of the two players. Its value doubles as the Cell it occupies.
type Side int

func (that Side) Cell() Cell {
	return Cell(that)
}

func (that Side) Opponent() Side {
	if that == X {
		return O
	}
	return X
}

func (that Side) String() string {
	return that.Cell().String()
}

func (that Side) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case markX:
		*that = X
	case markO:
		*that = O
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSide, text)
	}

	return nil
}

// Move addresses a board position.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// PlayedMove is a move together with the side that made it.
type PlayedMove struct {
	Side Side `json:"side"`
	Move
}

// Board is the 3x3 grid indexed as [row][col].
type Board [Size][Size]Cell

func (that *Board) at(index int) Cell {
	return that[index/Size][index%Size]
}
