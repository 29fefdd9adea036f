package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = Empty
	x = PlayerX
	o = PlayerO
)

func stateOf(board Board) *GameState {
	return &GameState{Board: board}
}

func TestNewGameState(t *testing.T) {
	// When: a new game state is created
	state := NewGameState()

	// Then: every cell is empty and every move is legal
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			assert.Equal(t, Empty, state.Cell(row, col))
			assert.True(t, state.IsLegal(row, col))
		}
	}
	assert.Len(t, state.LegalMoves(), Size*Size)
	assert.Equal(t, InProgress, state.Outcome())
}

func TestGameState_IsLegal(t *testing.T) {
	state := stateOf(Board{
		{x, e, e},
		{e, o, e},
		{e, e, e},
	})

	tests := []struct {
		name     string
		row, col int
		legal    bool
	}{
		{name: "empty cell", row: 0, col: 1, legal: true},
		{name: "occupied by X", row: 0, col: 0, legal: false},
		{name: "occupied by O", row: 1, col: 1, legal: false},
		{name: "row too large", row: 3, col: 0, legal: false},
		{name: "col too large", row: 0, col: 3, legal: false},
		{name: "negative row", row: -1, col: 0, legal: false},
		{name: "negative col", row: 0, col: -1, legal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.legal, state.IsLegal(tt.row, tt.col))
		})
	}
}

func TestGameState_PlaceAndClear(t *testing.T) {
	t.Run("Place then Clear restores the board", func(t *testing.T) {
		// Given: a position in progress
		state := stateOf(Board{
			{x, e, e},
			{e, o, e},
			{e, e, e},
		})
		before := state.Board

		for _, move := range state.LegalMoves() {
			for _, side := range []Side{X, O} {
				// When: a side is placed and the cell reset
				state.Place(side, move.Row, move.Col)
				assert.Equal(t, side.Cell(), state.Cell(move.Row, move.Col))
				state.Clear(move.Row, move.Col)

				// Then: the board equals its previous value
				require.Equal(t, before, state.Board)
			}
		}
	})

	t.Run("Place does not check legality", func(t *testing.T) {
		// Given: a cell occupied by X
		state := NewGameState()
		state.Place(X, 1, 1)

		// When: O is placed on the same cell
		state.Place(O, 1, 1)

		// Then: the cell is overwritten
		assert.Equal(t, PlayerO, state.Cell(1, 1))
	})
}

func TestGameState_HasWon(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		winner Side
	}{
		{name: "row 0 X", board: Board{{x, x, x}, {o, o, e}, {e, e, e}}, winner: X},
		{name: "row 1 O", board: Board{{x, x, e}, {o, o, o}, {x, e, e}}, winner: O},
		{name: "row 2 X", board: Board{{o, o, e}, {e, e, e}, {x, x, x}}, winner: X},
		{name: "col 0 O", board: Board{{o, x, e}, {o, x, e}, {o, e, x}}, winner: O},
		{name: "col 1 X", board: Board{{o, x, e}, {o, x, e}, {e, x, e}}, winner: X},
		{name: "col 2 O", board: Board{{x, x, o}, {e, e, o}, {x, e, o}}, winner: O},
		{name: "main diagonal X", board: Board{{x, o, e}, {e, x, o}, {e, e, x}}, winner: X},
		{name: "anti diagonal O", board: Board{{x, x, o}, {e, o, e}, {o, e, x}}, winner: O},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := stateOf(tt.board)

			assert.True(t, state.HasWon(tt.winner))
			assert.False(t, state.HasWon(tt.winner.Opponent()))
			assert.True(t, state.IsTerminal())
		})
	}

	t.Run("No line on a board in progress", func(t *testing.T) {
		state := stateOf(Board{
			{x, o, x},
			{e, o, e},
			{o, x, e},
		})

		assert.False(t, state.HasWon(X))
		assert.False(t, state.HasWon(O))
		assert.False(t, state.IsTerminal())
	})
}

func TestGameState_HasWonExclusiveInPlay(t *testing.T) {
	// Given: every game reachable by alternating legal placement
	var walk func(state *GameState, side Side)
	walk = func(state *GameState, side Side) {
		xWon, oWon := state.HasWon(X), state.HasWon(O)

		// Then: at most one side holds a line
		require.False(t, xWon && oWon, "both sides won on %v", state.Board)

		if state.IsTerminal() {
			return
		}

		for _, move := range state.LegalMoves() {
			state.Place(side, move.Row, move.Col)
			walk(state, side.Opponent())
			state.Clear(move.Row, move.Col)
		}
	}

	walk(NewGameState(), X)
}

func TestGameState_IsFullAndTerminal(t *testing.T) {
	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a full board with no three in a row
		state := stateOf(Board{
			{x, o, x},
			{x, o, o},
			{o, x, x},
		})

		// Then: it is full, nobody won and the game is over
		assert.True(t, state.IsFull())
		assert.False(t, state.HasWon(X))
		assert.False(t, state.HasWon(O))
		assert.True(t, state.IsTerminal())
		assert.Equal(t, Tie, state.Outcome())
		assert.Empty(t, state.LegalMoves())
	})

	t.Run("Terminal iff a side won or the board is full", func(t *testing.T) {
		boards := []Board{
			{},
			{{x, x, x}, {o, o, e}, {e, e, e}},
			{{x, o, x}, {x, o, o}, {o, x, x}},
			{{x, o, x}, {x, o, o}, {o, x, e}},
			{{o, x, x}, {x, o, e}, {x, e, o}},
		}

		for _, board := range boards {
			state := stateOf(board)
			expected := state.HasWon(X) || state.HasWon(O) || state.IsFull()
			assert.Equal(t, expected, state.IsTerminal(), "board %v", board)
		}
	})
}

func TestGameState_LegalMovesOrder(t *testing.T) {
	// Given: a board with scattered empty cells
	state := stateOf(Board{
		{x, e, o},
		{e, x, e},
		{o, e, e},
	})

	// When: listing the legal moves
	moves := state.LegalMoves()

	// Then: they come in row-major order
	expected := []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}
	assert.Equal(t, expected, moves)
}

func TestGameState_Outcome(t *testing.T) {
	assert.Equal(t, XWins, stateOf(Board{{x, x, x}, {o, o, e}, {e, e, e}}).Outcome())
	assert.Equal(t, OWins, stateOf(Board{{o, x, x}, {x, o, e}, {e, e, o}}).Outcome())
	assert.Equal(t, Tie, stateOf(Board{{x, o, x}, {x, o, o}, {o, x, x}}).Outcome())
	assert.Equal(t, InProgress, stateOf(Board{{x, e, e}, {e, e, e}, {e, e, e}}).Outcome())
}
