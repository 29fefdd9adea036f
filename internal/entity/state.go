package entity

// GameState owns the board of a single game. It is not safe for concurrent use:
// the search places and clears cells on it while exploring.
type GameState struct {
	Board Board `json:"board"`
}

func NewGameState() *GameState {
	return &GameState{}
}

// Place writes side into the cell without checking legality. Callers check IsLegal first.
func (that *GameState) Place(side Side, row, col int) {
	that.Board[row][col] = side.Cell()
}

// Clear resets the cell to Empty, undoing a Place.
func (that *GameState) Clear(row, col int) {
	that.Board[row][col] = Empty
}

func (that *GameState) Cell(row, col int) Cell {
	return that.Board[row][col]
}

func (that *GameState) IsLegal(row, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}

	return that.Board[row][col] == Empty
}

func (that *GameState) HasWon(side Side) bool {
	mark := side.Cell()

	for _, combo := range WinCombos {
		a, b, c := that.Board.at(combo[0]), that.Board.at(combo[1]), that.Board.at(combo[2])
		if a == mark && b == mark && c == mark {
			return true
		}
	}

	return false
}

func (that *GameState) IsFull() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.Board[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

func (that *GameState) IsTerminal() bool {
	return that.HasWon(X) || that.HasWon(O) || that.IsFull()
}

// LegalMoves lists the empty cells in row-major order.
func (that *GameState) LegalMoves() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.Board[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Outcome reports the result of the position. X is checked before O.
func (that *GameState) Outcome() Outcome {
	switch {
	case that.HasWon(X):
		return XWins
	case that.HasWon(O):
		return OWins
	case that.IsFull():
		return Tie
	default:
		return InProgress
	}
}
