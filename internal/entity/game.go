package entity

// Game is the record of a finished game.
type Game struct {
	ID         string       `json:"id"`
	Board      Board        `json:"board"`
	Outcome    Outcome      `json:"outcome"`
	Mode       Mode         `json:"mode"`
	Difficulty Difficulty   `json:"difficulty,omitempty"`
	Depth      int          `json:"depth,omitempty"`
	Moves      []PlayedMove `json:"moves"`
}

func NewGame(id string, mode Mode, difficulty Difficulty, depth int) *Game {
	return &Game{
		ID:         id,
		Mode:       mode,
		Difficulty: difficulty,
		Depth:      depth,
		Outcome:    InProgress,
		Moves:      []PlayedMove{},
	}
}

// Finish copies the final position and move history into the record.
func (that *Game) Finish(state *GameState, moves []PlayedMove) {
	that.Board = state.Board
	that.Outcome = state.Outcome()
	that.Moves = append(that.Moves[:0], moves...)
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsEnded()
}
