package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrIllegalMove       = errors.New("illegal move")
	ErrNoLegalMoves      = errors.New("no legal moves")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMode       = errors.New("unknown game mode")
	ErrNotFound          = errors.New("not found")
)
