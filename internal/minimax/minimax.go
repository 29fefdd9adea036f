// Package minimax implements exhaustive depth-limited minimax search over a GameState.
//
// Scores are fixed to the sides rather than to the mover: a position won by O is
// worth +10, a position won by X is worth -10, and a tie or an exhausted depth
// budget is worth 0. O is therefore always the maximizer and X the minimizer.
package minimax

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	WinScore  = 10
	LossScore = -10
	TieScore  = 0
)

// Result is the value of a position and the move that achieves it.
// HasMove is false at terminal nodes, at depth 0 and when no legal move exists.
type Result struct {
	Score   int
	Move    entity.Move
	HasMove bool
}

// Search returns the minimax value of state with side to move, looking at most depth plies ahead.
//
// Moves are tried in row-major order. O keeps a move whose score is >= the best so far, so ties go
// to the later move; X keeps a move only when its score is strictly lower, so ties go to the earlier
// move. The board is mutated while searching and restored before Search returns.
func Search(state *entity.GameState, side entity.Side, depth int) Result {
	if score, ok := evaluate(state, depth); ok {
		return Result{Score: score}
	}

	if side == entity.O {
		return maximize(state, depth)
	}

	return minimize(state, depth)
}

// MustSearch is Search for callers that have already checked the position is not terminal.
// It panics when no move can be reported.
func MustSearch(state *entity.GameState, side entity.Side, depth int) Result {
	result := Search(state, side, depth)
	if !result.HasMove {
		panic(fmt.Errorf("%w: search for %s at depth %d", apperror.ErrNoLegalMoves, side, depth))
	}

	return result
}

// evaluate scores the node when the search stops here.
func evaluate(state *entity.GameState, depth int) (int, bool) {
	switch {
	case state.HasWon(entity.O):
		return WinScore, true
	case state.HasWon(entity.X):
		return LossScore, true
	case state.IsFull(), depth == 0:
		return TieScore, true
	default:
		return 0, false
	}
}

func maximize(state *entity.GameState, depth int) Result {
	best := Result{Score: math.MinInt}

	for _, move := range state.LegalMoves() {
		if score := tryMove(state, entity.O, move, depth); score >= best.Score {
			best = Result{Score: score, Move: move, HasMove: true}
		}
	}

	return best
}

func minimize(state *entity.GameState, depth int) Result {
	worst := Result{Score: math.MaxInt}

	for _, move := range state.LegalMoves() {
		if score := tryMove(state, entity.X, move, depth); score < worst.Score {
			worst = Result{Score: score, Move: move, HasMove: true}
		}
	}

	return worst
}

// tryMove places side on move, scores the reply and clears the cell again.
func tryMove(state *entity.GameState, side entity.Side, move entity.Move, depth int) int {
	state.Place(side, move.Row, move.Col)
	defer state.Clear(move.Row, move.Col)

	return Search(state, side.Opponent(), depth-1).Score
}
