package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

// Mover chooses the next move for side. The returned move must be legal.
type Mover interface {
	NextMove(ctx context.Context, state *entity.GameState, side entity.Side) (entity.Move, error)
}

// HumanMoveProvider asks a person for a move.
type HumanMoveProvider interface {
	// GetHumanMove blocks until the player enters coordinates. Unparsable input is
	// reported as apperror.ErrIllegalMove.
	GetHumanMove(ctx context.Context, side entity.Side) (entity.Move, error)
	// RejectMove tells the player the last input was not accepted.
	RejectMove(err error)
}

type HumanMover struct {
	provider HumanMoveProvider
}

func NewHumanMover(provider HumanMoveProvider) *HumanMover {
	return &HumanMover{provider: provider}
}

// NextMove re-prompts until the player supplies a legal move.
func (that *HumanMover) NextMove(ctx context.Context, state *entity.GameState, side entity.Side) (entity.Move, error) {
	for {
		move, err := that.provider.GetHumanMove(ctx, side)
		if errors.Is(err, apperror.ErrIllegalMove) {
			that.provider.RejectMove(err)
			continue
		}

		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to get human move: %w", err)
		}

		if state.IsLegal(move.Row, move.Col) {
			return move, nil
		}

		that.provider.RejectMove(fmt.Errorf("%w: %s", apperror.ErrIllegalMove, move))
	}
}

type MinimaxMover struct {
	depth int
}

func NewMinimaxMover(depth int) *MinimaxMover {
	return &MinimaxMover{depth: depth}
}

func (that *MinimaxMover) NextMove(_ context.Context, state *entity.GameState, side entity.Side) (entity.Move, error) {
	if state.IsTerminal() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	result := minimax.Search(state, side, that.depth)
	if !result.HasMove {
		return entity.Move{}, fmt.Errorf("%w: depth %d", apperror.ErrNoLegalMoves, that.depth)
	}

	return result.Move, nil
}

// RandomMover plays a uniformly random legal move.
type RandomMover struct {
	rnd *rand.Rand
}

func NewRandomMover(seed int64) *RandomMover {
	return &RandomMover{rnd: rand.New(rand.NewSource(seed))} //nolint: gosec // it's ok
}

func (that *RandomMover) NextMove(_ context.Context, state *entity.GameState, _ entity.Side) (entity.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoLegalMoves
	}

	return moves[that.rnd.Intn(len(moves))], nil
}
