package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrMoverNotFound = errors.New("no mover for side")

// Renderer shows the game to the players.
type Renderer interface {
	Render(board entity.Board)
	AnnounceTurn(side entity.Side)
	AnnounceOutcome(outcome entity.Outcome)
}

// GameController alternates the two sides on one GameState until the game ends.
// X always moves first.
type GameController struct {
	logger   *slog.Logger
	state    *entity.GameState
	movers   map[entity.Side]Mover
	renderer Renderer

	turn    entity.Side
	outcome entity.Outcome
	history []entity.PlayedMove
}

func NewGameController(logger *slog.Logger, state *entity.GameState, moverX, moverO Mover, renderer Renderer) *GameController {
	return &GameController{
		logger:   logger.With("component", "game_controller"),
		state:    state,
		movers:   map[entity.Side]Mover{entity.X: moverX, entity.O: moverO},
		renderer: renderer,
		turn:     entity.X,
		outcome:  state.Outcome(),
		history:  []entity.PlayedMove{},
	}
}

func (that *GameController) State() *entity.GameState {
	return that.state
}

func (that *GameController) Turn() entity.Side {
	return that.turn
}

func (that *GameController) Outcome() entity.Outcome {
	return that.outcome
}

func (that *GameController) History() []entity.PlayedMove {
	return that.history
}

// Play runs half-moves until the game ends or ctx is cancelled.
func (that *GameController) Play(ctx context.Context) (entity.Outcome, error) {
	for !that.outcome.IsEnded() {
		if err := ctx.Err(); err != nil {
			return that.outcome, fmt.Errorf("game interrupted: %w", err)
		}

		if _, err := that.MakeTurn(ctx); err != nil {
			return that.outcome, err
		}
	}

	that.logger.Info("game over", "outcome", that.outcome, "moves", len(that.history))

	return that.outcome, nil
}

// MakeTurn asks the mover of the current side for a move and applies it.
func (that *GameController) MakeTurn(ctx context.Context) (entity.Outcome, error) {
	if that.outcome.IsEnded() {
		return that.outcome, apperror.ErrGameFinished
	}

	side := that.turn

	mover, ok := that.movers[side]
	if !ok || mover == nil {
		return that.outcome, fmt.Errorf("%w: %s", ErrMoverNotFound, side)
	}

	that.renderer.AnnounceTurn(side)

	move, err := mover.NextMove(ctx, that.state, side)
	if err != nil {
		return that.outcome, fmt.Errorf("failed to get move for %s: %w", side, err)
	}

	if !that.state.IsLegal(move.Row, move.Col) {
		return that.outcome, fmt.Errorf("%w: %s by %s", apperror.ErrIllegalMove, move, side)
	}

	that.state.Place(side, move.Row, move.Col)
	that.history = append(that.history, entity.PlayedMove{Side: side, Move: move})
	that.logger.Debug("move applied", "side", side, "row", move.Row, "col", move.Col)

	that.updateGameStatus(side)
	that.renderer.Render(that.state.Board)

	if that.outcome.IsEnded() {
		that.renderer.AnnounceOutcome(that.outcome)
	}

	return that.outcome, nil
}

// updateGameStatus - checks the game status after a move by side.
func (that *GameController) updateGameStatus(side entity.Side) {
	switch {
	case that.state.HasWon(side):
		that.outcome = entity.WinOutcome(side)
	case that.state.IsFull():
		that.outcome = entity.Tie
	default:
		that.turn = side.Opponent()
	}
}
