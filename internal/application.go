package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		// a second signal terminates the process even while waiting for input
		signal.Reset(syscall.SIGINT, syscall.SIGTERM)
		cancel()
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	game, err := PlayGame(ctx, logger, conf, os.Stdin, os.Stdout, gameRepo)
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("game saved", "gameID", game.ID, "outcome", game.Outcome)

	return nil
}

// PlayGame - plays a full game on the given streams and stores its record.
func PlayGame(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	in io.Reader,
	out io.Writer,
	gameRepo repository.GameRepository,
) (*entity.Game, error) {
	log := logger.With("component", "app", "method", "PlayGame")

	mode := conf.GameMode()
	cons := console.New(in, out)
	cons.PrintInstructions()

	var (
		difficulty entity.Difficulty
		depth      int
	)

	if mode.HasComputer() && !conf.Computer.Random {
		var err error
		if difficulty, depth, err = selectDepth(ctx, conf, cons); err != nil {
			return nil, err
		}
	}

	game := entity.NewGame(pkg.GenerateGameID(), mode, difficulty, depth)
	log = log.With("gameID", game.ID, "mode", mode, "difficulty", difficulty, "depth", depth)
	log.Info("game started")

	moverX := newMover(conf, cons, mode, entity.X, depth)
	moverO := newMover(conf, cons, mode, entity.O, depth)

	state := entity.NewGameState()
	controller := tictactoe.NewGameController(logger, state, moverX, moverO, cons)
	cons.Render(state.Board)

	if _, err := controller.Play(ctx); err != nil {
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	game.Finish(state, controller.History())

	if err := gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return game, nil
}

// selectDepth - the preset difficulty from the config, otherwise ask the player once.
func selectDepth(ctx context.Context, conf *config.Config, cons *console.Console) (entity.Difficulty, int, error) {
	difficulty, ok := conf.PresetDifficulty()
	if !ok {
		var err error
		if difficulty, err = cons.SelectDifficulty(ctx); err != nil {
			return "", 0, fmt.Errorf("failed to select difficulty: %w", err)
		}
	}

	depth, err := conf.Depths.For(difficulty)
	if err != nil {
		return "", 0, fmt.Errorf("failed to map difficulty: %w", err)
	}

	return difficulty, depth, nil
}

func newMover(conf *config.Config, cons *console.Console, mode entity.Mode, side entity.Side, depth int) tictactoe.Mover {
	switch {
	case !mode.IsComputer(side):
		return tictactoe.NewHumanMover(cons)
	case conf.Computer.Random:
		return tictactoe.NewRandomMover(conf.Computer.Seed + int64(side))
	default:
		return tictactoe.NewMinimaxMover(depth)
	}
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage), closeFn, nil
}
