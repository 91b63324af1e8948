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

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/arena"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application on the process stdin and stdout until it ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := Run(ctx, logger, conf, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		log.Info("Received signal, shutting down")
		return nil
	}

	return err
}

// Run - wires the configured components and runs one game or one arena.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	var store agent.DecisionStore

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedis(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		store = repository.NewDecisionRepository(redisStorage, conf.Redis.TTL)
		log.Info("Decision cache enabled", "addr", redisAddrString)
	}

	switch conf.Mode {
	case config.ModeArena:
		return runArena(ctx, logger, conf, store, out)
	default:
		return runPlay(ctx, logger, conf, store, in, out)
	}
}

func runPlay(ctx context.Context, logger *slog.Logger, conf *config.Config, store agent.DecisionStore, in io.Reader, out io.Writer) error {
	source := console.NewSource(in, out)

	human, err := entity.ParseMark(conf.HumanMark)
	if err != nil {
		return fmt.Errorf("invalid human mark: %w", err)
	}

	humanFirst, trace := conf.HumanFirst, conf.Trace

	if conf.Ask {
		if human, err = source.AskMark(ctx); err != nil {
			return fmt.Errorf("could not read mark: %w", err)
		}

		if humanFirst, err = source.AskYesNo(ctx, "Do you want to go first?"); err != nil {
			return fmt.Errorf("could not read first move: %w", err)
		}

		if conf.Variant == agent.KindExhaustive {
			if trace, err = source.AskYesNo(ctx, "Do you want to see the game tree after each computer move?"); err != nil {
				return fmt.Errorf("could not read trace choice: %w", err)
			}
		}
	}

	display := console.NewDisplay(out, human, conf.Color)

	opts := agent.Options{
		Logger: logger,
		Depth:  conf.SearchDepth,
		Store:  store,
	}
	if trace {
		opts.Trace = display
	}

	computer, err := agent.New(conf.Variant, opts)
	if err != nil {
		return fmt.Errorf("could not create agent: %w", err)
	}

	size, err := agent.BoardSize(conf.Variant)
	if err != nil {
		return err
	}

	first := human
	if !humanFirst {
		first = human.Opponent()
	}

	game, err := entity.NewGame("console", size, first)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	display.Announce("Initial board:")
	display.ShowBoard(game.Board)

	sources := map[entity.Mark]usecase.MoveSource{
		human:            source,
		human.Opponent(): usecase.AgentSource{Agent: computer},
	}

	match := usecase.NewMatch(logger, sources[entity.PlayerX], sources[entity.PlayerO], display)
	if err = match.Play(ctx, game); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func runArena(ctx context.Context, logger *slog.Logger, conf *config.Config, store agent.DecisionStore, out io.Writer) error {
	size, err := agent.BoardSize(conf.Variant)
	if err != nil {
		return err
	}

	// full-depth search does not finish on the large board
	if size != entity.ClassicSize && (conf.Variant == agent.KindExhaustive || conf.Arena.Opponent == agent.KindExhaustive) {
		return fmt.Errorf("%w: exhaustive search cannot play on %dx%d", apperror.ErrUnsupportedSize, size, size)
	}

	opts := agent.Options{Logger: logger, Depth: conf.SearchDepth, Store: store}

	first, err := agent.New(conf.Variant, opts)
	if err != nil {
		return fmt.Errorf("could not create agent: %w", err)
	}

	second, err := agent.New(conf.Arena.Opponent, opts)
	if err != nil {
		return fmt.Errorf("could not create opponent: %w", err)
	}

	tally, err := arena.Run(ctx, logger, first, second, arena.Config{
		Games:   conf.Arena.Games,
		Workers: conf.Arena.Workers,
		Size:    size,
	})
	if err != nil {
		return fmt.Errorf("arena failed: %w", err)
	}

	display := console.NewDisplay(out, entity.EmptyCell, false)
	display.Announce("%s vs %s after %d games: %d wins, %d losses, %d draws",
		tally.First, tally.Second, tally.GamesPlayed, tally.FirstWins, tally.SecondWins, tally.Draws)

	return nil
}
