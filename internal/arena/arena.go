// Package arena plays computer agents against each other.
package arena

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Games   int
	Workers int
	Size    int
}

// Tally counts outcomes from the point of view of the two agents.
type Tally struct {
	First       string `json:"first"`
	Second      string `json:"second"`
	FirstWins   int    `json:"first_wins"`
	SecondWins  int    `json:"second_wins"`
	Draws       int    `json:"draws"`
	GamesPlayed int    `json:"games_played"`
}

func (that *Tally) record(winner, firstMark entity.Mark) {
	that.GamesPlayed++

	switch winner {
	case entity.PlayerTie:
		that.Draws++
	case firstMark:
		that.FirstWins++
	default:
		that.SecondWins++
	}
}

// Run - plays cfg.Games games between first and second on at most cfg.Workers
// goroutines. The agents swap marks every game; X always opens. Both agents must
// be safe for concurrent use.
func Run(ctx context.Context, logger *slog.Logger, first, second agent.Agent, cfg Config) (Tally, error) {
	log := logger.With("component", "arena")

	tally := Tally{First: first.Name(), Second: second.Name()}

	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.Workers))

	for i := 0; i < cfg.Games; i++ {
		if gctx.Err() != nil {
			break
		}

		i := i

		g.Go(func() error {
			game, err := entity.NewGame(fmt.Sprintf("arena-%d", i), cfg.Size, entity.PlayerX)
			if err != nil {
				return fmt.Errorf("could not create game: %w", err)
			}

			x, o, firstMark := first, second, entity.PlayerX
			if i%2 == 1 {
				x, o, firstMark = second, first, entity.PlayerO
			}

			match := usecase.NewMatch(logger, usecase.AgentSource{Agent: x}, usecase.AgentSource{Agent: o}, nil)
			if err = match.Play(gctx, game); err != nil {
				return fmt.Errorf("game %d failed: %w", i, err)
			}

			mu.Lock()
			tally.record(game.Winner, firstMark)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return tally, err
	}

	if err := ctx.Err(); err != nil {
		return tally, fmt.Errorf("arena interrupted: %w", err)
	}

	log.Info("arena finished",
		"first", tally.First,
		"second", tally.Second,
		"first_wins", tally.FirstWins,
		"second_wins", tally.SecondWins,
		"draws", tally.Draws,
	)

	return tally, nil
}
