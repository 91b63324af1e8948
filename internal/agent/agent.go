// Package agent contains the computer opponents.
package agent

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/search"
)

const (
	KindRandom     = "random"
	KindRules      = "rules"
	KindExhaustive = "exhaustive"
	KindBounded    = "bounded"
)

// Agent chooses a move for mark. The board is borrowed: it may be mutated during
// the call but must be restored before returning. ok is false when no move exists.
type Agent interface {
	Name() string
	ChooseMove(ctx context.Context, board *entity.Board, mark entity.Mark) (move entity.Move, ok bool)
}

// Options configure New. Zero values fall back to defaults.
type Options struct {
	Logger *slog.Logger
	Depth  int
	Trace  TraceSink
	Store  DecisionStore
	Rand   *rand.Rand
}

// BoardSize - returns the board size the agent kind plays on.
func BoardSize(kind string) (int, error) {
	switch kind {
	case KindRandom, KindRules, KindExhaustive:
		return entity.ClassicSize, nil
	case KindBounded:
		return entity.LargeSize, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownAgent, kind)
	}
}

// New - builds the agent of the given kind. Search agents are wrapped with the
// decision cache when a store is given.
func New(kind string, opts Options) (Agent, error) {
	logger := orDiscard(opts.Logger).With("component", "agent", "agent", kind)

	var agent Agent

	switch kind {
	case KindRandom:
		return NewRandom(opts.Rand), nil
	case KindRules:
		return NewRuleBased(NewRandom(opts.Rand)), nil
	case KindExhaustive:
		agent = NewExhaustive(logger, opts.Trace)
	case KindBounded:
		depth := opts.Depth
		if depth <= 0 {
			depth = search.DefaultDepth
		}

		agent = NewBounded(logger, depth)
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownAgent, kind)
	}

	// traced decisions must run the search to produce a tree
	if opts.Store != nil && opts.Trace == nil {
		agent = NewCached(logger, agent, opts.Store)
	}

	return agent, nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return logger
}
