package agent

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// DecisionStore keeps decisions of deterministic agents.
type DecisionStore interface {
	GetByKey(ctx context.Context, key string) (*entity.Decision, error)
	Save(ctx context.Context, decision *entity.Decision) error
}

// Cached memoizes a deterministic agent. Store failures are logged and never fail a move.
type Cached struct {
	logger *slog.Logger
	agent  Agent
	store  DecisionStore
}

func NewCached(logger *slog.Logger, agent Agent, store DecisionStore) *Cached {
	return &Cached{
		logger: orDiscard(logger),
		agent:  agent,
		store:  store,
	}
}

func (that *Cached) Name() string {
	return that.agent.Name()
}

func (that *Cached) ChooseMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, bool) {
	key := entity.DecisionKey(that.agent.Name(), mark, board.Key())

	decision, err := that.store.GetByKey(ctx, key)
	switch {
	case err == nil && playable(board, decision):
		that.logger.DebugContext(ctx, "decision cache hit", "key", key)
		return decision.Move, true
	case err == nil:
		that.logger.WarnContext(ctx, "cached decision is not playable", "key", key)
	case errors.Is(err, apperror.ErrDecisionNotFound):
	default:
		that.logger.WarnContext(ctx, "could not read decision", "key", key, "error", err)
	}

	move, ok := that.agent.ChooseMove(ctx, board, mark)
	if !ok {
		return entity.Move{}, false
	}

	decision = &entity.Decision{
		Agent: that.agent.Name(),
		Board: board.Key(),
		Mark:  mark,
		Move:  move,
	}

	if err = that.store.Save(ctx, decision); err != nil {
		that.logger.WarnContext(ctx, "could not save decision", "key", key, "error", err)
	}

	return move, true
}

func playable(board *entity.Board, decision *entity.Decision) bool {
	return decision != nil && board.InBounds(decision.Move) && board.At(decision.Move) == entity.EmptyCell
}
