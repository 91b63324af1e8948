package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/search"
)

// TraceSink receives the explored game tree after each traced decision.
type TraceSink interface {
	ShowTrace(root *search.SearchNode)
}

// Search delegates the decision to a minimax searcher.
type Search struct {
	name     string
	logger   *slog.Logger
	searcher *search.Searcher
	trace    TraceSink
}

// NewExhaustive - full-depth minimax without pruning. A non-nil trace receives the tree of every decision.
func NewExhaustive(logger *slog.Logger, trace TraceSink) *Search {
	return &Search{
		name:     KindExhaustive,
		logger:   orDiscard(logger),
		searcher: search.New(),
		trace:    trace,
	}
}

// NewBounded - alpha-beta minimax cut off at depth with the heuristic evaluator.
func NewBounded(logger *slog.Logger, depth int) *Search {
	return &Search{
		name:     fmt.Sprintf("%s-d%d", KindBounded, depth),
		logger:   orDiscard(logger),
		searcher: search.New(search.WithDepthLimit(depth), search.WithAlphaBeta()),
	}
}

func (that *Search) Name() string {
	return that.name
}

func (that *Search) ChooseMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, bool) {
	var (
		result search.Result
		ok     bool
	)

	if that.trace != nil {
		recorder := search.NewTreeRecorder()
		result, ok = that.searcher.BestMoveObserved(board, mark, recorder)
		if ok {
			that.trace.ShowTrace(recorder.Root())
		}
	} else {
		result, ok = that.searcher.BestMove(board, mark)
	}

	if !ok {
		that.logger.DebugContext(ctx, "no legal moves", "mark", mark)
		return entity.Move{}, false
	}

	that.logger.DebugContext(ctx, "move chosen",
		"mark", mark,
		"move", result.Move.String(),
		"value", result.Value,
		"nodes", result.Nodes,
	)

	return result.Move, true
}
