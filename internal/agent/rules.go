package agent

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// RuleBased wins if it can, blocks if it must, takes the center if free and
// otherwise defers to a fallback agent.
type RuleBased struct {
	fallback Agent
}

func NewRuleBased(fallback Agent) *RuleBased {
	return &RuleBased{fallback: fallback}
}

func (that *RuleBased) Name() string {
	return KindRules
}

func (that *RuleBased) ChooseMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, bool) {
	if move, ok := winningMove(board, mark); ok {
		return move, true
	}

	if move, ok := winningMove(board, mark.Opponent()); ok {
		return move, true
	}

	if center := board.Center(); board.At(center) == entity.EmptyCell {
		return center, true
	}

	return that.fallback.ChooseMove(ctx, board, mark)
}

// winningMove - finds the first empty cell that completes a line for mark.
func winningMove(board *entity.Board, mark entity.Mark) (entity.Move, bool) {
	for _, move := range board.LegalMoves() {
		if err := board.Place(move, mark); err != nil {
			continue
		}

		won := board.IsWin(mark)
		board.Undo(move)

		if won {
			return move, true
		}
	}

	return entity.Move{}, false
}
