package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MoveSource supplies the next move for mark. Human sources validate input themselves.
type MoveSource interface {
	NextMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, error)
}

// Display is told whose turn it is, receives the board after every placement and the final outcome.
type Display interface {
	ShowTurn(mark entity.Mark)
	ShowBoard(board *entity.Board)
	ShowResult(game *entity.Game)
}

type nopDisplay struct{}

func (nopDisplay) ShowTurn(entity.Mark) {}
func (nopDisplay) ShowBoard(*entity.Board) {}
func (nopDisplay) ShowResult(*entity.Game) {}

// AgentSource turns an agent into a move source.
type AgentSource struct {
	Agent agent.Agent
}

// NextMove - agents borrow the game board; one that does not undo its simulation is rejected.
func (that AgentSource) NextMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, error) {
	before := board.Clone()

	move, ok := that.Agent.ChooseMove(ctx, board, mark)
	if !board.Equal(before) {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrBoardNotRestored, that.Agent.Name())
	}

	if !ok {
		return entity.Move{}, apperror.ErrNoLegalMoves
	}

	return move, nil
}

// Match runs the turn loop of a single game.
type Match struct {
	logger  *slog.Logger
	sources map[entity.Mark]MoveSource
	display Display
}

// NewMatch - display may be nil.
func NewMatch(logger *slog.Logger, x, o MoveSource, display Display) *Match {
	if display == nil {
		display = nopDisplay{}
	}

	return &Match{
		logger: logger.With("component", "match"),
		sources: map[entity.Mark]MoveSource{
			entity.PlayerX: x,
			entity.PlayerO: o,
		},
		display: display,
	}
}

// Play - alternates the sources until the game is decided.
func (that *Match) Play(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("game", game.ID)
	log.InfoContext(ctx, "game started", "size", game.Board.Size(), "first", game.Turn)

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		mark := game.Turn
		that.display.ShowTurn(mark)

		move, err := that.sources[mark].NextMove(ctx, game.Board, mark)
		if err != nil {
			return fmt.Errorf("failed to get move for %s: %w", mark, err)
		}

		if err = game.MakeTurn(mark, move); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.DebugContext(ctx, "turn made", "mark", mark, "move", move.String())
		that.display.ShowBoard(game.Board)
	}

	that.display.ShowResult(game)
	log.InfoContext(ctx, "game finished", "winner", game.Winner)

	return nil
}
