// Package search implements minimax move selection over an entity.Board, either
// exhaustive or depth-limited with alpha-beta pruning and a heuristic cutoff.
package search

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// DefaultDepth is the ply limit used for the large board.
const DefaultDepth = 4

type Option func(*Searcher)

// WithDepthLimit - stops recursion at the given depth and scores the position heuristically.
func WithDepthLimit(depth int) Option {
	return func(s *Searcher) {
		s.bounded = true
		s.depthLimit = depth
	}
}

// WithAlphaBeta - prunes siblings once beta <= alpha.
func WithAlphaBeta() Option {
	return func(s *Searcher) {
		s.pruning = true
	}
}

// WithObserver - reports every explored node to the observer.
func WithObserver(observer Observer) Option {
	return func(s *Searcher) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// Searcher is stateless between calls and safe for concurrent use as long as
// each call gets its own board and the observer tolerates it.
type Searcher struct {
	bounded    bool
	depthLimit int
	pruning    bool
	observer   Observer
}

func New(opts ...Option) *Searcher {
	s := &Searcher{observer: noopObserver{}}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Result is the outcome of a top-level decision.
type Result struct {
	Move  entity.Move
	Value int
	// Nodes is the number of minimax calls made below the root.
	Nodes int
}

// BestMove - picks the move with the greatest minimax value for mover,
// ties going to the first move in row-major order. Returns false on a full board.
func (that *Searcher) BestMove(board *entity.Board, mover entity.Mark) (Result, bool) {
	return that.BestMoveObserved(board, mover, that.observer)
}

// BestMoveObserved is BestMove with a per-call observer.
func (that *Searcher) BestMoveObserved(board *entity.Board, mover entity.Mark, observer Observer) (Result, bool) {
	if observer == nil {
		observer = noopObserver{}
	}

	w := &walker{
		searcher: that,
		board:    board,
		mover:    mover,
		opponent: mover.Opponent(),
		observer: observer,
	}

	var (
		best  Result
		found bool
	)

	for _, move := range board.LegalMoves() {
		w.place(move, mover)
		value := w.minimax(0, false, math.MinInt, math.MaxInt)
		w.undo(move, value)

		if !found || value > best.Value {
			best.Move = move
			best.Value = value
			found = true
		}
	}

	best.Nodes = w.nodes

	return best, found
}

// walker carries the per-call state of one search.
type walker struct {
	searcher *Searcher
	board    *entity.Board
	mover    entity.Mark
	opponent entity.Mark
	observer Observer
	nodes    int
}

func (that *walker) minimax(depth int, maximizing bool, alpha, beta int) int {
	that.nodes++

	if score := TerminalScore(that.board, that.mover, that.opponent); score != 0 {
		return score
	}

	if that.board.IsDraw() {
		return 0
	}

	if that.searcher.bounded && depth >= that.searcher.depthLimit {
		return HeuristicValue(that.board, that.mover, that.opponent)
	}

	mark, best := that.opponent, math.MaxInt
	if maximizing {
		mark, best = that.mover, math.MinInt
	}

	for _, move := range that.board.LegalMoves() {
		that.place(move, mark)
		value := that.minimax(depth+1, !maximizing, alpha, beta)
		that.undo(move, value)

		if maximizing {
			best = max(best, value)
			alpha = max(alpha, best)
		} else {
			best = min(best, value)
			beta = min(beta, best)
		}

		if that.searcher.pruning && beta <= alpha {
			break
		}
	}

	return best
}

func (that *walker) place(move entity.Move, mark entity.Mark) {
	// moves come from LegalMoves, so a failure means the board changed under the search
	if err := that.board.Place(move, mark); err != nil {
		panic(fmt.Errorf("search: %w", err))
	}

	that.observer.Enter(move, mark)
}

func (that *walker) undo(move entity.Move, value int) {
	that.observer.Backup(value)
	that.board.Undo(move)
}
