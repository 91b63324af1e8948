package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Observer receives the shape of the explored game tree. Enter is called after a
// move is simulated and Backup once its subtree value is known; calls are always paired.
type Observer interface {
	Enter(move entity.Move, mark entity.Mark)
	Backup(score int)
}

type noopObserver struct{}

func (noopObserver) Enter(entity.Move, entity.Mark) {}
func (noopObserver) Backup(int)                     {}

// SearchNode is one explored move with its backed-up score.
type SearchNode struct {
	Move     entity.Move
	Mark     entity.Mark
	Score    int
	Children []*SearchNode
}

// TreeRecorder builds a SearchNode tree mirroring the recursion. It is not safe for concurrent use.
type TreeRecorder struct {
	root  *SearchNode
	stack []*SearchNode
}

func NewTreeRecorder() *TreeRecorder {
	root := &SearchNode{}

	return &TreeRecorder{
		root:  root,
		stack: []*SearchNode{root},
	}
}

func (that *TreeRecorder) Enter(move entity.Move, mark entity.Mark) {
	parent := that.stack[len(that.stack)-1]
	child := &SearchNode{Move: move, Mark: mark}
	parent.Children = append(parent.Children, child)
	that.stack = append(that.stack, child)
}

func (that *TreeRecorder) Backup(score int) {
	// the root is never popped
	if len(that.stack) == 1 {
		return
	}

	that.stack[len(that.stack)-1].Score = score
	that.stack = that.stack[:len(that.stack)-1]
}

// Root returns the synthetic root whose children are the candidate moves.
func (that *TreeRecorder) Root() *SearchNode {
	return that.root
}

// Size - counts recorded nodes, root excluded.
func (that *SearchNode) Size() int {
	total := 0
	for _, child := range that.Children {
		total += 1 + child.Size()
	}

	return total
}

// WriteTree - prints children of root as "Move (r, c): score", indented two spaces per level.
func WriteTree(w io.Writer, root *SearchNode) error {
	return writeTree(w, root, 0)
}

func writeTree(w io.Writer, node *SearchNode, depth int) error {
	indent := strings.Repeat(" ", depth*2)

	for _, child := range node.Children {
		if _, err := fmt.Fprintf(w, "%sMove %s: %d\n", indent, child.Move, child.Score); err != nil {
			return fmt.Errorf("failed to write tree: %w", err)
		}

		if err := writeTree(w, child, depth+1); err != nil {
			return err
		}
	}

	return nil
}
