package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/search"
)

const (
	colorRed  = "\033[91m"
	colorCyan = "\033[96m"
	colorBold = "\033[1m"
	colorEnd  = "\033[0m"
)

// Display prints boards, results and search trees to a terminal.
type Display struct {
	out   io.Writer
	human entity.Mark
	color bool
}

// NewDisplay - human is the mark typed at the console, EmptyCell when two agents play.
func NewDisplay(out io.Writer, human entity.Mark, color bool) *Display {
	return &Display{
		out:   out,
		human: human,
		color: color,
	}
}

// ShowBoard - prints one row per line; empty cells show their position label.
func (that *Display) ShowBoard(board *entity.Board) {
	size := board.Size()

	var sb strings.Builder
	for row := 0; row < size; row++ {
		cells := make([]string, size)
		for col := 0; col < size; col++ {
			move := entity.Move{Row: row, Col: col}
			cells[col] = that.cell(board.At(move), move.Position(size))
		}

		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", 5*size-1))
		sb.WriteString("\n")
	}

	_, _ = io.WriteString(that.out, sb.String())
}

func (that *Display) cell(mark entity.Mark, position int) string {
	if mark == entity.EmptyCell {
		return fmt.Sprintf("%-2s", strconv.Itoa(position))
	}

	text := fmt.Sprintf("%-2s", string(mark))
	if !that.color {
		return text
	}

	color := colorCyan
	if mark == entity.PlayerX {
		color = colorRed
	}

	return colorBold + color + text + colorEnd
}

func (that *Display) ShowResult(game *entity.Game) {
	var message string

	switch {
	case game.IsDraw():
		message = "It's a draw!"
	case that.human == entity.EmptyCell:
		message = fmt.Sprintf("Player %s wins!", game.Winner)
	case game.Winner == that.human:
		message = "You win!"
	default:
		message = "Player 2 (Computer) wins!"
	}

	_, _ = fmt.Fprintln(that.out, message)
}

// ShowTurn - announces the computer's moves; the human prompt comes from Source.
func (that *Display) ShowTurn(mark entity.Mark) {
	if that.human != entity.EmptyCell && mark != that.human {
		_, _ = fmt.Fprintln(that.out, "Computer's turn:")
	}
}

// ShowTrace - prints the game tree explored for the last computer move.
func (that *Display) ShowTrace(root *search.SearchNode) {
	_, _ = fmt.Fprintln(that.out, "Game Tree:")
	_ = search.WriteTree(that.out, root)
}

// Announce prints a free-form line, e.g. whose turn it is.
func (that *Display) Announce(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format+"\n", args...)
}
