package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	ClassicSize = 3
	LargeSize   = 5
)

// winCombos holds cell indexes of every line per supported size:
// rows first, then columns, then the main and anti diagonal.
var winCombos = map[int][][]int{
	ClassicSize: buildWinCombos(ClassicSize),
	LargeSize:   buildWinCombos(LargeSize),
}

func buildWinCombos(size int) [][]int {
	combos := make([][]int, 0, 2*size+2)

	for row := 0; row < size; row++ {
		line := make([]int, size)
		for col := 0; col < size; col++ {
			line[col] = row*size + col
		}
		combos = append(combos, line)
	}

	for col := 0; col < size; col++ {
		line := make([]int, size)
		for row := 0; row < size; row++ {
			line[row] = row*size + col
		}
		combos = append(combos, line)
	}

	diagonal := make([]int, size)
	antiDiagonal := make([]int, size)
	for i := 0; i < size; i++ {
		diagonal[i] = i*size + i
		antiDiagonal[i] = i*size + (size - 1 - i)
	}

	return append(combos, diagonal, antiDiagonal)
}

// Move is a 0-indexed board coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Position - returns the 1-based label of the move on a board of the given size.
func (that Move) Position(size int) int {
	return that.Row*size + that.Col + 1
}

// MoveFromPosition - converts a 1-based position label into a move.
func MoveFromPosition(size, position int) (Move, error) {
	if position < 1 || position > size*size {
		return Move{}, fmt.Errorf("%w: position %d", apperror.ErrOutOfRange, position)
	}

	index := position - 1

	return Move{Row: index / size, Col: index % size}, nil
}

// Board is a square grid of marks stored in row-major order.
type Board struct {
	size  int
	cells []Mark
}

func NewBoard(size int) (*Board, error) {
	if _, ok := winCombos[size]; !ok {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnsupportedSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

// ParseBoard - builds a board from rows like "XO.", where '.' marks an empty cell.
func ParseBoard(rows ...string) (*Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}

	for row, line := range rows {
		if len(line) != board.size {
			return nil, fmt.Errorf("%w: row %d has %d cells", apperror.ErrUnsupportedSize, row, len(line))
		}

		for col, ch := range line {
			switch ch {
			case '.':
			case 'X', 'x':
				board.cells[row*board.size+col] = PlayerX
			case 'O', 'o':
				board.cells[row*board.size+col] = PlayerO
			default:
				return nil, fmt.Errorf("%w: %q", ErrUnknownMark, ch)
			}
		}
	}

	return board, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(move Move) bool {
	return move.Row >= 0 && move.Row < that.size && move.Col >= 0 && move.Col < that.size
}

// At returns EmptyCell for out-of-range moves.
func (that *Board) At(move Move) Mark {
	if !that.InBounds(move) {
		return EmptyCell
	}

	return that.cells[move.Row*that.size+move.Col]
}

// Place - puts the mark on an empty in-range cell.
func (that *Board) Place(move Move, mark Mark) error {
	if !that.InBounds(move) {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfRange, move)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: mark %q", apperror.ErrInvalidMove, mark)
	}

	index := move.Row*that.size + move.Col
	if that.cells[index] != EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	that.cells[index] = mark

	return nil
}

// Undo - clears a cell previously set by Place.
func (that *Board) Undo(move Move) {
	if that.InBounds(move) {
		that.cells[move.Row*that.size+move.Col] = EmptyCell
	}
}

// LegalMoves - returns the empty cells in row-major order.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == EmptyCell {
			moves = append(moves, Move{Row: i / that.size, Col: i % that.size})
		}
	}

	return moves
}

func (that *Board) Center() Move {
	return Move{Row: that.size / 2, Col: that.size / 2}
}

// WinCombos - returns every row, column and both diagonals as cell indexes.
// The result is shared and must not be modified.
func (that *Board) WinCombos() [][]int {
	return winCombos[that.size]
}

// Cell returns the mark at a row-major index.
func (that *Board) Cell(index int) Mark {
	return that.cells[index]
}

// IsWin - checks whether any full line belongs to the mark.
func (that *Board) IsWin(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, combo := range that.WinCombos() {
		complete := true
		for _, index := range combo {
			if that.cells[index] != mark {
				complete = false
				break
			}
		}

		if complete {
			return true
		}
	}

	return false
}

// IsDraw reports a full board. Callers check wins first.
func (that *Board) IsDraw() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) Clone() *Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return &Board{size: that.size, cells: cells}
}

func (that *Board) Equal(other *Board) bool {
	if other == nil || that.size != other.size {
		return false
	}

	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// Key - returns a compact representation usable as a cache key, e.g. "XO./.X./..O".
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(that.cells) + that.size)

	for i, cell := range that.cells {
		if i > 0 && i%that.size == 0 {
			sb.WriteByte('/')
		}

		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}
	}

	return sb.String()
}

func (that *Board) String() string {
	return strings.ReplaceAll(that.Key(), "/", "\n")
}
