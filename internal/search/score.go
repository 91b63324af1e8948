package search

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// WinValue is the score of a decided position. Heuristic values always stay below it.
const WinValue = 10

const heuristicLimit = WinValue - 1

// TerminalScore - returns +WinValue if mover owns a full line, -WinValue if opponent does, 0 otherwise.
func TerminalScore(board *entity.Board, mover, opponent entity.Mark) int {
	switch {
	case board.IsWin(mover):
		return WinValue
	case board.IsWin(opponent):
		return -WinValue
	default:
		return 0
	}
}

// HeuristicValue - sums mover marks minus opponent marks over every row, column and both diagonals.
// The sum is clamped to ±(WinValue-1) so a cut-off position never outranks a real win.
func HeuristicValue(board *entity.Board, mover, opponent entity.Mark) int {
	value := 0

	for _, combo := range board.WinCombos() {
		for _, index := range combo {
			switch board.Cell(index) {
			case mover:
				value++
			case opponent:
				value--
			}
		}
	}

	return max(-heuristicLimit, min(heuristicLimit, value))
}
