package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoLegalMoves     = errors.New("no legal moves")
	ErrUnsupportedSize  = errors.New("unsupported board size")
	ErrUnknownAgent     = errors.New("unknown agent")
	ErrDecisionNotFound = errors.New("decision not found")
	ErrBoardNotRestored = errors.New("agent left the board modified")

	// ErrCellOccupied and ErrOutOfRange both match ErrInvalidMove with errors.Is.
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrOutOfRange   = fmt.Errorf("%w: cell is out of range", ErrInvalidMove)
)
