package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMark = errors.New("unknown mark")

// Mark is the content of a board cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"
)

// ParseMark - parses "x"/"o" in any case.
func ParseMark(s string) (Mark, error) {
	switch Mark(strings.ToUpper(strings.TrimSpace(s))) {
	case PlayerX:
		return PlayerX, nil
	case PlayerO:
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", ErrUnknownMark, s)
	}
}

// Opponent returns the other player's mark. Non-player marks have no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}
