package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game represents the state of one game: board, whose turn it is and the outcome.
type Game struct {
	ID     string
	Board  *Board
	Winner Mark
	Status string
	Turn   Mark
}

func NewGame(id string, size int, first Mark) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	if !first.IsPlayer() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMark, first)
	}

	return &Game{
		ID:     id,
		Board:  board,
		Turn:   first,
		Status: StatusOngoing,
	}, nil
}

// DetermineGameResult - returns the winner, PlayerTie for a full board or EmptyCell while the game goes on.
func (that *Game) DetermineGameResult() Mark {
	for _, mark := range []Mark{PlayerX, PlayerO} {
		if that.Board.IsWin(mark) {
			return mark
		}
	}

	// the game will continue until all the squares are full
	if !that.Board.IsDraw() {
		return EmptyCell
	}

	return PlayerTie
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(mark Mark, move Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(move, mark); err != nil {
		return fmt.Errorf("failed to place mark: %w", err)
	}

	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
