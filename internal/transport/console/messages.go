package console

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func promptMessage(turn entity.Mark) string {
	return fmt.Sprintf("Player %s. Make your move by entering the \"row,col\" of the square you want to play", turn)
}

// userMessage - returns the line shown for a recoverable error, or false if err is not one.
func userMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrMalformedInput):
		return "Invalid number of inputs", true
	case errors.Is(err, apperror.ErrNotANumber):
		return "Invalid number", true
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "Invalid coordinates", true
	case errors.Is(err, apperror.ErrCellOccupied):
		return "This square is already filled", true
	default:
		return "", false
	}
}

func summaryMessage(outcome entity.Outcome) string {
	switch outcome.State() {
	case entity.StateDraw:
		return "Game ends in draw"
	case entity.StateWinner:
		winner, _ := outcome.Winner()
		return fmt.Sprintf("Player %s wins!", winner)
	default:
		panic("game should not be in progress after the loop")
	}
}
