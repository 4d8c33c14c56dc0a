package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Mark is the content of a single cell. The zero value is Empty.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// ParseMark - converts "X" or "O" into a player mark.
func ParseMark(value string) (Mark, error) {
	switch value {
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, value)
	}
}

// NextTurn - returns the mark that moves after current.
// Calling it with Empty is a programming error and panics.
func NextTurn(current Mark) Mark {
	switch current {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		panic(fmt.Sprintf("invalid turn: %d", current))
	}
}
