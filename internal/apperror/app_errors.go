package apperror

import "errors"

var (
	ErrOutOfBounds    = errors.New("invalid coordinates")
	ErrCellOccupied   = errors.New("this square is already filled")
	ErrInvalidMark    = errors.New("mark is not a player mark")
	ErrGameFinished   = errors.New("game is already finished")
	ErrMalformedInput = errors.New("invalid number of inputs")
	ErrNotANumber     = errors.New("invalid number")
	ErrInputClosed    = errors.New("input closed before the game ended")
)
