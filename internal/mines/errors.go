package mines

import "errors"

var (
	// ErrInvalidDimension is returned by New when width or height is outside (3, 100].
	ErrInvalidDimension = errors.New("mines: invalid dimension")

	// ErrOutOfBounds is returned when a position does not address a cell of the board.
	ErrOutOfBounds = errors.New("mines: position out of bounds")

	// ErrAlreadyReady is returned when mines are placed a second time.
	ErrAlreadyReady = errors.New("mines: mines already placed")
)
