package othello

import "errors"

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrOccupied    = errors.New("position is occupied")
	ErrIllegalMove = errors.New("illegal move")
)
