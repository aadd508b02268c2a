package engine

import "errors"

// Precondition violations. These indicate a caller bug, never a game event:
// running out of moves or a move that changes nothing are ordinary results.
var (
	ErrEmptyGrid        = errors.New("engine: grid has no cells")
	ErrNotRectangular   = errors.New("engine: grid is not rectangular")
	ErrInvalidRotation  = errors.New("engine: rotation must be a multiple of 90 degrees")
	ErrUnknownDirection = errors.New("engine: unknown direction")
	ErrNoEmptyCell      = errors.New("engine: no empty cell to spawn into")
	ErrGridTooSmall     = errors.New("engine: grid too small for initial tiles")
)
