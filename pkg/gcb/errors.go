package gcb

import "errors"

var (
	ErrCantChangeDrawingState = errors.New("cannot change drawing state")
	ErrOutOfWorkArea          = errors.New("position outside of the work area")
	ErrNegativeRadius         = errors.New("circle radius must not be negative")
)
