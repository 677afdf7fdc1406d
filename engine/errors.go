package engine

import "errors"

// Construction precondition failures
var (
	ErrInvalidDimensions  = errors.New("arena dimensions must be positive")
	ErrInvalidBotCount    = errors.New("bot count must not be negative")
	ErrInvalidTrailLength = errors.New("trail length must not be negative")
	ErrBoardTooSmall      = errors.New("board too small for starting layout")
)
