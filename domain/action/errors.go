package action

import "errors"

var (
	ErrNotActionable     = errors.New("action not available")
	ErrAmountOutOfBounds = errors.New("amount out of bounds")
)
