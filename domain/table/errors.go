package table

import "errors"

// ErrInvalidSnapshot is wrapped by every Validate failure.
var ErrInvalidSnapshot = errors.New("invalid snapshot")
