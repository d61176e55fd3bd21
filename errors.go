package countmin

import "errors"

// ErrInvalidDimension is returned by [New] when the row or column count is not positive.
var ErrInvalidDimension = errors.New("countmin: invalid dimension")
