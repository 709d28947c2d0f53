package pic

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height, or a
	// buffer too short to carry the header and column offset table.
	ErrInvalidDimensions = errors.New("invalid picture dimensions")
	// ErrInvalidColumnOffset indicates a column offset pointing outside the lump.
	ErrInvalidColumnOffset = errors.New("column offset out of bounds")
	// ErrTruncatedPost indicates a post whose declared pixel run does not fit
	// in the remaining buffer.
	ErrTruncatedPost = errors.New("truncated post")
)
