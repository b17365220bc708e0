package grid

import "errors"

// Sentinel errors for grid construction and query.
var (
	// ErrInvalidDimensions indicates the image dimensions are not exact
	// multiples of the configured cell size.
	ErrInvalidDimensions = errors.New("grid: image dimensions must be exact multiples of cell size")
	// ErrEmptyMatrix indicates the input pixel matrix has no rows or no
	// columns.
	ErrEmptyMatrix = errors.New("grid: input pixel matrix must have at least one row and one column")
)
