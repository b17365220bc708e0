package quadtree

import "errors"

// ErrEmptyMatrix indicates the input pixel matrix has no rows or no
// columns.
var ErrEmptyMatrix = errors.New("quadtree: input pixel matrix must have at least one row and one column")
