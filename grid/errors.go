package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDimensionMismatch indicates the backing storage does not hold rows×cols cells.
	ErrDimensionMismatch = errors.New("grid: storage length does not match declared dimensions")
)
