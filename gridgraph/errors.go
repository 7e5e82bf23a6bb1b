package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadThreshold indicates a PassThreshold below 1, which would allow
	// zero-cost cells and break heuristic admissibility.
	ErrBadThreshold = errors.New("gridgraph: pass threshold must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrBlockedCell indicates a start, goal or expanded position on a wall.
	ErrBlockedCell = errors.New("gridgraph: position is a wall")
	// ErrBadMap indicates a malformed text or YAML map.
	ErrBadMap = errors.New("gridgraph: malformed map")
	// ErrNotAdjacent indicates two consecutive path positions that are not neighbours.
	ErrNotAdjacent = errors.New("gridgraph: path positions are not adjacent")
)
