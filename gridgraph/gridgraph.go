// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a search environment. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Walls (values below PassThreshold) and weighted cells
//   - The astar.Environment contract (Reset / Expand)
//   - Identification of connected components of passable cells
//   - Text and YAML map parsing, and ASCII rendering of paths
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/astar"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadThreshold if
// opts.PassThreshold < 1, and ErrOutOfBounds / ErrBlockedCell if Start or
// Goal do not name a passable cell.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.PassThreshold < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadThreshold, opts.PassThreshold)
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		PassThreshold:   opts.PassThreshold,
		Start:           opts.Start,
		Goal:            opts.Goal,
		neighborOffsets: offsets,
	}
	if err := gg.checkCell("start", gg.Start); err != nil {
		return nil, err
	}
	if err := gg.checkCell("goal", gg.Goal); err != nil {
		return nil, err
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether p is inside the grid and not a wall.
func (gg *GridGraph) Passable(p astar.Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] >= gg.PassThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Heuristic returns the distance estimate matching the grid's connectivity:
// Manhattan for Conn4, Octile for Conn8. Both are consistent because every
// passable cell costs at least 1 to enter.
func (gg *GridGraph) Heuristic() astar.Heuristic[astar.Point] {
	if gg.Conn == Conn8 {
		return astar.Octile
	}
	return astar.Manhattan
}

// StepCost returns the cost of moving from a to its neighbour b:
// the value of b, times √2 when the move is diagonal.
func (gg *GridGraph) StepCost(a, b astar.Point) float64 {
	c := float64(gg.CellValues[b.Y][b.X])
	if a.X != b.X && a.Y != b.Y {
		c *= math.Sqrt2
	}
	return c
}

// PathCost validates that path is a sequence of passable, adjacent cells and
// returns its total step cost. An empty or single-cell path costs 0.
func (gg *GridGraph) PathCost(path []astar.Point) (float64, error) {
	var total float64
	for i, p := range path {
		if err := gg.checkCell("path", p); err != nil {
			return 0, err
		}
		if i == 0 {
			continue
		}
		if !gg.adjacent(path[i-1], p) {
			return 0, fmt.Errorf("%w: %v→%v", ErrNotAdjacent, path[i-1], p)
		}
		total += gg.StepCost(path[i-1], p)
	}

	return total, nil
}

// adjacent reports whether b is one neighbor offset away from a.
func (gg *GridGraph) adjacent(a, b astar.Point) bool {
	for _, d := range gg.neighborOffsets {
		if a.Add(d[0], d[1]) == b {
			return true
		}
	}
	return false
}

// checkCell rejects positions outside the grid or on a wall.
func (gg *GridGraph) checkCell(what string, p astar.Point) error {
	if !gg.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: %s %v in %dx%d grid", ErrOutOfBounds, what, p, gg.Width, gg.Height)
	}
	if gg.CellValues[p.Y][p.X] < gg.PassThreshold {
		return fmt.Errorf("%w: %s %v", ErrBlockedCell, what, p)
	}
	return nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
