// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvpath.
package gridgraph

import (
	"sync/atomic"

	"github.com/katalvlaran/lvpath/astar"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// GridOptions contains tunable parameters for a grid environment.
type GridOptions struct {
	// PassThreshold specifies the minimum cell value considered passable.
	// Cells below it are walls. Must be ≥ 1.
	PassThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Start and Goal are the endpoints returned by Reset.
	Start, Goal astar.Point
}

// DefaultGridOptions returns a GridOptions with default settings:
// PassThreshold=1 (values ≥1 are passable), Conn=Conn4, Start=Goal=(0,0).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a search environment. Its cells are
// immutable once built.
//
// Width and Height define dimensions; CellValues[y][x] holds the original
// input value, which is also the cost of entering a passable cell
// (multiplied by √2 for diagonal moves). neighborOffsets is precomputed for
// efficient adjacency lookups. Reset and Expand calls are counted atomically.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	PassThreshold   int
	Start, Goal     astar.Point
	neighborOffsets [][2]int

	resets     atomic.Int64
	expansions atomic.Int64
}
