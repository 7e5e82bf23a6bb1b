package astar

import (
	"math"
	"strconv"
)

// Point is a cell coordinate on a 2D grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
// Admissible and consistent for 4-connected moves costing at least 1.
func Manhattan(a, b Point) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Chebyshev returns max(|dx|, |dy|).
// Admissible for 8-connected moves where a diagonal step costs at least 1.
func Chebyshev(a, b Point) float64 {
	return float64(max(abs(a.X-b.X), abs(a.Y-b.Y)))
}

// Octile returns the exact unit-cost distance on an 8-connected grid whose
// diagonal steps cost √2.
func Octile(a, b Point) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	lo, hi := min(dx, dy), max(dx, dy)

	return float64(hi-lo) + math.Sqrt2*float64(lo)
}

// Zero is the trivial heuristic; with it FindPath degrades to uniform-cost search.
func Zero[P comparable](P, P) float64 {
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
