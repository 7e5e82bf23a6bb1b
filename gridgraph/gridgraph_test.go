package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvpath/astar"
	"github.com/katalvlaran/lvpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects invalid inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	walled := gridgraph.DefaultGridOptions()
	walled.Goal = astar.Point{X: 1, Y: 0}
	outside := gridgraph.DefaultGridOptions()
	outside.Start = astar.Point{X: 5, Y: 0}
	zero := gridgraph.DefaultGridOptions()
	zero.PassThreshold = 0

	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"ZeroThreshold", [][]int{{1}}, zero, gridgraph.ErrBadThreshold},
		{"GoalOnWall", [][]int{{1, 0}}, walled, gridgraph.ErrBlockedCell},
		{"StartOutside", [][]int{{1, 1}}, outside, gridgraph.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy verifies later mutation of the input has no effect.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 1}, {1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	grid[0][1] = 0
	if !gg.Passable(astar.Point{X: 1, Y: 0}) {
		t.Error("mutating the input grid changed the GridGraph")
	}
}

// TestInBounds checks InBounds on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{1, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
	if gg.Passable(astar.Point{X: 2, Y: 0}) {
		t.Error("Passable((2,0)) = true on a wall")
	}
}

//----------------------------------------------------------------------------//
// Environment Tests
//----------------------------------------------------------------------------//

// TestExpand_Conn4 verifies only orthogonal passable neighbours are returned.
func TestExpand_Conn4(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{1, 3, 1},
		{1, 1, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	steps, err := gg.Expand(astar.Point{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("Expand error: %v", err)
	}
	// N is a wall; E, S, W remain in offset order.
	want := []astar.Step[astar.Point]{
		{To: astar.Point{X: 2, Y: 1}, Cost: 1},
		{To: astar.Point{X: 1, Y: 2}, Cost: 1},
		{To: astar.Point{X: 0, Y: 1}, Cost: 1},
	}
	if len(steps) != len(want) {
		t.Fatalf("Expand returned %v; want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d = %v; want %v", i, steps[i], want[i])
		}
	}

	// Entering the weighted centre costs its value.
	steps, _ = gg.Expand(astar.Point{X: 0, Y: 1})
	for _, s := range steps {
		if s.To == (astar.Point{X: 1, Y: 1}) && s.Cost != 3 {
			t.Errorf("cost into weighted cell = %v; want 3", s.Cost)
		}
	}
	if gg.Expansions() != 2 {
		t.Errorf("Expansions() = %d; want 2", gg.Expansions())
	}
}

// TestExpand_Conn8 verifies diagonal neighbours cost √2 times the cell value.
func TestExpand_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}, {0, 2}}, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	steps, err := gg.Expand(astar.Point{})
	if err != nil {
		t.Fatalf("Expand error: %v", err)
	}
	if len(steps) != 1 || steps[0].To != (astar.Point{X: 1, Y: 1}) {
		t.Fatalf("Expand = %v; want single diagonal step", steps)
	}
	if math.Abs(steps[0].Cost-2*math.Sqrt2) > 1e-12 {
		t.Errorf("diagonal cost = %v; want %v", steps[0].Cost, 2*math.Sqrt2)
	}
}

// TestExpand_Invalid verifies expanding walls or outside cells fails fast.
func TestExpand_Invalid(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{{1, 0}}, gridgraph.DefaultGridOptions())
	if _, err := gg.Expand(astar.Point{X: 1, Y: 0}); !errors.Is(err, gridgraph.ErrBlockedCell) {
		t.Errorf("Expand(wall) error = %v; want ErrBlockedCell", err)
	}
	if _, err := gg.Expand(astar.Point{X: 0, Y: 4}); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("Expand(outside) error = %v; want ErrOutOfBounds", err)
	}
}

// TestReset returns the configured endpoints and counts calls.
func TestReset(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Goal = astar.Point{X: 1, Y: 1}
	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}, {1, 1}}, opts)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	s, g, err := gg.Reset()
	if err != nil || s != (astar.Point{}) || g != (astar.Point{X: 1, Y: 1}) {
		t.Errorf("Reset() = %v, %v, %v", s, g, err)
	}
	if gg.Resets() != 1 {
		t.Errorf("Resets() = %d; want 1", gg.Resets())
	}
}

// TestPathCost validates adjacency and sums step costs.
func TestPathCost(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{{1, 2, 1}}, gridgraph.DefaultGridOptions())

	cost, err := gg.PathCost([]astar.Point{{X: 0}, {X: 1}, {X: 2}})
	if err != nil || cost != 3 {
		t.Errorf("PathCost = %v, %v; want 3, nil", cost, err)
	}
	if _, err = gg.PathCost([]astar.Point{{X: 0}, {X: 2}}); !errors.Is(err, gridgraph.ErrNotAdjacent) {
		t.Errorf("PathCost(gap) error = %v; want ErrNotAdjacent", err)
	}
	if cost, err = gg.PathCost(nil); err != nil || cost != 0 {
		t.Errorf("PathCost(nil) = %v, %v", cost, err)
	}
}

// TestHeuristic selects the estimate matching connectivity.
func TestHeuristic(t *testing.T) {
	a, b := astar.Point{X: 0, Y: 0}, astar.Point{X: 2, Y: 2}

	gg, _ := gridgraph.NewGridGraph([][]int{{1}}, gridgraph.DefaultGridOptions())
	if got := gg.Heuristic()(a, b); got != 4 {
		t.Errorf("Conn4 heuristic = %v; want 4", got)
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, _ = gridgraph.NewGridGraph([][]int{{1}}, opts)
	if got := gg.Heuristic()(a, b); math.Abs(got-2*math.Sqrt2) > 1e-12 {
		t.Errorf("Conn8 heuristic = %v; want %v", got, 2*math.Sqrt2)
	}
}
