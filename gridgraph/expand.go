package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvpath/astar"
)

// Reset implements astar.Environment. It returns the configured endpoints
// after re-checking that both are passable.
func (gg *GridGraph) Reset() (start, goal astar.Point, err error) {
	gg.resets.Add(1)
	if err = gg.checkCell("start", gg.Start); err != nil {
		return start, goal, err
	}
	if err = gg.checkCell("goal", gg.Goal); err != nil {
		return start, goal, err
	}
	return gg.Start, gg.Goal, nil
}

// Expand implements astar.Environment. It returns every passable in-bounds
// neighbour of p, in NeighborOffsets order, with the cost of entering it.
// Expanding a position outside the grid or on a wall is an error.
//
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Expand(p astar.Point) ([]astar.Step[astar.Point], error) {
	gg.expansions.Add(1)
	if err := gg.checkCell("expanded", p); err != nil {
		return nil, fmt.Errorf("gridgraph: expand: %w", err)
	}

	steps := make([]astar.Step[astar.Point], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := p.Add(d[0], d[1])
		if !gg.Passable(n) {
			continue
		}
		steps = append(steps, astar.Step[astar.Point]{To: n, Cost: gg.StepCost(p, n)})
	}

	return steps, nil
}

// Resets returns how many times Reset has been called.
func (gg *GridGraph) Resets() int64 { return gg.resets.Load() }

// Expansions returns how many times Expand has been called.
func (gg *GridGraph) Expansions() int64 { return gg.expansions.Load() }
