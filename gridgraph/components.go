package gridgraph

import "github.com/katalvlaran/lvpath/astar"

// ConnectedComponents finds all contiguous regions of passable cells
// (CellValues[y][x] ≥ PassThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels := gg.labels()
	var comps [][]int
	for _, idx := range labels.order {
		l := labels.of[idx]
		if l == len(comps) {
			comps = append(comps, nil)
		}
		comps[l] = append(comps[l], idx)
	}
	return comps
}

// SameComponent reports whether a and b are passable and connected, i.e.
// whether any path between them exists.
func (gg *GridGraph) SameComponent(a, b astar.Point) bool {
	if !gg.Passable(a) || !gg.Passable(b) {
		return false
	}
	labels := gg.labels()
	return labels.of[gg.index(a.X, a.Y)] == labels.of[gg.index(b.X, b.Y)]
}

// componentLabels maps every cell index to its component id (-1 for walls);
// order lists passable cells in discovery order.
type componentLabels struct {
	of    []int
	order []int
}

func (gg *GridGraph) labels() componentLabels {
	total := gg.Width * gg.Height
	res := componentLabels{of: make([]int, total), order: make([]int, 0, total)}
	for i := range res.of {
		res.of[i] = -1
	}
	next := 0

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if gg.CellValues[y][x] < gg.PassThreshold || res.of[i0] >= 0 {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			res.of[i0] = next
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				res.order = append(res.order, u)
				ux, uy := gg.Coordinate(u)
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || gg.CellValues[vy][vx] < gg.PassThreshold {
						continue
					}
					vi := gg.index(vx, vy)
					if res.of[vi] < 0 {
						res.of[vi] = next
						queue = append(queue, vi)
					}
				}
			}
			next++
		}
	}
	return res
}
