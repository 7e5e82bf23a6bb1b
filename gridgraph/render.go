package gridgraph

import (
	"strings"

	"github.com/katalvlaran/lvpath/astar"
)

// CellPath marks intermediate path cells in Render output.
const CellPath = '*'

// Render draws the grid in the map alphabet with path overlaid: start and
// goal keep their letters and every other path cell becomes '*'. Weighted
// cells print their digit (values above 9 print as '9'). Positions of path
// outside the grid are ignored.
func (gg *GridGraph) Render(path []astar.Point) string {
	onPath := make(map[astar.Point]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := astar.Point{X: x, Y: y}
			_, marked := onPath[p]
			v := gg.CellValues[y][x]
			switch {
			case p == gg.Start:
				sb.WriteByte(CellStart)
			case p == gg.Goal:
				sb.WriteByte(CellGoal)
			case v < gg.PassThreshold:
				sb.WriteByte(CellWall)
			case marked:
				sb.WriteByte(CellPath)
			case v <= 1:
				sb.WriteByte(CellOpen)
			default:
				sb.WriteByte(byte('0' + min(v, 9)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
