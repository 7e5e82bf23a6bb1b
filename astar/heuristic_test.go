package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvpath/astar"
)

func TestHeuristics(t *testing.T) {
	a, b := astar.Point{X: -1, Y: 2}, astar.Point{X: 3, Y: -1}

	assert.Equal(t, 7.0, astar.Manhattan(a, b))
	assert.Equal(t, 4.0, astar.Chebyshev(a, b))
	assert.InDelta(t, 1+3*math.Sqrt2, astar.Octile(a, b), 1e-12)
	assert.Zero(t, astar.Zero(a, b))

	for _, h := range []astar.Heuristic[astar.Point]{astar.Manhattan, astar.Chebyshev, astar.Octile} {
		assert.Zero(t, h(a, a))
		assert.Equal(t, h(a, b), h(b, a), "heuristics are symmetric")
	}
}

func TestPoint(t *testing.T) {
	p := astar.Point{X: 2, Y: -3}
	assert.Equal(t, "(2,-3)", p.String())
	assert.Equal(t, astar.Point{X: 3, Y: -5}, p.Add(1, -2))
}

func TestResult_Empty(t *testing.T) {
	var nilRes *astar.Result[int]
	assert.True(t, nilRes.Empty())
	assert.True(t, (&astar.Result[int]{}).Empty())
	assert.False(t, (&astar.Result[int]{Path: []int{1}, Found: true}).Empty())
}
