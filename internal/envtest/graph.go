// Package envtest provides an in-memory adjacency-list Environment for
// exercising search algorithms in tests and examples.
package envtest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpath/astar"
)

// ErrNoEndpoints is returned by Reset when SetEndpoints was never called.
var ErrNoEndpoints = errors.New("envtest: endpoints not set")

// Graph is a weighted adjacency list over positions of type P.
// Edges keep their insertion order so Expand is deterministic.
// It records how often Reset and Expand were called, per position.
type Graph[P comparable] struct {
	directed bool
	adj      map[P][]astar.Step[P]
	start    P
	goal     P
	hasEnds  bool

	// ExpandErr, when set, is returned by Expand for that position.
	ExpandErr map[P]error

	Resets   int
	Expanded map[P]int
}

// NewGraph returns an empty graph. Undirected edges are stored in both directions.
func NewGraph[P comparable](directed bool) *Graph[P] {
	return &Graph[P]{
		directed:  directed,
		adj:       make(map[P][]astar.Step[P]),
		ExpandErr: make(map[P]error),
		Expanded:  make(map[P]int),
	}
}

// AddVertex registers p with no edges.
func (g *Graph[P]) AddVertex(p P) {
	if _, ok := g.adj[p]; !ok {
		g.adj[p] = nil
	}
}

// AddEdge adds u→v with the given cost, and v→u when the graph is undirected.
func (g *Graph[P]) AddEdge(u, v P, cost float64) {
	g.AddVertex(u)
	g.AddVertex(v)
	g.adj[u] = append(g.adj[u], astar.Step[P]{To: v, Cost: cost})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], astar.Step[P]{To: u, Cost: cost})
	}
}

// SetEndpoints fixes the positions returned by Reset.
func (g *Graph[P]) SetEndpoints(start, goal P) *Graph[P] {
	g.start, g.goal, g.hasEnds = start, goal, true
	return g
}

// Vertices returns every registered position, in no particular order.
func (g *Graph[P]) Vertices() []P {
	out := make([]P, 0, len(g.adj))
	for p := range g.adj {
		out = append(out, p)
	}
	return out
}

// Reset implements astar.Environment.
func (g *Graph[P]) Reset() (P, P, error) {
	g.Resets++
	if !g.hasEnds {
		var zero P
		return zero, zero, ErrNoEndpoints
	}
	return g.start, g.goal, nil
}

// Expand implements astar.Environment. Unknown positions are dead ends.
func (g *Graph[P]) Expand(p P) ([]astar.Step[P], error) {
	g.Expanded[p]++
	if err := g.ExpandErr[p]; err != nil {
		return nil, fmt.Errorf("envtest: expand %v: %w", p, err)
	}
	steps := g.adj[p]
	out := make([]astar.Step[P], len(steps))
	copy(out, steps)
	return out, nil
}

// PathCost sums edge costs along path, taking the cheapest parallel edge.
// ok is false if two consecutive positions are not adjacent.
func (g *Graph[P]) PathCost(path []P) (cost float64, ok bool) {
	for i := 1; i < len(path); i++ {
		best, found := 0.0, false
		for _, s := range g.adj[path[i-1]] {
			if s.To == path[i] && (!found || s.Cost < best) {
				best, found = s.Cost, true
			}
		}
		if !found {
			return 0, false
		}
		cost += best
	}
	return cost, true
}
