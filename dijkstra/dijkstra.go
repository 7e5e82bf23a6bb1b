// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// astar.Environment.
//
// Dijkstra computes the minimum-cost path from a single source position to all
// reachable positions with non-negative step costs. It processes positions in
// order of increasing distance using a min-heap priority queue, relaxing steps
// and updating distances accordingly. Unlike astar.FindPath it uses no
// heuristic and does not stop at a goal, which makes it the exhaustive
// reference the heuristic search is checked against.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - The environment is discovered lazily through Expand; only reachable
//     positions appear in the returned maps.
//   - Negative step costs are detected during relaxation and fail fast.
//   - We treat any step with cost ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/astar"
	"github.com/katalvlaran/lvpath/internal/pqueue"
)

// Dijkstra computes shortest distances from source to every position of env
// reachable within MaxDistance.
//
// Returns:
//
//   - dist: map from position to minimum distance; unreachable positions are absent.
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     The source has no entry.
//   - err:  ErrNilEnvironment, ErrNegativeWeight, or a wrapped Expand error.
//
// Dijkstra does not call env.Reset; see Solve for the start→goal form.
func Dijkstra[P comparable](env astar.Environment[P], source P, opts ...Option) (map[P]float64, map[P]P, error) {
	// 1) Build Options (option constructors panic on invalid values).
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate environment is non-nil.
	if env == nil {
		return nil, nil, ErrNilEnvironment
	}

	// 3) Initialize runner with maps and the heap, then run the main loop.
	r := &runner[P]{
		env:     env,
		options: cfg,
		dist:    make(map[P]float64),
		prev:    make(map[P]P),
		visited: make(map[P]bool),
		pq: pqueue.New[nodeItem[P]](func(a, b nodeItem[P]) bool {
			return a.dist < b.dist
		}, 64),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	// 4) Once done, if ReturnPath is false, we return prev as nil.
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// Solve resets env and returns a minimum-cost path from its start to its
// goal together with the path cost. found is false when the goal is
// unreachable (or lies beyond MaxDistance).
func Solve[P comparable](env astar.Environment[P], opts ...Option) (path []P, cost float64, found bool, err error) {
	if env == nil {
		return nil, 0, false, ErrNilEnvironment
	}
	start, goal, err := env.Reset()
	if err != nil {
		return nil, 0, false, fmt.Errorf("dijkstra: reset failed: %w", err)
	}

	opts = append(opts, WithReturnPath())
	dist, prev, err := Dijkstra(env, start, opts...)
	if err != nil {
		return nil, 0, false, err
	}
	d, ok := dist[goal]
	if !ok {
		return nil, 0, false, nil
	}
	path, _ = PathTo(prev, start, goal)

	return path, d, true, nil
}

// PathTo rebuilds the path source→dest from a predecessor map.
// ok is false if dest was not reached from source.
func PathTo[P comparable](prev map[P]P, source, dest P) (path []P, ok bool) {
	cur := dest
	path = append(path, cur)
	for cur != source {
		p, found := prev[cur]
		if !found {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[P comparable] struct {
	env     astar.Environment[P]       // The input environment; read-only within Dijkstra.
	options Options                    // Configuration options (thresholds, etc.).
	dist    map[P]float64              // Maps position → current best distance from source.
	prev    map[P]P                    // Maps position → predecessor on the shortest path.
	visited map[P]bool                 // Tracks if a position's distance is finalized.
	pq      *pqueue.Queue[nodeItem[P]] // Min-heap for the lazy priority queue.
}

// init sets the source distance to zero and pushes it onto the heap.
func (r *runner[P]) init(source P) {
	r.dist[source] = 0
	r.pq.Push(nodeItem[P]{id: source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the position
// with the minimum distance from the source and relaxes its outgoing steps.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable positions processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
func (r *runner[P]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item, _ := r.pq.Pop()
		u, d := item.id, item.dist

		// 2) If this position was already finalized, skip stale heap entry.
		if r.visited[u] {
			continue
		}

		// 3) If this distance exceeds MaxDistance, stop exploring any further positions.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Mark u as visited. Its shortest distance d is now final.
		r.visited[u] = true

		// 5) Relax all outgoing steps from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each step out of u and attempts to improve distances to its neighbors.
// Steps with cost ≥ InfEdgeThreshold are ignored.
// If a shorter path to neighbor v is found, we update dist[v], prev[v], and push a new heap entry.
func (r *runner[P]) relax(u P) error {
	steps, err := r.env.Expand(u)
	if err != nil {
		// Wrap environment error with context
		return fmt.Errorf("dijkstra: failed to expand %v: %w", u, err)
	}

	for _, s := range steps {
		v, w := s.To, s.Cost

		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: step %v→%v weight=%v", ErrNegativeWeight, u, v, w)
		}

		// Impassable step.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strictly better only; “<” avoids duplicates on equal distances.
		if cur, seen := r.dist[v]; seen && newDist >= cur {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.pq.Push(nodeItem[P]{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a position and its current distance from the source.
type nodeItem[P comparable] struct {
	id   P       // position
	dist float64 // distance from source
}
