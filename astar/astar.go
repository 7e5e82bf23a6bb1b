// Package astar implements best-first (A*) path search over an abstract
// Environment.
//
// FindPath pops positions from a frontier ordered by f = g + h, where g is
// the accumulated step cost from the start and h is a heuristic estimate of
// the remaining cost to the goal. Each popped position is closed and never
// expanded again.
//
// Complexity:
//
//   - Time:  O(E log E) where E is the number of steps pushed on the frontier.
//   - Space: O(E) for the node arena and the frontier, O(V) for the closed set.
//
// Notes on implementation choices:
//
//   - Nodes live in an append-only arena; parent links are arena indices.
//   - The frontier is a comparator-ordered heap of arena indices. Ties on f are
//     broken by insertion order.
//   - Duplicates are allowed on the frontier (“lazy” decrease-key); entries
//     whose position is already closed are discarded when popped.
//   - Step costs and heuristic estimates are validated as they arrive and the
//     search fails fast on malformed values.
package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/internal/pqueue"
)

// FindPath searches env for a minimum-cost path from its start to its goal,
// guided by h.
//
// Returns:
//
//   - a Result with Found=true and Path=[start … goal] when the goal is reached;
//   - a Result with Found=false and Path=nil when the frontier is exhausted.
//     An unreachable goal is not an error.
//   - err for invalid input, malformed environment data, cancellation, or
//     an exceeded expansion limit. The Result is nil whenever err != nil.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. env must be non-nil (ErrNilEnvironment).
//  3. h must be non-nil (ErrNilHeuristic).
//  4. env.Reset must succeed (ErrEnvironment).
//
// During the search every step cost must be finite and non-negative
// (ErrInvalidCost, ErrNegativeCost) and every estimate finite and
// non-negative (ErrInvalidHeuristic).
//
// The path is optimal when h is consistent. Because closed positions are
// never reopened, an inconsistent heuristic, or an environment reporting
// different costs for the same edge across calls, keeps the first path that
// closed a position even if a cheaper one is discovered later.
func FindPath[P comparable](env Environment[P], h Heuristic[P], opts ...Option) (*Result[P], error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate arguments.
	if env == nil {
		return nil, ErrNilEnvironment
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	// 3) Obtain endpoints. Reset is called exactly once.
	start, goal, err := env.Reset()
	if err != nil {
		return nil, fmt.Errorf("%w: reset: %w", ErrEnvironment, err)
	}
	cfg.Logger.Debug("astar: search started", "start", start, "goal", goal)

	r := &runner[P]{
		env:     env,
		h:       h,
		opts:    cfg,
		goal:    goal,
		nodes:   make([]searchNode[P], 0, 64),
		visited: make(map[P]struct{}, 64),
	}
	r.frontier = pqueue.New[int](r.less, 64)

	// 4) Seed the frontier with the start node and run the main loop.
	if err = r.init(start); err != nil {
		return nil, err
	}

	return r.process()
}

// searchNode is one explored state. Nodes are never modified after being
// appended to the arena; a new node is appended for every path to a position.
type searchNode[P comparable] struct {
	pos      P
	parent   int     // arena index of the generating node, -1 for the start
	cost     float64 // accumulated step cost from the start (g)
	priority float64 // cost + heuristic estimate (f)
}

// runner holds the mutable state of a single FindPath call.
type runner[P comparable] struct {
	env      Environment[P]
	h        Heuristic[P]
	opts     Options
	goal     P
	nodes    []searchNode[P]    // arena; owns every node created during the run
	frontier *pqueue.Queue[int] // arena indices ordered by less
	visited  map[P]struct{}     // closed set
	expanded int
}

// less orders arena indices by priority, then by insertion order.
func (r *runner[P]) less(a, b int) bool {
	pa, pb := r.nodes[a].priority, r.nodes[b].priority
	if pa != pb {
		return pa < pb
	}

	return a < b
}

// init pushes the start node with zero cost and no parent.
func (r *runner[P]) init(start P) error {
	est, err := r.estimate(start)
	if err != nil {
		return err
	}
	r.push(searchNode[P]{pos: start, parent: -1, cost: 0, priority: est})

	return nil
}

// process is the main loop: pop the lowest-priority node, close it, stop at
// the goal, otherwise expand it.
func (r *runner[P]) process() (*Result[P], error) {
	for r.frontier.Len() > 0 {
		// cancellation check (once per loop)
		if err := r.opts.Ctx.Err(); err != nil {
			return nil, err
		}

		idx, _ := r.frontier.Pop()
		cur := r.nodes[idx]

		// Stale duplicate of a closed position.
		if _, closed := r.visited[cur.pos]; closed {
			continue
		}
		r.visited[cur.pos] = struct{}{}
		r.expanded++
		if r.opts.MaxExpansions > 0 && r.expanded > r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions without reaching %v",
				ErrExpansionLimit, r.opts.MaxExpansions, r.goal)
		}
		r.opts.OnExpand(cur.pos, cur.cost)

		if cur.pos == r.goal {
			res := &Result[P]{
				Path:     r.reconstruct(idx),
				Cost:     cur.cost,
				Expanded: r.expanded,
				Found:    true,
			}
			r.opts.Logger.Debug("astar: goal reached",
				"cost", res.Cost, "length", len(res.Path), "expanded", r.expanded)

			return res, nil
		}

		if err := r.expand(idx); err != nil {
			return nil, err
		}
	}

	r.opts.Logger.Debug("astar: frontier exhausted", "goal", r.goal, "expanded", r.expanded)

	return &Result[P]{Expanded: r.expanded}, nil
}

// expand asks the environment for the steps out of nodes[idx] and pushes a
// child node for every neighbour that is not closed yet.
func (r *runner[P]) expand(idx int) error {
	parent := r.nodes[idx]
	steps, err := r.env.Expand(parent.pos)
	if err != nil {
		return fmt.Errorf("%w: expand %v: %w", ErrEnvironment, parent.pos, err)
	}

	for _, s := range steps {
		// Validate before the closed check so malformed data always surfaces.
		if math.IsNaN(s.Cost) || math.IsInf(s.Cost, 0) {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrInvalidCost, parent.pos, s.To, s.Cost)
		}
		if s.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, parent.pos, s.To, s.Cost)
		}
		if _, closed := r.visited[s.To]; closed {
			continue
		}

		est, err := r.estimate(s.To)
		if err != nil {
			return err
		}
		cost := parent.cost + s.Cost
		r.push(searchNode[P]{pos: s.To, parent: idx, cost: cost, priority: cost + est})
	}

	return nil
}

// estimate evaluates the heuristic and rejects values that would corrupt
// the frontier order.
func (r *runner[P]) estimate(pos P) (float64, error) {
	est := r.h(pos, r.goal)
	if est < 0 || math.IsNaN(est) || math.IsInf(est, 0) {
		return 0, fmt.Errorf("%w: h(%v)=%v", ErrInvalidHeuristic, pos, est)
	}

	return est, nil
}

// push appends n to the arena and queues its index.
func (r *runner[P]) push(n searchNode[P]) {
	r.nodes = append(r.nodes, n)
	r.frontier.Push(len(r.nodes) - 1)
}

// reconstruct follows parent links from nodes[idx] back to the start and
// returns the positions in start→goal order.
func (r *runner[P]) reconstruct(idx int) []P {
	path := make([]P, 0, 16)
	for at := idx; at >= 0; at = r.nodes[at].parent {
		path = append(path, r.nodes[at].pos)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
