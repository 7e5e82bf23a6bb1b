// Package astar defines the environment contract, options and sentinel
// errors for best-first (A*) path search.
package astar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilEnvironment indicates that a nil Environment was passed to FindPath.
	ErrNilEnvironment = errors.New("astar: environment is nil")

	// ErrNilHeuristic indicates that a nil Heuristic was passed to FindPath.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNegativeCost indicates that Expand reported a step with cost < 0.
	ErrNegativeCost = errors.New("astar: negative step cost")

	// ErrInvalidCost indicates that Expand reported a NaN or infinite step cost.
	ErrInvalidCost = errors.New("astar: step cost is not finite")

	// ErrInvalidHeuristic indicates that the heuristic returned a negative,
	// NaN or infinite estimate.
	ErrInvalidHeuristic = errors.New("astar: heuristic estimate is negative or not finite")

	// ErrEnvironment wraps failures reported by Environment.Reset or Environment.Expand.
	ErrEnvironment = errors.New("astar: environment failure")

	// ErrExpansionLimit indicates that the search stopped after MaxExpansions
	// expansions without reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Step is one transition reported by Environment.Expand: the neighbouring
// position and the non-negative cost of moving there.
type Step[P comparable] struct {
	To   P
	Cost float64
}

// Environment is the adjacency and cost source searched by FindPath.
//
// Reset is called exactly once per FindPath call, before any expansion, and
// returns the start and goal positions. Expand returns every position
// directly reachable from pos together with the cost of the move; an empty
// slice marks a dead end. FindPath never mutates the environment.
type Environment[P comparable] interface {
	Reset() (start, goal P, err error)
	Expand(pos P) ([]Step[P], error)
}

// Heuristic estimates the remaining cost from pos to goal.
//
// The estimate must never exceed the true remaining cost (admissible) and
// must satisfy h(a) <= cost(a,b) + h(b) on every edge (consistent) for
// FindPath to return a minimum-cost path, because closed positions are
// never reopened.
type Heuristic[P comparable] func(pos, goal P) float64

// Result is the outcome of a FindPath call.
//
//   - Path:     positions from start to goal inclusive; nil if no path exists.
//   - Cost:     sum of step costs along Path (0 when Path is nil).
//   - Expanded: number of positions popped and expanded (goal included).
//   - Found:    whether the goal was reached.
type Result[P comparable] struct {
	Path     []P
	Cost     float64
	Expanded int
	Found    bool
}

// Empty reports whether the search ended without a path.
func (r *Result[P]) Empty() bool {
	return r == nil || len(r.Path) == 0
}

// Options configures FindPath.
type Options struct {
	// Ctx allows cancellation; checked once per loop iteration.
	Ctx context.Context

	// MaxExpansions, if > 0, stops the search with ErrExpansionLimit after
	// that many expansions. Zero means no limit.
	MaxExpansions int

	// Logger receives debug-level traces of the search.
	Logger *slog.Logger

	// OnExpand is called for every expanded position with its accumulated cost.
	OnExpand func(pos any, cost float64)

	// internal error recorded during option parsing
	err error
}

// Option configures FindPath via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - a logger that discards everything
//   - a no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand:      func(any, float64) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0:  stop with ErrExpansionLimit after n expansions
//	n == 0: no limit
//	n < 0:  invalid option, FindPath returns ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes debug traces to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a hook called for every expanded position.
func WithOnExpand(fn func(pos any, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
