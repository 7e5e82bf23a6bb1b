// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm over an astar.Environment.
//
// Dijkstra computes the minimum-cost path from a single source position to all
// other reachable positions of an environment with non-negative step costs.
// The algorithm maintains a priority queue of positions to explore and
// relaxes steps in increasing order of distance from the source.
//
// Options:
//
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; positions beyond this are skipped.
//	– InfEdgeThreshold: steps with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilEnvironment  if the provided environment is nil.
//	– ErrNegativeWeight  if a negative or NaN step cost is reported.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilEnvironment indicates that a nil environment was passed to Dijkstra.
	ErrNilEnvironment = errors.New("dijkstra: environment is nil")

	// ErrNegativeWeight indicates that a negative (or NaN) step cost was reported.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all steps (including zero-cost steps) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (positions beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat steps with cost ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	ReturnPath       bool    // Whether to return the predecessor map
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Cost threshold above which steps are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Positions whose shortest distance would exceed this value are not explored.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold above which steps are
// considered non-traversable. Steps with cost ≥ threshold are skipped.
// Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      +Inf (explore all reachable positions).
//   - InfEdgeThreshold: +Inf (no steps treated as impassable).
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
