// Package search defines the algorithm selector, tunable options, sentinel
// errors and the Result type shared by breadth-first search and A*.
package search

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm value or name that
	// does not name a strategy.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// BreadthFirst explores in rings of equal step count.
	BreadthFirst Algorithm = iota
	// AStar explores by ascending fCost with a Manhattan heuristic.
	AStar
)

// Algorithms lists every strategy in selector order.
var Algorithms = []Algorithm{BreadthFirst, AStar}

// String returns the display name used by selectors and logs.
func (a Algorithm) String() string {
	switch a {
	case BreadthFirst:
		return "Breadth First Search"
	case AStar:
		return "A* Search"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Key returns the short machine name ("bfs", "astar").
func (a Algorithm) Key() string {
	switch a {
	case BreadthFirst:
		return "bfs"
	case AStar:
		return "astar"
	default:
		return ""
	}
}

// Next returns the following algorithm in selector order, wrapping around.
func (a Algorithm) Next() Algorithm {
	return Algorithms[(int(a)+1)%len(Algorithms)]
}

// ParseAlgorithm maps "bfs"/"breadth-first" and "astar"/"a*" (any case) to
// an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Option configures a search run via functional arguments.
type Option func(*Options)

// Options holds hooks and collaborators for a search run.
type Options struct {
	// OnExpand is called for every cell taken off the frontier and expanded,
	// including Start. Finish is never expanded.
	OnExpand func(c grid.Coord)

	// OnDiscover is called whenever a cell receives a new best predecessor.
	OnDiscover func(c, parent grid.Coord)

	// Logger receives a Debug entry per run.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with no-op hooks and a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		OnExpand:   func(grid.Coord) {},
		OnDiscover: func(_, _ grid.Coord) {},
		Logger:     l,
	}
}

// WithOnExpand registers a callback invoked on every expansion.
func WithOnExpand(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback invoked when a predecessor is recorded.
func WithOnDiscover(fn func(c, parent grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithLogger sets the logger for run summaries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of one search run.
//   - Visited: expanded cells in expansion order, excluding Start and Finish.
//   - Path: cells from the neighbour of Start to the neighbour of Finish,
//     excluding both endpoints. Empty when Finish is unreachable or adjacent.
//   - Found: Finish was reached. Distinguishes adjacent endpoints (Found,
//     empty Path) from an unreachable Finish (not Found, empty Path).
type Result struct {
	Algorithm Algorithm
	Visited   []grid.Coord
	Path      []grid.Coord
	Found     bool
	Elapsed   time.Duration
}

// Len returns the number of steps from Start to Finish, or -1 if unreachable.
func (r *Result) Len() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) + 1
}
