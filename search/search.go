package search

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
)

// noParent marks a cell without a recorded predecessor in a came-from slice.
const noParent = -1

// Run executes alg on g and returns its Result. The run completes
// synchronously; g must not be mutated while Run is executing.
//
// Returns ErrNilGrid for a nil grid and ErrUnknownAlgorithm for an
// unrecognised algorithm. An unreachable Finish is not an error: the Result
// has Found == false and an empty Path.
func Run(g *grid.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	switch alg {
	case BreadthFirst:
		return RunBFS(g, opts...), nil
	case AStar:
		return RunAStar(g, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// newCameFrom returns a came-from slice with every entry set to noParent.
func newCameFrom(n int) []int {
	prev := make([]int, n)
	for i := range prev {
		prev[i] = noParent
	}
	return prev
}

// reconstruct walks the came-from chain from the predecessor of finish back
// to (but excluding) start and returns it in start→finish order.
// Complexity: O(path length).
func reconstruct(g *grid.Grid, prev []int, finish int) []grid.Coord {
	start := g.Index(g.Start())
	path := []grid.Coord{}
	for at := prev[finish]; at != noParent && at != start; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	// reverse to get start → finish
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// finishRun stamps bookkeeping shared by both strategies.
func finishRun(res *Result, o Options, began time.Time) *Result {
	res.Elapsed = time.Since(began)
	o.Logger.WithFields(logrus.Fields{
		"algorithm": res.Algorithm.Key(),
		"visited":   len(res.Visited),
		"path":      len(res.Path),
		"found":     res.Found,
	}).Debug("search finished")
	return res
}
