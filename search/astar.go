package search

import (
	"container/heap"
	"math"
	"time"

	"github.com/katalvlaran/pathviz/grid"
)

// runner holds the mutable state for a single A* execution.
// Per-cell state is stored by row-major index; the heap holds value copies
// of (cell, costs), so no node is shared between the queue and the maps.
type runner struct {
	g      *grid.Grid
	opts   Options
	goal   grid.Coord
	start  int
	finish int
	gCost  []int  // best known cost from Start; math.MaxInt if undiscovered
	prev   []int  // came-from index for the best known gCost
	closed []bool // expanded cells
	pq     nodePQ
	seq    int
	res    *Result
}

// RunAStar runs A* from g.Start() to g.Finish() with the Manhattan heuristic.
//
// Ordering: ascending fCost = gCost + hCost; among equal fCost the smaller
// hCost first; remaining ties in insertion order.
//
// Relaxation: a neighbour's predecessor and gCost are replaced only when the
// candidate gCost is strictly lower than the stored one, and the candidate is
// pushed again ("lazy decrease-key"). Stale heap entries are skipped on pop.
//
// Manhattan distance is consistent on a 4-connected unit-cost grid, so each
// cell is expanded at most once and the returned path is shortest.
//
// RunAStar panics if g is nil; use Run for a checked entry point.
// Complexity: O(R×C · log(R×C)) time, O(R×C) memory.
func RunAStar(g *grid.Grid, opts ...Option) *Result {
	began := time.Now()
	o := buildOptions(opts)
	n := g.Size()
	r := &runner{
		g:      g,
		opts:   o,
		goal:   g.Finish(),
		start:  g.Index(g.Start()),
		finish: g.Index(g.Finish()),
		gCost:  make([]int, n),
		prev:   newCameFrom(n),
		closed: make([]bool, n),
		pq:     make(nodePQ, 0, n),
		res:    &Result{Algorithm: AStar, Visited: []grid.Coord{}, Path: []grid.Coord{}},
	}
	for i := range r.gCost {
		r.gCost[i] = math.MaxInt
	}

	r.gCost[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)
	r.process()

	return finishRun(r.res, o, began)
}

// process pops cells by priority until Finish is popped or the heap drains.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.idx

		// stale entry: a cheaper copy was pushed later, or u is done
		if r.closed[u] || item.g > r.gCost[u] {
			continue
		}
		if u == r.finish {
			r.res.Found = true
			r.res.Path = reconstruct(r.g, r.prev, u)
			return
		}

		r.closed[u] = true
		c := r.g.Coordinate(u)
		if u != r.start {
			r.res.Visited = append(r.res.Visited, c)
		}
		r.opts.OnExpand(c)
		r.relax(u, c)
	}
}

// relax improves gCost for each walkable neighbour of u reachable more cheaply
// through u. The stored entry always belongs to the neighbour itself, keyed by
// its own index, carrying its own candidate gCost and u as predecessor.
func (r *runner) relax(u int, c grid.Coord) {
	candidate := r.gCost[u] + 1
	for _, d := range grid.Directions {
		nc := c.Add(d)
		if !r.g.Walkable(nc) {
			continue
		}
		v := r.g.Index(nc)
		if r.closed[v] || candidate >= r.gCost[v] {
			continue
		}
		r.gCost[v] = candidate
		r.prev[v] = u
		r.opts.OnDiscover(nc, c)
		r.push(v, candidate)
	}
}

func (r *runner) push(idx, g int) {
	heap.Push(&r.pq, nodeItem{
		idx: idx,
		g:   g,
		h:   r.g.Coordinate(idx).Manhattan(r.goal),
		seq: r.seq,
	})
	r.seq++
}

// nodeItem is a heap entry: a cell index with the costs it was pushed with.
type nodeItem struct {
	idx int // row-major cell index
	g   int // gCost at push time
	h   int // Manhattan distance to Finish
	seq int // insertion order, final tie-break
}

func (n nodeItem) f() int { return n.g + n.h }

// nodePQ is a min-heap of nodeItem ordered by (f, h, seq) ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by fCost, then hCost, then insertion order.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x (a nodeItem) onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
