package search

import (
	"time"

	"github.com/katalvlaran/pathviz/grid"
)

// walker encapsulates mutable breadth-first state for a single run.
type walker struct {
	g       *grid.Grid
	opts    Options
	queue   []int // row-major indices
	visited []bool
	prev    []int
	start   int
	finish  int
	res     *Result
}

// RunBFS runs breadth-first search from g.Start() to g.Finish().
//
// Behavior:
//  1. Enqueue Start and mark it visited.
//  2. Dequeue the front cell. If it is Finish, reconstruct and stop.
//  3. Otherwise record it in Visited (unless it is Start) and enqueue every
//     in-bounds, non-Obstacle, unvisited neighbour in Directions order,
//     marking each visited at enqueue time and recording its parent.
//  4. If the queue drains, Finish is unreachable: empty Path, Found=false.
//
// RunBFS panics if g is nil; use Run for a checked entry point.
// Complexity: O(R×C) time and memory.
func RunBFS(g *grid.Grid, opts ...Option) *Result {
	began := time.Now()
	o := buildOptions(opts)
	n := g.Size()
	w := &walker{
		g:       g,
		opts:    o,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		prev:    newCameFrom(n),
		start:   g.Index(g.Start()),
		finish:  g.Index(g.Finish()),
		res:     &Result{Algorithm: BreadthFirst, Visited: []grid.Coord{}, Path: []grid.Coord{}},
	}

	w.visited[w.start] = true
	w.queue = append(w.queue, w.start)
	w.loop()

	return finishRun(w.res, o, began)
}

// loop processes the queue until Finish is dequeued or the queue drains.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		u := w.queue[head]
		if u == w.finish {
			w.res.Found = true
			w.res.Path = reconstruct(w.g, w.prev, u)
			return
		}
		w.visit(u)
		w.enqueueNeighbors(u)
	}
}

// visit records u in Visited (Start excluded) and calls OnExpand.
func (w *walker) visit(u int) {
	c := w.g.Coordinate(u)
	if u != w.start {
		w.res.Visited = append(w.res.Visited, c)
	}
	w.opts.OnExpand(c)
}

// enqueueNeighbors marks and enqueues each eligible unseen neighbour of u.
func (w *walker) enqueueNeighbors(u int) {
	c := w.g.Coordinate(u)
	for _, d := range grid.Directions {
		nc := c.Add(d)
		if !w.g.Walkable(nc) {
			continue
		}
		v := w.g.Index(nc)
		if w.visited[v] {
			continue
		}
		w.visited[v] = true
		w.prev[v] = u
		w.opts.OnDiscover(nc, c)
		w.queue = append(w.queue, v)
	}
}
