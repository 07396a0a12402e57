// Package search computes shortest paths on a grid.Grid with breadth-first
// search or A*, returning the expansion order and the path between the
// endpoints.
//
// What
//
//   - Run(g, alg, opts...) dispatches to RunBFS or RunAStar.
//   - Result carries:
//   - Visited: cells in expansion order, excluding Start and Finish
//   - Path: intermediate cells from Start to Finish, excluding both
//   - Found: whether Finish was reached (adjacent endpoints ⇒ Found, empty Path)
//   - Hooks: WithOnExpand, WithOnDiscover; WithLogger for run summaries.
//
// Determinism
//
//	Neighbours are always examined west, east, north, south (grid.Directions).
//	A* breaks fCost ties by smaller hCost, then by insertion order, so a given
//	grid always yields the same Visited sequence for a given strategy.
//
// Breadth-first search
//
//	Queue based, unit edge cost. A neighbour is marked visited when enqueued,
//	not when dequeued. The run stops the moment Finish is dequeued.
//
// A*
//
//	Min-heap on fCost = gCost + hCost with the Manhattan heuristic, which is
//	admissible and consistent on 4-connected unit-cost grids. Relaxation
//	stores the neighbour's own candidate cost and predecessor, never the
//	expanding cell's, so the came-from table always holds the lowest known
//	gCost per cell.
//
// Path reconstruction
//
//	Both strategies keep a dense came-from slice indexed by cell. Walking it
//	from Finish back to Start yields the path; the slice is discarded when
//	the call returns.
//
// Complexity (N = rows × cols)
//
//   - BFS:  O(N) time, O(N) memory
//   - A*:   O(N log N) time, O(N) memory
//
// Errors
//
//   - ErrNilGrid           if the grid pointer is nil (Run only).
//   - ErrUnknownAlgorithm  for an unrecognised Algorithm or name.
//
// An unreachable Finish is a normal outcome, not an error.
package search
