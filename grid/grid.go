package grid

import (
	"fmt"
	"math"
)

// Grid owns the tile state of an R×C board with exactly one Start and one
// Finish cell. Rows and cols are fixed at construction.
//
// Invariant: tiles[start] == Start, tiles[finish] == Finish, start != finish.
//
// Grid is not safe for concurrent mutation; it is owned by a single tick loop.
type Grid struct {
	rows, cols int
	tiles      []TileKind // row-major
	start      Coord
	finish     Coord
}

// New constructs a rows×cols grid of Open cells with Start at (0,0) and
// Finish at (rows-1, cols-1).
// Returns ErrBadDimensions if either dimension is not positive, the grid
// has a single cell, or rows×cols overflows int.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols || rows*cols < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, rows, cols)
	}
	g := &Grid{
		rows:   rows,
		cols:   cols,
		tiles:  make([]TileKind, rows*cols),
		start:  Coord{Row: 0, Col: 0},
		finish: Coord{Row: rows - 1, Col: cols - 1},
	}
	g.tiles[g.index(g.start)] = Start
	g.tiles[g.index(g.finish)] = Finish

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// Start returns the Start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Finish returns the Finish coordinate.
func (g *Grid) Finish() Coord { return g.finish }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Clamp returns c limited to [0,rows-1]×[0,cols-1].
func (g *Grid) Clamp(c Coord) Coord {
	return Coord{Row: clamp(c.Row, 0, g.rows-1), Col: clamp(c.Col, 0, g.cols-1)}
}

// At returns the kind of the cell at c. Panics if c is out of bounds.
func (g *Grid) At(c Coord) TileKind {
	return g.tiles[g.mustIndex(c)]
}

// Walkable reports whether c is in bounds and not an Obstacle.
func (g *Grid) Walkable(c Coord) bool {
	return g.InBounds(c) && g.tiles[g.index(c)] != Obstacle
}

// Index maps c to its row-major index: row*cols + col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int { return g.mustIndex(c) }

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// SetObstacle marks c as Obstacle. It is a no-op on Start and Finish and
// reports whether the cell changed.
func (g *Grid) SetObstacle(c Coord) bool {
	i := g.mustIndex(c)
	if g.tiles[i] != Open {
		return false
	}
	g.tiles[i] = Obstacle
	return true
}

// ClearObstacle marks c as Open. It is a no-op on Start and Finish and
// reports whether the cell changed.
func (g *Grid) ClearObstacle(c Coord) bool {
	i := g.mustIndex(c)
	if g.tiles[i] != Obstacle {
		return false
	}
	g.tiles[i] = Open
	return true
}

// MoveStart relocates Start to c. The move is rejected (false) when c holds
// Finish. Otherwise the previous Start cell becomes Open and c becomes Start,
// overwriting an Obstacle if present.
func (g *Grid) MoveStart(c Coord) bool {
	return g.moveEndpoint(&g.start, Start, g.finish, c)
}

// MoveFinish relocates Finish to c. The move is rejected (false) when c holds
// Start. Otherwise the previous Finish cell becomes Open and c becomes Finish.
func (g *Grid) MoveFinish(c Coord) bool {
	return g.moveEndpoint(&g.finish, Finish, g.start, c)
}

func (g *Grid) moveEndpoint(cur *Coord, kind TileKind, other, to Coord) bool {
	i := g.mustIndex(to)
	if to == other {
		return false
	}
	g.tiles[g.index(*cur)] = Open
	g.tiles[i] = kind
	*cur = to
	return true
}

// Clone returns a deep copy of g. Search runs operate on whatever grid they
// are handed, so callers that keep editing while holding a result can
// snapshot first.
// Complexity: O(R×C).
func (g *Grid) Clone() *Grid {
	tiles := make([]TileKind, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{
		rows:   g.rows,
		cols:   g.cols,
		tiles:  tiles,
		start:  g.start,
		finish: g.finish,
	}
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, k := range g.tiles {
		if k == kind {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coord, kind TileKind)) {
	for i, k := range g.tiles {
		fn(g.Coordinate(i), k)
	}
}

// index maps c to a row-major index without bounds checking.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// mustIndex is index with a precondition check. Out-of-range coordinates are
// caller bugs: the editor clamps pointer positions before mutating.
func (g *Grid) mustIndex(c Coord) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: coordinate %v out of bounds for %dx%d grid", c, g.rows, g.cols))
	}
	return g.index(c)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
