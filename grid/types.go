// Package grid defines core types, sentinel errors and the neighbour
// direction table for the grid subpackage of github.com/katalvlaran/pathviz.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and bulk operations.
var (
	// ErrBadDimensions indicates rows or cols is not positive, or the grid
	// is too small to hold distinct Start and Finish cells.
	ErrBadDimensions = errors.New("grid: rows and cols must be positive and hold two distinct endpoints")
	// ErrEmptyGrid indicates an ASCII layout has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonRectangular indicates ASCII rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all layout rows must have the same length")
	// ErrBadTile indicates an unknown tile character in an ASCII layout.
	ErrBadTile = errors.New("grid: unknown tile character")
	// ErrMissingEndpoint indicates an ASCII layout without a Start or Finish cell.
	ErrMissingEndpoint = errors.New("grid: layout must contain exactly one S and one F")
	// ErrDuplicateEndpoint indicates an ASCII layout with more than one Start or Finish cell.
	ErrDuplicateEndpoint = errors.New("grid: layout contains more than one S or F")
	// ErrBadCoverage indicates a coverage percentage outside [1,100].
	ErrBadCoverage = errors.New("grid: coverage percentage must be in [1,100]")
)

// TileKind classifies a single cell.
type TileKind uint8

const (
	// Open is a walkable cell.
	Open TileKind = iota
	// Obstacle blocks movement.
	Obstacle
	// Start is the unique search origin.
	Start
	// Finish is the unique search target.
	Finish
)

// String returns the human-readable name of the kind.
func (k TileKind) String() string {
	switch k {
	case Open:
		return "Open"
	case Obstacle:
		return "Obstacle"
	case Start:
		return "Start"
	case Finish:
		return "Finish"
	default:
		return fmt.Sprintf("TileKind(%d)", uint8(k))
	}
}

// Endpoint reports whether k is Start or Finish.
func (k TileKind) Endpoint() bool { return k == Start || k == Finish }

// Coord addresses a cell by row and column, both zero based.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord { return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col} }

// Manhattan returns |Δrow| + |Δcol| between c and o.
// Complexity: O(1).
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent reports whether c and o share an edge (4-neighbourhood).
func (c Coord) Adjacent(o Coord) bool { return c.Manhattan(o) == 1 }

// Directions is the fixed 4-neighbourhood expansion order: west, east, north, south.
// Search algorithms iterate it in this order, which makes their visit order
// reproducible.
var Directions = [4]Coord{
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
