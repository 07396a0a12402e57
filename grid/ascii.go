package grid

import (
	"fmt"
	"strings"
)

// ASCII tile characters understood by Parse and produced by Lines.
const (
	CharOpen     = '.'
	CharObstacle = '#'
	CharStart    = 'S'
	CharFinish   = 'F'
)

// Parse builds a Grid from rows of tile characters ('.', '#', 'S', 'F').
// Exactly one 'S' and one 'F' must be present.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadTile, ErrDuplicateEndpoint
// or ErrMissingEndpoint for malformed layouts.
// Complexity: O(R×C).
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), len(lines[0])
	for _, line := range lines {
		if len(line) != cols {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{rows: rows, cols: cols, tiles: make([]TileKind, rows*cols)}
	var haveStart, haveFinish bool
	for r, line := range lines {
		for col := 0; col < cols; col++ {
			c := Coord{Row: r, Col: col}
			switch line[col] {
			case CharOpen:
			case CharObstacle:
				g.tiles[g.index(c)] = Obstacle
			case CharStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second S at %v", ErrDuplicateEndpoint, c)
				}
				haveStart = true
				g.start = c
				g.tiles[g.index(c)] = Start
			case CharFinish:
				if haveFinish {
					return nil, fmt.Errorf("%w: second F at %v", ErrDuplicateEndpoint, c)
				}
				haveFinish = true
				g.finish = c
				g.tiles[g.index(c)] = Finish
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadTile, line[col], c)
			}
		}
	}
	if !haveStart || !haveFinish {
		return nil, ErrMissingEndpoint
	}

	return g, nil
}

// MustParse is Parse for fixtures; it panics on error.
func MustParse(lines ...string) *Grid {
	g, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// Lines renders the grid as one string per row using the Parse alphabet.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		b.Reset()
		for c := 0; c < g.cols; c++ {
			b.WriteByte(kindChar(g.tiles[r*g.cols+c]))
		}
		out[r] = b.String()
	}
	return out
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func kindChar(k TileKind) byte {
	switch k {
	case Obstacle:
		return CharObstacle
	case Start:
		return CharStart
	case Finish:
		return CharFinish
	default:
		return CharOpen
	}
}
