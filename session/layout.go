package session

import (
	"math"

	"github.com/katalvlaran/pathviz/grid"
)

// Layout maps between window pixels and grid cells.
type Layout struct {
	OriginX, OriginY float64 // top-left of the grid area
	Width, Height    float64 // grid area size
	Gap              float64 // pixels between tiles
	Rows, Cols       int
}

// NewLayout centres a width×height grid horizontally in the window and
// places its vertical centre at 55% of the window height, leaving room for
// controls above.
func NewLayout(rows, cols int, winW, winH, width, height, gap float64) Layout {
	return Layout{
		OriginX: winW/2 - width/2,
		OriginY: winH*55/100 - height/2,
		Width:   width,
		Height:  height,
		Gap:     gap,
		Rows:    rows,
		Cols:    cols,
	}
}

// TileSize returns the pitch of one cell, gap included.
func (l Layout) TileSize() (w, h float64) {
	return l.Width / float64(l.Cols), l.Height / float64(l.Rows)
}

// Over reports whether pixel (px, py) lies on the grid area, edges included.
func (l Layout) Over(px, py int) bool {
	x, y := float64(px), float64(py)
	return x >= l.OriginX && x <= l.OriginX+l.Width &&
		y >= l.OriginY && y <= l.OriginY+l.Height
}

// CellAt converts a pixel to the cell floor((p - origin) / tileSize),
// clamped to the grid, and reports whether the pixel was over the grid.
func (l Layout) CellAt(px, py int) (grid.Coord, bool) {
	tw, th := l.TileSize()
	row := int(math.Floor((float64(py) - l.OriginY) / th))
	col := int(math.Floor((float64(px) - l.OriginX) / tw))
	c := grid.Coord{Row: clampInt(row, 0, l.Rows-1), Col: clampInt(col, 0, l.Cols-1)}
	return c, l.Over(px, py)
}

// Rect returns the drawn rectangle of cell c: offset by the gap and shrunk by
// it, so neighbouring tiles show the background between them.
func (l Layout) Rect(c grid.Coord) (x, y, w, h float64) {
	tw, th := l.TileSize()
	return l.OriginX + tw*float64(c.Col) + l.Gap,
		l.OriginY + th*float64(c.Row) + l.Gap,
		tw - l.Gap,
		th - l.Gap
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
