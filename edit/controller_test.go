package edit_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/edit"
	"github.com/katalvlaran/pathviz/grid"
)

func at(r, c int) grid.Coord { return grid.Coord{Row: r, Col: c} }

// newEditor returns a 4×5 grid, a controller on it and a cancel counter.
func newEditor(t *testing.T) (*grid.Grid, *edit.Controller, *int) {
	t.Helper()
	g, err := grid.New(4, 5)
	require.NoError(t, err)
	cancels := new(int)
	c := edit.New(g, edit.WithOnCancel(func() { *cancels++ }))
	return g, c, cancels
}

func TestPaintAdd(t *testing.T) {
	g, c, cancels := newEditor(t)

	c.LeftDown(at(1, 1))
	require.Equal(t, edit.PaintingAdd, c.Mode())
	require.Equal(t, 1, *cancels)
	c.Move(at(1, 2))
	c.Move(at(0, 0)) // Start is never painted
	c.Move(at(3, 4)) // nor Finish
	c.LeftUp()

	require.Equal(t, edit.Idle, c.Mode())
	require.Equal(t, 2, g.Count(grid.Obstacle))
	require.Equal(t, grid.Start, g.At(at(0, 0)))
	require.Equal(t, grid.Finish, g.At(at(3, 4)))

	c.Move(at(2, 2)) // idle moves do nothing
	require.Equal(t, grid.Open, g.At(at(2, 2)))
}

func TestPaintRemove(t *testing.T) {
	g, c, cancels := newEditor(t)
	g.Fill()

	c.RightDown(at(1, 1))
	require.Equal(t, edit.PaintingRemove, c.Mode())
	require.Equal(t, 1, *cancels)
	c.Move(at(1, 2))
	c.RightUp()
	c.Move(at(1, 3))

	require.Equal(t, edit.Idle, c.Mode())
	require.Equal(t, grid.Open, g.At(at(1, 1)))
	require.Equal(t, grid.Open, g.At(at(1, 2)))
	require.Equal(t, grid.Obstacle, g.At(at(1, 3)))
}

func TestPaintModesExclusive(t *testing.T) {
	g, c, cancels := newEditor(t)

	c.LeftDown(at(1, 1))
	c.RightDown(at(1, 2)) // ignored while adding
	require.Equal(t, edit.PaintingAdd, c.Mode())
	c.Move(at(1, 2))
	require.Equal(t, grid.Obstacle, g.At(at(1, 2)))
	c.RightUp()
	require.Equal(t, edit.PaintingAdd, c.Mode())
	c.LeftUp()

	c.RightDown(at(1, 1))
	c.LeftDown(at(2, 2)) // ignored while removing
	require.Equal(t, edit.PaintingRemove, c.Mode())
	c.LeftUp() // does not end removal
	require.Equal(t, edit.PaintingRemove, c.Mode())
	c.Move(at(1, 2))
	require.Equal(t, 0, g.Count(grid.Obstacle))
	c.RightUp()
	require.Equal(t, 2, *cancels)
}

func TestDragStart(t *testing.T) {
	g, c, cancels := newEditor(t)
	g.SetObstacle(at(2, 2))

	c.LeftDown(at(0, 0))
	require.Equal(t, edit.DraggingStart, c.Mode())
	require.Equal(t, 1, *cancels)
	require.Equal(t, grid.Open, c.Kind(at(0, 0)), "home cell displays as Open")
	require.Equal(t, grid.Start, g.At(at(0, 0)), "grid keeps its invariant")

	c.Move(at(1, 1))
	c.Move(at(2, 2)) // drags over obstacles without painting
	kind, pos, ok := c.Dragged()
	require.True(t, ok)
	require.Equal(t, grid.Start, kind)
	require.Equal(t, at(2, 2), pos)
	require.Equal(t, 1, g.Count(grid.Obstacle))

	c.LeftUp()
	require.Equal(t, edit.Idle, c.Mode())
	require.Equal(t, at(2, 2), g.Start())
	require.Equal(t, grid.Start, g.At(at(2, 2)))
	require.Equal(t, grid.Open, g.At(at(0, 0)))
	require.Zero(t, g.Count(grid.Obstacle))

	_, _, ok = c.Dragged()
	require.False(t, ok)
}

func TestDragFinish_RejectsOtherEndpoint(t *testing.T) {
	g, c, _ := newEditor(t)

	c.LeftDown(at(3, 4))
	require.Equal(t, edit.DraggingFinish, c.Mode())
	c.Move(at(0, 1))
	c.Move(at(0, 0)) // Start: pending stays at (0,1)
	_, pos, _ := c.Dragged()
	require.Equal(t, at(0, 1), pos)

	c.RightDown(at(2, 2)) // ignored while dragging
	require.Equal(t, edit.DraggingFinish, c.Mode())

	c.LeftUp()
	require.Equal(t, at(0, 1), g.Finish())
	require.Equal(t, at(0, 0), g.Start())
}

func TestDrag_ReleaseWithoutMove(t *testing.T) {
	g, c, _ := newEditor(t)

	c.LeftDown(at(0, 0))
	c.LeftUp()
	require.Equal(t, at(0, 0), g.Start())
	require.Equal(t, grid.Start, g.At(at(0, 0)))
	require.Equal(t, grid.Start, c.Kind(at(0, 0)))
}

// TestInvariant_RandomGestures drives random gestures and checks the grid
// always holds exactly one Start and one Finish.
func TestInvariant_RandomGestures(t *testing.T) {
	g, c, _ := newEditor(t)
	r := rand.New(rand.NewSource(7))

	for step := 0; step < 5000; step++ {
		pos := at(r.Intn(g.Rows()), r.Intn(g.Cols()))
		switch r.Intn(5) {
		case 0:
			c.LeftDown(pos)
		case 1:
			c.LeftUp()
		case 2:
			c.RightDown(pos)
		case 3:
			c.RightUp()
		default:
			c.Move(pos)
		}

		assert.Equal(t, 1, g.Count(grid.Start), "step %d", step)
		assert.Equal(t, 1, g.Count(grid.Finish), "step %d", step)
		assert.Equal(t, grid.Start, g.At(g.Start()))
		assert.Equal(t, grid.Finish, g.At(g.Finish()))
		if _, p, ok := c.Dragged(); ok {
			require.True(t, c.Mode().Dragging())
			require.True(t, g.InBounds(p))
		}
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "dragging-finish", edit.DraggingFinish.String())
	assert.Equal(t, "Mode(9)", edit.Mode(9).String())
}
