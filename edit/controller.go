package edit

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
)

// Mode is the controller state.
type Mode int

const (
	// Idle means no gesture is in progress.
	Idle Mode = iota
	// PaintingAdd turns Open cells under the pointer into Obstacles.
	PaintingAdd
	// PaintingRemove turns Obstacles under the pointer back into Open cells.
	PaintingRemove
	// DraggingStart carries the Start endpoint until the left button is released.
	DraggingStart
	// DraggingFinish carries the Finish endpoint until the left button is released.
	DraggingFinish
)

// String returns a lower-case state name for logs.
func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case PaintingAdd:
		return "painting-add"
	case PaintingRemove:
		return "painting-remove"
	case DraggingStart:
		return "dragging-start"
	case DraggingFinish:
		return "dragging-finish"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Dragging reports whether m moves an endpoint.
func (m Mode) Dragging() bool { return m == DraggingStart || m == DraggingFinish }

// Option configures a Controller.
type Option func(*Controller)

// WithOnCancel registers fn to run whenever a gesture begins.
func WithOnCancel(fn func()) Option {
	return func(c *Controller) {
		if fn != nil {
			c.onCancel = fn
		}
	}
}

// WithLogger sets the logger for state transitions (Debug level).
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller owns the edit state for one grid.
type Controller struct {
	g        *grid.Grid
	mode     Mode
	home     grid.Coord // endpoint cell when the drag began
	pending  grid.Coord // where the dragged endpoint currently hovers
	onCancel func()
	log      logrus.FieldLogger
}

// New returns an Idle controller editing g.
func New(g *grid.Grid, opts ...Option) *Controller {
	l := logrus.New()
	l.SetOutput(io.Discard)
	c := &Controller{g: g, onCancel: func() {}, log: l}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the current state.
func (c *Controller) Mode() Mode { return c.mode }

// LeftDown starts a drag when pos holds an endpoint, otherwise starts adding
// obstacles at pos. Ignored while removing or dragging.
func (c *Controller) LeftDown(pos grid.Coord) {
	if c.mode == PaintingRemove || c.mode.Dragging() {
		return
	}
	switch c.g.At(pos) {
	case grid.Start:
		c.beginDrag(DraggingStart, pos)
	case grid.Finish:
		c.beginDrag(DraggingFinish, pos)
	default:
		c.enter(PaintingAdd)
		c.g.SetObstacle(pos)
	}
}

// LeftUp commits a drag or ends obstacle adding.
func (c *Controller) LeftUp() {
	switch c.mode {
	case DraggingStart:
		c.g.MoveStart(c.pending)
	case DraggingFinish:
		c.g.MoveFinish(c.pending)
	case PaintingAdd:
	default:
		return
	}
	c.transition(Idle)
}

// RightDown starts removing obstacles at pos. Ignored unless Idle.
func (c *Controller) RightDown(pos grid.Coord) {
	if c.mode != Idle {
		return
	}
	c.enter(PaintingRemove)
	c.g.ClearObstacle(pos)
}

// RightUp ends obstacle removal.
func (c *Controller) RightUp() {
	if c.mode == PaintingRemove {
		c.transition(Idle)
	}
}

// Move applies the current gesture at pos.
func (c *Controller) Move(pos grid.Coord) {
	switch c.mode {
	case PaintingAdd:
		c.g.SetObstacle(pos)
	case PaintingRemove:
		c.g.ClearObstacle(pos)
	case DraggingStart:
		c.dragTo(pos, c.g.Finish())
	case DraggingFinish:
		c.dragTo(pos, c.g.Start())
	}
}

// Dragged returns the endpoint kind being dragged and its pending
// coordinate. ok is false when no drag is active.
func (c *Controller) Dragged() (kind grid.TileKind, at grid.Coord, ok bool) {
	switch c.mode {
	case DraggingStart:
		return grid.Start, c.pending, true
	case DraggingFinish:
		return grid.Finish, c.pending, true
	default:
		return grid.Open, grid.Coord{}, false
	}
}

// Kind returns the kind to display at pos: the grid's kind, except that the
// home cell of a dragged endpoint shows as Open.
func (c *Controller) Kind(pos grid.Coord) grid.TileKind {
	if c.mode.Dragging() && pos == c.home {
		return grid.Open
	}
	return c.g.At(pos)
}

// dragTo moves the pending coordinate unless pos is the other endpoint.
func (c *Controller) dragTo(pos, other grid.Coord) {
	if pos != other {
		c.pending = pos
	}
}

func (c *Controller) beginDrag(m Mode, pos grid.Coord) {
	c.home, c.pending = pos, pos
	c.enter(m)
}

// enter leaves Idle for m and cancels any search.
func (c *Controller) enter(m Mode) {
	c.onCancel()
	c.transition(m)
}

func (c *Controller) transition(m Mode) {
	if m == c.mode {
		return
	}
	c.log.WithFields(logrus.Fields{"from": c.mode, "to": m}).Debug("edit mode")
	c.mode = m
}
