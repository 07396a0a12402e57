package session

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/search"
)

// Sentinel errors for session construction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to New.
	ErrNilGrid = errors.New("session: grid is nil")

	// ErrNilStatus is returned if New is given no StatusSink.
	ErrNilStatus = errors.New("session: status sink is nil")
)

// TileClass is the semantic colour class of a drawn rectangle.
type TileClass int

const (
	ClassOpen     TileClass = iota // walkable cell
	ClassHovered                   // Open cell under the pointer
	ClassObstacle                  // blocked cell
	ClassStart                     // Start endpoint, also the dragged Start
	ClassFinish                    // Finish endpoint, also the dragged Finish
	ClassChecked                   // revealed visited cell
	ClassPath                      // path cell, shown once the reveal completes
)

// String returns the lower-case class name.
func (c TileClass) String() string {
	switch c {
	case ClassOpen:
		return "open"
	case ClassHovered:
		return "hovered"
	case ClassObstacle:
		return "obstacle"
	case ClassStart:
		return "start"
	case ClassFinish:
		return "finish"
	case ClassChecked:
		return "checked"
	case ClassPath:
		return "path"
	default:
		return fmt.Sprintf("TileClass(%d)", int(c))
	}
}

// RenderSink draws a rectangle in window pixels.
type RenderSink interface {
	DrawRect(x, y, w, h float64, class TileClass)
}

// StatusSink is the control surface: it receives the searching flag and
// supplies the selected algorithm and reveal speed.
type StatusSink interface {
	SetSearching(on bool)
	Algorithm() search.Algorithm
	Speed() float64
}

// StaticStatus is a StatusSink with fixed settings, for headless use.
type StaticStatus struct {
	Alg       search.Algorithm
	Rate      float64
	Searching bool
}

// SetSearching records on in Searching.
func (s *StaticStatus) SetSearching(on bool) { s.Searching = on }

// Algorithm returns Alg.
func (s *StaticStatus) Algorithm() search.Algorithm { return s.Alg }

// Speed returns Rate.
func (s *StaticStatus) Speed() float64 { return s.Rate }

// EventKind distinguishes pointer events.
type EventKind int

const (
	PointerMove EventKind = iota // cursor moved
	ButtonDown                   // button pressed
	ButtonUp                     // button released
)

// Button identifies a pointer button.
type Button int

const (
	LeftButton  Button = iota // paints and drags
	RightButton               // erases
)

// Event is one pointer event in window pixels.
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   int
}
