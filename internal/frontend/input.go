package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/pathviz/session"
)

var buttons = []struct {
	ebiten  ebiten.MouseButton
	session session.Button
}{
	{ebiten.MouseButtonLeft, session.LeftButton},
	{ebiten.MouseButtonRight, session.RightButton},
}

// pointer turns ebiten's polled mouse state into session events.
type pointer struct {
	x, y  int
	moved bool
}

// poll returns this tick's events: a move when the cursor changed, then
// releases, then presses.
func (p *pointer) poll() []session.Event {
	x, y := ebiten.CursorPosition()
	var events []session.Event
	if !p.moved || x != p.x || y != p.y {
		events = append(events, session.Event{Kind: session.PointerMove, X: x, Y: y})
		p.x, p.y, p.moved = x, y, true
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			events = append(events, session.Event{Kind: session.ButtonUp, Button: b.session, X: x, Y: y})
		}
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			events = append(events, session.Event{Kind: session.ButtonDown, Button: b.session, X: x, Y: y})
		}
	}
	return events
}
