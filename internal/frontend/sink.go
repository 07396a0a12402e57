package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/pathviz/session"
)

// screenSink draws session rectangles onto an ebiten image.
type screenSink struct {
	dst *ebiten.Image
}

// DrawRect fills the rectangle with the class colour.
func (s screenSink) DrawRect(x, y, w, h float64, class session.TileClass) {
	clr, ok := palette[class]
	if !ok {
		clr = palette[session.ClassOpen]
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}
