package frontend

import (
	"image/color"

	"github.com/katalvlaran/pathviz/session"
)

var (
	backgroundColor = color.RGBA{R: 30, G: 30, B: 34, A: 255}
	gridColor       = color.RGBA{A: 255}
)

// palette maps tile classes to fill colours.
var palette = map[session.TileClass]color.Color{
	session.ClassOpen:     color.RGBA{R: 197, G: 199, B: 200, A: 255},
	session.ClassHovered:  color.RGBA{R: 197, G: 199, B: 200, A: 200},
	session.ClassObstacle: color.RGBA{R: 197, G: 199, B: 200, A: 80},
	session.ClassStart:    color.RGBA{G: 255, A: 255},
	session.ClassFinish:   color.RGBA{R: 255, A: 255},
	session.ClassChecked:  color.RGBA{R: 160, G: 160, B: 160, A: 255},
	session.ClassPath:     color.RGBA{R: 153, G: 206, B: 255, A: 255},
}
