package frontend

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/controls"
	"github.com/katalvlaran/pathviz/session"
)

const (
	hudX          = 20
	hudY          = 20
	hudLineHeight = 16
)

// Game adapts a Session to ebiten.Game.
type Game struct {
	sess          *session.Session
	ctl           *controls.Controls
	log           logrus.FieldLogger
	width, height int
	pointer       pointer
}

// NewGame wires sess and ctl into a window of the configured size.
func NewGame(cfg config.Config, sess *session.Session, ctl *controls.Controls, log logrus.FieldLogger) *Game {
	return &Game{
		sess:   sess,
		ctl:    ctl,
		log:    log,
		width:  cfg.WindowWidth,
		height: cfg.WindowHeight,
	}
}

// Update handles input, then advances the reveal by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, ev := range g.pointer.poll() {
		g.sess.HandleEvent(ev)
	}
	if err := g.handleKeys(); err != nil {
		g.log.WithError(err).Error("control action failed")
	}
	g.sess.Tick()
	return nil
}

func (g *Game) handleKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return g.sess.ToggleSearch()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.ctl.CycleAlgorithm()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.ctl.StepSpeed(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.ctl.StepSpeed(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.ctl.StepVolume(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.ctl.StepVolume(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.sess.ClearGrid()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.sess.FillGrid()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		_, err := g.sess.RandomizeGrid()
		return err
	}
	return nil
}

// Draw paints the grid backdrop, the session tiles and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	l := g.sess.Layout()
	vector.DrawFilledRect(screen,
		float32(l.OriginX), float32(l.OriginY),
		float32(l.Width+l.Gap), float32(l.Height+l.Gap),
		gridColor, false)
	g.sess.Draw(screenSink{dst: screen})

	for i, line := range g.ctl.Lines() {
		ebitenutil.DebugPrintAt(screen, line, hudX, hudY+i*hudLineHeight)
	}
}

// Layout keeps a fixed logical resolution; ebiten scales the window.
func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(cfg config.Config, sess *session.Session, ctl *controls.Controls, log logrus.FieldLogger) error {
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("pathviz")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	err := ebiten.RunGame(NewGame(cfg, sess, ctl, log))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
