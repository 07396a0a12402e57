package session

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/edit"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/reveal"
	"github.com/katalvlaran/pathviz/search"
)

// DefaultMaxCoverage is the upper bound of the random obstacle coverage.
const DefaultMaxCoverage = 50

// Option configures a Session.
type Option func(*Session)

// WithAudio sets the sink for reveal cues.
func WithAudio(a reveal.AudioSink) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRand sets the random source for RandomizeGrid.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithMaxCoverage sets the upper bound passed to grid.Randomize.
func WithMaxCoverage(p int) Option {
	return func(s *Session) { s.maxCoverage = p }
}

// WithThreshold sets the reveal threshold.
func WithThreshold(t float64) Option {
	return func(s *Session) { s.threshold = t }
}

// Session holds everything one window edits, searches and draws.
type Session struct {
	grid   *grid.Grid
	editor *edit.Controller
	layout Layout
	status StatusSink
	audio  reveal.AudioSink
	log    logrus.FieldLogger
	rng    *rand.Rand

	maxCoverage int
	threshold   float64

	hover     grid.Coord
	hoverOver bool

	runID     uuid.UUID
	result    *search.Result
	player    *reveal.Player
	searching bool
}

// New builds a Session over g. The grid is owned by the Session from here on.
func New(g *grid.Grid, layout Layout, status StatusSink, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if status == nil {
		return nil, ErrNilStatus
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := &Session{
		grid:        g,
		layout:      layout,
		status:      status,
		audio:       reveal.AudioFunc(func(float64) {}),
		log:         l,
		rng:         grid.NewRand(0),
		maxCoverage: DefaultMaxCoverage,
		threshold:   reveal.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxCoverage < 1 || s.maxCoverage > 100 {
		return nil, fmt.Errorf("%w: got %d", grid.ErrBadCoverage, s.maxCoverage)
	}
	if !(s.threshold > 0) || math.IsInf(s.threshold, 1) {
		return nil, fmt.Errorf("%w: got %v", reveal.ErrBadThreshold, s.threshold)
	}
	s.editor = edit.New(g, edit.WithOnCancel(s.CancelSearch), edit.WithLogger(s.log))

	return s, nil
}

// Grid returns the edited grid.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Editor returns the edit controller.
func (s *Session) Editor() *edit.Controller { return s.editor }

// Layout returns the pixel layout.
func (s *Session) Layout() Layout { return s.layout }

// Searching reports whether a reveal is in progress.
func (s *Session) Searching() bool { return s.searching }

// Result returns the current search result, or nil.
func (s *Session) Result() *search.Result { return s.result }

// Player returns the current reveal, or nil.
func (s *Session) Player() *reveal.Player { return s.player }

// RunID identifies the current result; uuid.Nil when there is none.
func (s *Session) RunID() uuid.UUID { return s.runID }

// Hover returns the cell under the pointer and whether the pointer is over
// the grid.
func (s *Session) Hover() (grid.Coord, bool) { return s.hover, s.hoverOver }

// HandleEvent applies one pointer event. Presses outside the grid are
// ignored; releases always end the gesture.
func (s *Session) HandleEvent(ev Event) {
	cell, over := s.layout.CellAt(ev.X, ev.Y)
	s.hover, s.hoverOver = cell, over

	switch ev.Kind {
	case PointerMove:
		if over {
			s.editor.Move(cell)
		}
	case ButtonDown:
		if !over {
			return
		}
		if ev.Button == LeftButton {
			s.editor.LeftDown(cell)
		} else {
			s.editor.RightDown(cell)
		}
	case ButtonUp:
		if ev.Button == LeftButton {
			s.editor.LeftUp()
		} else {
			s.editor.RightUp()
		}
	}
}

// ToggleSearch starts a search when idle and cancels the current one
// otherwise.
func (s *Session) ToggleSearch() error {
	if s.searching {
		s.CancelSearch()
		return nil
	}
	return s.StartSearch()
}

// StartSearch runs the selected algorithm on the grid and begins revealing
// the result. Any previous result is replaced. It does nothing while a
// gesture is held: edits made by that gesture would not cancel the run.
func (s *Session) StartSearch() error {
	if mode := s.editor.Mode(); mode != edit.Idle {
		s.log.WithField("mode", mode.String()).Debug("search ignored during gesture")
		return nil
	}
	alg := s.status.Algorithm()
	res, err := search.Run(s.grid, alg, search.WithLogger(s.log))
	if err != nil {
		return err
	}
	player, err := reveal.NewPlayer(res,
		reveal.WithThreshold(s.threshold),
		reveal.WithAudio(s.audio),
		reveal.WithLogger(s.log),
	)
	if err != nil {
		return err
	}

	s.runID = uuid.New()
	s.result, s.player = res, player
	s.searching = true
	s.status.SetSearching(true)
	s.log.WithFields(logrus.Fields{
		"run":       s.runID.String(),
		"algorithm": alg.Key(),
		"visited":   len(res.Visited),
		"path":      len(res.Path),
		"found":     res.Found,
		"elapsed":   res.Elapsed,
	}).Info("search started")

	return nil
}

// CancelSearch discards the current result and reports "not searching".
func (s *Session) CancelSearch() {
	if s.result != nil {
		s.log.WithField("run", s.runID.String()).Debug("search cancelled")
	}
	s.result, s.player = nil, nil
	s.runID = uuid.Nil
	s.searching = false
	s.status.SetSearching(false)
}

// ClearGrid cancels any search and opens every non-endpoint cell.
func (s *Session) ClearGrid() {
	s.CancelSearch()
	s.grid.Clear()
}

// FillGrid cancels any search and fills every non-endpoint cell.
func (s *Session) FillGrid() {
	s.CancelSearch()
	s.grid.Fill()
}

// RandomizeGrid cancels any search and scatters obstacles. It returns the
// drawn coverage percentage.
func (s *Session) RandomizeGrid() (int, error) {
	s.CancelSearch()
	coverage, err := s.grid.Randomize(s.maxCoverage, s.rng)
	if err != nil {
		return 0, err
	}
	s.log.WithField("coverage", coverage).Debug("grid randomized")
	return coverage, nil
}

// Tick advances the reveal by the current speed. When the reveal finishes
// the status sink is told the search is over; the revealed state stays
// visible until the next edit or search.
func (s *Session) Tick() {
	if !s.searching || s.player == nil {
		return
	}
	if s.player.Tick(s.status.Speed()) {
		s.searching = false
		s.status.SetSearching(false)
		s.log.WithField("run", s.runID.String()).Info("search revealed")
	}
}

// Classes returns the class of every cell in row-major order as Draw would
// paint it, before the drag overlay.
func (s *Session) Classes() []TileClass {
	g := s.grid
	out := make([]TileClass, g.Size())
	for i := range out {
		c := g.Coordinate(i)
		switch s.editor.Kind(c) {
		case grid.Obstacle:
			out[i] = ClassObstacle
		case grid.Start:
			out[i] = ClassStart
		case grid.Finish:
			out[i] = ClassFinish
		default:
			out[i] = ClassOpen
			if s.hoverOver && c == s.hover {
				out[i] = ClassHovered
			}
		}
	}
	if s.player == nil {
		return out
	}
	for _, c := range s.player.Visible() {
		out[g.Index(c)] = ClassChecked
	}
	for _, c := range s.player.Path() {
		out[g.Index(c)] = ClassPath
	}
	return out
}

// Draw paints every cell, then the dragged endpoint on top.
func (s *Session) Draw(sink RenderSink) {
	for i, class := range s.Classes() {
		x, y, w, h := s.layout.Rect(s.grid.Coordinate(i))
		sink.DrawRect(x, y, w, h, class)
	}
	if kind, at, ok := s.editor.Dragged(); ok {
		class := ClassStart
		if kind == grid.Finish {
			class = ClassFinish
		}
		x, y, w, h := s.layout.Rect(at)
		sink.DrawRect(x, y, w, h, class)
	}
}
