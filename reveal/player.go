package reveal

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// Sentinel errors for player construction.
var (
	// ErrNilResult is returned if NewPlayer is given a nil search.Result.
	ErrNilResult = errors.New("reveal: result is nil")

	// ErrBadThreshold is returned for a threshold that is not a finite
	// positive number.
	ErrBadThreshold = errors.New("reveal: threshold must be positive")
)

const (
	// DefaultThreshold is the accumulated speed needed per revealed cell.
	DefaultThreshold = 2.0

	// MinPitch and MaxPitch bound the audio cue pitch.
	MinPitch = 0.1
	MaxPitch = 4.0

	// epsilon absorbs float drift from repeated fractional speeds (0.1 steps).
	epsilon = 1e-9
)

// AudioSink plays a cue at the given pitch multiplier.
type AudioSink interface {
	Play(pitch float64)
}

// AudioFunc adapts a plain function to AudioSink.
type AudioFunc func(pitch float64)

// Play calls f(pitch).
func (f AudioFunc) Play(pitch float64) { f(pitch) }

type silent struct{}

func (silent) Play(float64) {}

// Option configures a Player.
type Option func(*Options)

// Options holds Player parameters.
type Options struct {
	Threshold float64
	Audio     AudioSink
	Logger    logrus.FieldLogger
}

// DefaultOptions returns threshold 2, a silent sink and a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{Threshold: DefaultThreshold, Audio: silent{}, Logger: l}
}

// WithThreshold sets the accumulated speed needed per revealed cell.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithAudio sets the sink receiving one cue per revealed cell.
func WithAudio(a AudioSink) Option {
	return func(o *Options) {
		if a != nil {
			o.Audio = a
		}
	}
}

// WithLogger sets the logger for completion events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Player discloses one search.Result incrementally. It is owned by the tick
// loop and is not safe for concurrent use.
type Player struct {
	visited   []grid.Coord
	path      []grid.Coord
	found     bool
	threshold float64
	audio     AudioSink
	log       logrus.FieldLogger

	revealed int
	acc      float64
	done     bool
}

// NewPlayer prepares a reveal of res. The result slices are read, never
// modified.
func NewPlayer(res *search.Result, opts ...Option) (*Player, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.Threshold > 0) || math.IsInf(o.Threshold, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadThreshold, o.Threshold)
	}

	return &Player{
		visited:   res.Visited,
		path:      res.Path,
		found:     res.Found,
		threshold: o.Threshold,
		audio:     o.Audio,
		log:       o.Logger,
	}, nil
}

// Tick advances the reveal by speed units and reports whether the reveal
// completed on this tick. It returns true exactly once; later ticks are
// no-ops returning false. Negative or NaN speed counts as 0.
//
// An empty Visited sequence completes on the first tick.
func (p *Player) Tick(speed float64) bool {
	if p.done {
		return false
	}
	if speed > 0 {
		p.acc += speed
	}

	total := len(p.visited)
	for p.revealed < total && p.acc+epsilon >= p.threshold {
		p.revealed++
		p.acc -= p.threshold
		p.audio.Play(Pitch(p.revealed, total))
	}
	if p.revealed < total {
		return false
	}

	p.done = true
	p.acc = 0
	p.log.WithFields(logrus.Fields{
		"revealed": total,
		"path":     len(p.path),
		"found":    p.found,
	}).Debug("reveal complete")
	return true
}

// Revealed returns how many visited cells have been disclosed.
func (p *Player) Revealed() int { return p.revealed }

// Total returns the number of visited cells to disclose.
func (p *Player) Total() int { return len(p.visited) }

// Visible returns the disclosed prefix of the visited sequence.
func (p *Player) Visible() []grid.Coord { return p.visited[:p.revealed] }

// Done reports whether the reveal has completed.
func (p *Player) Done() bool { return p.done }

// PathVisible reports whether the path should be drawn.
func (p *Player) PathVisible() bool { return p.done }

// Path returns the path once the reveal is complete, nil before.
func (p *Player) Path() []grid.Coord {
	if !p.done {
		return nil
	}
	return p.path
}

// Found reports whether the underlying search reached Finish.
func (p *Player) Found() bool { return p.found }

// Progress returns the disclosed fraction in [0,1]; 1 for an empty sequence.
func (p *Player) Progress() float64 {
	if len(p.visited) == 0 {
		return 1
	}
	return float64(p.revealed) / float64(len(p.visited))
}

// Pitch maps revealed/total linearly onto [MinPitch, MaxPitch]. The fraction
// is clamped to [0,1]; a non-positive total yields MaxPitch.
func Pitch(revealed, total int) float64 {
	frac := 1.0
	if total > 0 {
		frac = math.Min(1, math.Max(0, float64(revealed)/float64(total)))
	}
	return MinPitch + frac*(MaxPitch-MinPitch)
}
