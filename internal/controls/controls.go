// Package controls holds the control-surface state of the desktop app: the
// selected algorithm, reveal speed, volume and the searching flag. It
// implements session.StatusSink and has no rendering dependencies.
package controls

import (
	"fmt"

	"github.com/katalvlaran/pathviz/search"
)

// Speed is kept in tenths so repeated steps never drift.
const (
	MaxSpeedTenths     = 20  // 2.0 per tick
	DefaultSpeedTenths = 10  // 1.0 per tick
	MaxVolume          = 100 // percent
	DefaultVolume      = 50  // percent
	VolumeStep         = 5   // percent per StepVolume step
)

// Controls is the desktop control surface.
type Controls struct {
	alg         search.Algorithm
	speedTenths int
	volume      int
	searching   bool
}

// New returns controls with alg selected, speed 1.0 and volume 50.
func New(alg search.Algorithm) *Controls {
	return &Controls{alg: alg, speedTenths: DefaultSpeedTenths, volume: DefaultVolume}
}

// SetSearching records whether a search is running.
func (c *Controls) SetSearching(on bool) { c.searching = on }

// Searching reports the last value passed to SetSearching.
func (c *Controls) Searching() bool { return c.searching }

// Algorithm returns the selected algorithm.
func (c *Controls) Algorithm() search.Algorithm { return c.alg }

// Speed returns the reveal speed in [0, 2].
func (c *Controls) Speed() float64 { return float64(c.speedTenths) / 10 }

// Volume returns the cue volume in [0, 100].
func (c *Controls) Volume() int { return c.volume }

// CycleAlgorithm selects the next algorithm.
func (c *Controls) CycleAlgorithm() { c.alg = c.alg.Next() }

// StepSpeed moves the speed by steps tenths, clamped to [0, 2].
func (c *Controls) StepSpeed(steps int) {
	c.speedTenths = clamp(c.speedTenths+steps, 0, MaxSpeedTenths)
}

// StepVolume moves the volume by steps×VolumeStep, clamped to [0, 100].
func (c *Controls) StepVolume(steps int) {
	c.volume = clamp(c.volume+steps*VolumeStep, 0, MaxVolume)
}

// Lines returns the HUD text.
func (c *Controls) Lines() []string {
	state := "Enter: start search"
	if c.searching {
		state = "Searching... Enter: stop"
	}
	return []string{
		fmt.Sprintf("Algorithm: %s  [Tab]", c.alg),
		fmt.Sprintf("Speed: %.1f  [Up/Down]", c.Speed()),
		fmt.Sprintf("Volume: %d  [Left/Right]", c.volume),
		"C: clear  F: fill  R: randomize  Esc: quit",
		state,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
