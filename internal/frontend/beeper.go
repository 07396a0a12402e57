package frontend

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/katalvlaran/pathviz/internal/tone"
)

// maxVoices bounds how many cue players are kept alive at once.
const maxVoices = 16

// Beeper plays a synthesized cue per revealed cell.
type Beeper struct {
	ctx    *audio.Context
	volume func() int // 0..100
	voices []*audio.Player
	next   int
}

// NewBeeper opens the process-wide audio context. volume is read on every
// cue.
func NewBeeper(volume func() int) *Beeper {
	return &Beeper{
		ctx:    audio.NewContext(tone.SampleRate),
		volume: volume,
		voices: make([]*audio.Player, maxVoices),
	}
}

// Play starts a cue at the given pitch, replacing the oldest voice when all
// are in use.
func (b *Beeper) Play(pitch float64) {
	vol := b.volume()
	if vol <= 0 {
		return
	}
	pcm := tone.Beep(pitch, tone.CueDuration, tone.SampleRate)
	if pcm == nil {
		return
	}

	if old := b.voices[b.next]; old != nil {
		_ = old.Close()
	}
	p := b.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(float64(vol) / 100)
	p.Play()
	b.voices[b.next] = p
	b.next = (b.next + 1) % maxVoices
}
