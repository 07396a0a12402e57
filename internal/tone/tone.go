// Package tone synthesizes the short cue played for each revealed cell.
//
// Output is 16-bit signed little-endian stereo PCM, the format ebiten's
// audio package plays from bytes.
package tone

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	// SampleRate is the rate the desktop audio context is opened with.
	SampleRate = 44100

	// BaseFrequency is the cue frequency at pitch 1.
	BaseFrequency = 440.0

	// CueDuration is the length of one cue.
	CueDuration = 60 * time.Millisecond

	bytesPerFrame = 4 // two channels × int16
	amplitude     = 0.3
)

// Beep returns a sine cue at BaseFrequency×pitch lasting d, with a linear
// fade-out so consecutive cues do not click. Non-positive pitch or duration
// yields nil.
func Beep(pitch float64, d time.Duration, sampleRate int) []byte {
	if !(pitch > 0) || d <= 0 || sampleRate <= 0 {
		return nil
	}
	frames := int(int64(sampleRate) * int64(d) / int64(time.Second))
	buf := make([]byte, frames*bytesPerFrame)
	step := 2 * math.Pi * BaseFrequency * pitch / float64(sampleRate)

	for i := 0; i < frames; i++ {
		fade := 1 - float64(i)/float64(frames)
		v := int16(math.Sin(step*float64(i)) * fade * amplitude * math.MaxInt16)
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint16(buf[off:], uint16(v))
		binary.LittleEndian.PutUint16(buf[off+2:], uint16(v))
	}
	return buf
}
