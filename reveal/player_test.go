package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// resultOf builds a Result with n visited cells and a two-cell path.
func resultOf(n int) *search.Result {
	res := &search.Result{Found: true, Path: []grid.Coord{{Row: 9, Col: 0}, {Row: 9, Col: 1}}}
	for i := 0; i < n; i++ {
		res.Visited = append(res.Visited, grid.Coord{Row: 0, Col: i})
	}
	return res
}

// ticksToFinish runs Tick until completion and returns the tick count.
func ticksToFinish(t *testing.T, p *Player, speed float64) int {
	t.Helper()
	for tick := 1; tick <= 100000; tick++ {
		if p.Tick(speed) {
			return tick
		}
	}
	t.Fatalf("reveal never completed at speed %v", speed)
	return -1
}

func TestNewPlayer_Errors(t *testing.T) {
	_, err := NewPlayer(nil)
	require.ErrorIs(t, err, ErrNilResult)

	for _, th := range []float64{0, -1} {
		_, err = NewPlayer(resultOf(1), WithThreshold(th))
		require.ErrorIs(t, err, ErrBadThreshold, "threshold %v", th)
	}
}

func TestTick_EmptyCompletesImmediately(t *testing.T) {
	p, err := NewPlayer(&search.Result{Found: true})
	require.NoError(t, err)

	require.True(t, p.Tick(0), "first tick completes even at zero speed")
	require.True(t, p.Done())
	require.True(t, p.PathVisible())
	require.Equal(t, 1.0, p.Progress())
	require.False(t, p.Tick(1), "completion is signalled once")
}

func TestTick_CompletionSignalledOnce(t *testing.T) {
	p, err := NewPlayer(resultOf(3))
	require.NoError(t, err)

	var signals int
	for i := 0; i < 20; i++ {
		if p.Tick(1) {
			signals++
		}
	}
	require.Equal(t, 1, signals)
	require.Equal(t, 3, p.Revealed())
	require.Len(t, p.Path(), 2)
}

func TestTick_PathHiddenUntilDone(t *testing.T) {
	p, err := NewPlayer(resultOf(2))
	require.NoError(t, err)

	require.False(t, p.Tick(2))
	require.Equal(t, 1, p.Revealed())
	require.Equal(t, []grid.Coord{{Row: 0, Col: 0}}, p.Visible())
	require.Nil(t, p.Path())
	require.False(t, p.PathVisible())
	require.InDelta(t, 0.5, p.Progress(), 1e-12)

	require.True(t, p.Tick(2))
	require.Len(t, p.Visible(), 2)
	require.True(t, p.PathVisible())
	require.True(t, p.Found())
}

func TestTick_NegativeSpeedIsZero(t *testing.T) {
	p, err := NewPlayer(resultOf(1))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.False(t, p.Tick(-5))
	}
	require.Zero(t, p.Revealed())
	require.False(t, p.Tick(1))
	require.True(t, p.Tick(1))
}

func TestTick_FastSpeedRevealsSeveralPerTick(t *testing.T) {
	var pitches []float64
	p, err := NewPlayer(resultOf(4), WithAudio(AudioFunc(func(x float64) {
		pitches = append(pitches, x)
	})))
	require.NoError(t, err)

	require.False(t, p.Tick(5)) // 2 cells, 1 carried
	require.Equal(t, 2, p.Revealed())
	require.True(t, p.Tick(3)) // 4 accumulated → 2 more
	require.Equal(t, []float64{Pitch(1, 4), Pitch(2, 4), Pitch(3, 4), Pitch(4, 4)}, pitches)
}

// TestTick_TickCount checks ceil(N·T/S) ticks for a spread of N and S.
// Speeds are expressed in tenths so the expected count is computed exactly.
func TestTick_TickCount(t *testing.T) {
	for _, th := range []int{1, 2, 3} {
		for _, n := range []int{1, 2, 7, 50} {
			for tenths := 1; tenths <= 30; tenths++ {
				p, err := NewPlayer(resultOf(n), WithThreshold(float64(th)))
				require.NoError(t, err)

				num := n * th * 10
				want := (num + tenths - 1) / tenths
				got := ticksToFinish(t, p, float64(tenths)/10)
				assert.Equal(t, want, got, "N=%d T=%d S=%.1f", n, th, float64(tenths)/10)
			}
		}
	}
}

func TestPitch(t *testing.T) {
	assert.InDelta(t, MinPitch, Pitch(0, 10), 1e-12)
	assert.InDelta(t, MaxPitch, Pitch(10, 10), 1e-12)
	assert.InDelta(t, 0.1+0.5*3.9, Pitch(5, 10), 1e-12)
	assert.InDelta(t, MaxPitch, Pitch(20, 10), 1e-12, "clamped")
	assert.InDelta(t, MaxPitch, Pitch(0, 0), 1e-12)
}
