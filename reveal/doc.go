// Package reveal paces the disclosure of a search.Result for visualization.
//
// What
//
//	A Player walks through Result.Visited one cell at a time as reveal-speed
//	units accumulate, emits an audio cue per revealed cell and, once every
//	visited cell is out, exposes the path.
//
// Timing
//
//	Each Tick adds speed to an accumulator. While the accumulator holds at
//	least one threshold and cells remain, one cell is revealed and one
//	threshold is subtracted. The remainder carries over, so with N visited
//	cells, constant speed S and threshold T the reveal completes on tick
//	ceil(N·T/S).
//
// Pitch
//
//	Pitch(revealed, total) maps revealed/total ∈ [0,1] linearly onto
//	[MinPitch, MaxPitch] = [0.1, 4.0].
//
// Errors
//
//   - ErrNilResult     if NewPlayer is given a nil result.
//   - ErrBadThreshold  if the threshold is not a positive finite number.
package reveal
