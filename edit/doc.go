// Package edit translates pointer gestures into grid.Grid mutations.
//
// A Controller is a five-state machine:
//
//	Idle ──left on S──▶ DraggingStart  ──left up──▶ Idle (commit Start)
//	Idle ──left on F──▶ DraggingFinish ──left up──▶ Idle (commit Finish)
//	Idle ──left──────▶ PaintingAdd    ──left up──▶ Idle
//	Idle ──right─────▶ PaintingRemove ──right up─▶ Idle
//
// Painting modes exclude each other: a left press while removing and a right
// press while adding are ignored, as is a right press while dragging.
//
// While dragging, the lifted endpoint stays at its home cell in the Grid so
// the Grid keeps exactly one Start and one Finish; Kind reports that cell as
// Open and Dragged reports the pending coordinate for an overlay. The move is
// committed on release.
//
// Every transition out of Idle calls the cancel hook, which callers use to
// discard stale search results before the grid changes.
//
// Coordinates passed to a Controller must already be clamped to the grid.
package edit
