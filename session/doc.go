// Package session is the per-window context object: it owns one grid.Grid,
// its edit.Controller, the current search.Result and its reveal.Player, and
// drives them from adapter events once per tick.
//
// What
//
//   - HandleEvent routes pointer events through a Layout into the editor.
//   - ToggleSearch / StartSearch / CancelSearch run and discard searches.
//   - ClearGrid, FillGrid and RandomizeGrid cancel, then apply the bulk edit.
//   - Tick advances the reveal at the StatusSink's speed.
//   - Draw emits one rectangle per cell plus the drag overlay to a RenderSink.
//
// Adapters
//
//	RenderSink, StatusSink and reveal.AudioSink are the only ways a Session
//	talks to the outside. internal/frontend implements them with ebiten;
//	tests use recorders.
//
// A Session is single-threaded: the owner calls HandleEvent, Tick and Draw
// from one loop.
package session
