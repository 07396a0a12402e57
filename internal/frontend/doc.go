// Package frontend runs a session.Session in an ebiten window.
//
// It supplies the session's adapters: a RenderSink drawing filled
// rectangles, a reveal.AudioSink playing synthesized cues, pointer polling
// into session events, and the keyboard bindings of the control surface:
//
//	Enter        start / stop the search
//	Tab          next algorithm
//	Up / Down    reveal speed ±0.1
//	Left / Right volume ±5
//	C / F / R    clear, fill, randomize the grid
//	Esc          quit
package frontend
