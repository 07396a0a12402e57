// Package pathviz is an interactive shortest-path visualizer for 2-D grids:
// paint obstacles, drag the start and finish cells, pick breadth-first
// search or A*, and watch the expansion order unfold before the path
// appears.
//
// 🚀 What is in pathviz?
//
//	• Grid model: one Start, one Finish, obstacles; bulk clear/fill/randomize
//	• Search engine: BFS and A* with deterministic tie-breaking and hooks
//	• Reveal player: speed-paced disclosure of visited cells with audio cues
//	• Edit controller: paint/erase/drag state machine over pointer gestures
//	• Session: the per-window context object tying them together
//
// ✨ Binaries
//
//	cmd/pathviz         — desktop visualizer (ebiten)
//	cmd/pathviz-server  — JSON search service (gin)
//
// Packages:
//
//	grid/     — TileKind, Coord, Grid, ASCII parse/format
//	search/   — Run, RunBFS, RunAStar, Result
//	reveal/   — Player, Pitch, AudioSink
//	edit/     — Controller, Mode
//	session/  — Session, Layout, RenderSink, StatusSink, Event
//
// Quick start:
//
//	g := grid.MustParse(
//		"S.#.",
//		"..#F",
//		"....",
//	)
//	res, _ := search.Run(g, search.AStar)
//	fmt.Println(res.Found, res.Path)
//
// Settings are read from PATHVIZ_* environment variables and an optional
// .env file (see internal/config).
package pathviz
