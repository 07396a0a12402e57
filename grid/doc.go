// Package grid models a fixed-size 2D board of tiles for pathfinding.
//
// What:
//
//   - Grid holds an R×C row-major slice of TileKind: Open, Obstacle, Start, Finish.
//   - Exactly one Start and one Finish exist at all times; they never share a cell.
//   - Point mutators: SetObstacle, ClearObstacle, MoveStart, MoveFinish.
//   - Bulk mutators: Clear, Fill, Randomize (injectable *rand.Rand).
//   - ASCII round-trip (Parse / Lines) for fixtures and transport.
//
// Why:
//
//   - A single owner of tile state keeps the editor, the search engine and the
//     renderer free of duplicated bookkeeping.
//   - Rejected gestures (painting over an endpoint, dropping Start onto Finish)
//     are silent no-ops, matching interactive-editing ergonomics.
//
// Complexity:
//
//   - Point operations: O(1).
//   - Clear, Fill, Randomize, Clone, Parse: O(R×C).
//
// Errors:
//
//   - ErrBadDimensions:     New with rows or cols ≤ 0, or a 1×1 grid.
//   - ErrEmptyGrid:         Parse with no rows or an empty first row.
//   - ErrNonRectangular:    Parse with rows of differing lengths.
//   - ErrBadTile:           Parse with an unknown character.
//   - ErrMissingEndpoint:   Parse without S or F.
//   - ErrDuplicateEndpoint: Parse with two S or two F.
//   - ErrBadCoverage:       Randomize with maxCoverage outside [1,100].
//
// Coordinates outside the grid passed to a mutator are programming errors and
// panic; callers clamp first (see Clamp).
package grid
