package grid

import (
	"fmt"
	"math/rand"
)

// Clear turns every non-endpoint cell Open.
// Complexity: O(R×C).
func (g *Grid) Clear() {
	g.fillNonEndpoints(Open)
}

// Fill turns every non-endpoint cell into an Obstacle.
// Complexity: O(R×C).
func (g *Grid) Fill() {
	g.fillNonEndpoints(Obstacle)
}

// Randomize clears the grid, draws a coverage percentage uniformly from
// [1, maxCoverage] and then turns each non-endpoint cell into an Obstacle
// independently with that probability. It returns the drawn coverage.
//
// Randomness comes only from rng; a nil rng uses NewRand(0). Two calls with
// identically seeded sources produce identical layouts.
//
// Returns ErrBadCoverage if maxCoverage is outside [1,100]; the grid is left
// untouched in that case.
// Complexity: O(R×C).
func (g *Grid) Randomize(maxCoverage int, rng *rand.Rand) (int, error) {
	if maxCoverage < 1 || maxCoverage > 100 {
		return 0, fmt.Errorf("%w: got %d", ErrBadCoverage, maxCoverage)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	g.Clear()

	coverage := rng.Intn(maxCoverage) + 1
	for i, k := range g.tiles {
		if k.Endpoint() {
			continue
		}
		// one draw per cell
		if rng.Intn(100) < coverage {
			g.tiles[i] = Obstacle
		}
	}

	return coverage, nil
}

func (g *Grid) fillNonEndpoints(kind TileKind) {
	for i, k := range g.tiles {
		if !k.Endpoint() {
			g.tiles[i] = kind
		}
	}
}
