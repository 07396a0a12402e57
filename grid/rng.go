package grid

import (
	"math/rand"
	"time"
)

// NewRand returns a *rand.Rand for Randomize.
// Policy: seed==0 ⇒ seeded from the wall clock (interactive use); any other
// seed is used verbatim so tests and API callers get reproducible layouts.
//
// math/rand.Rand is not goroutine-safe; do not share the result across goroutines.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
