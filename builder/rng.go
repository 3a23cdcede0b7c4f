package builder

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 selects defaultSeed; any other seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
