package builder

import (
	"fmt"

	"github.com/katalvlaran/vrpkit/cvrp"
)

// RandomSolution generates a flat solution over an n-customer
// instance: the depot-wrapped tour [0, 1, ..., n, 0] with between 1
// and maxDepotInserts extra depot visits spliced into interior
// positions, splitting the tour into routes.
//
// Shape invariants on the result:
//   - starts and ends with the depot,
//   - every customer 1..n appears exactly once,
//   - no two adjacent depot visits, so no route is ever empty.
//
// When n is too small to host another non-adjacent visit the splicing
// stops early; n==1 always yields [0, 1, 0].
//
// Contract: n >= 1, otherwise ErrBadCustomerCount. The same seed and
// options reproduce the same solution.
//
// Complexity: O(n * maxDepotInserts) time, O(n) space.
func RandomSolution(n int, opts ...Option) (cvrp.Solution, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCustomerCount, n)
	}

	var (
		cfg = newConfig(opts...)
		rng = rngFromSeed(cfg.seed)
	)

	sol := make(cvrp.Solution, 0, n+2+maxDepotInserts)
	for node := 0; node <= n; node++ {
		sol = append(sol, node)
	}
	sol = append(sol, cvrp.Depot)

	inserts := 1 + rng.Intn(maxDepotInserts)
	for k := 0; k < inserts; k++ {
		pos := validInsertPositions(sol)
		if len(pos) == 0 {
			break
		}
		at := pos[rng.Intn(len(pos))]

		sol = append(sol, cvrp.Depot)
		copy(sol[at+1:], sol[at:])
		sol[at] = cvrp.Depot
	}

	return sol, nil
}

// validInsertPositions lists the indexes where a depot visit can be
// spliced in without touching an existing one. Inserting at index i
// places the new visit between sol[i-1] and sol[i].
func validInsertPositions(sol cvrp.Solution) []int {
	var pos []int
	for i := 1; i < len(sol); i++ {
		if sol[i-1] != cvrp.Depot && sol[i] != cvrp.Depot {
			pos = append(pos, i)
		}
	}

	return pos
}
