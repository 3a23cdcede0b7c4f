package builder

import (
	"fmt"

	"github.com/katalvlaran/vrpkit/cvrp"
)

// RandomInstance generates a CVRP instance with n customers plus the
// depot at node 0. All n+1 coordinates are uniform on the unit square;
// customer demands are uniform integers on the configured range and
// the depot demand is zero.
//
// Contract: n >= 1, otherwise ErrBadCustomerCount. The same seed and
// options reproduce the same instance.
//
// Complexity: O(n) time and space.
func RandomInstance(n int, opts ...Option) (*cvrp.Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCustomerCount, n)
	}

	var (
		cfg = newConfig(opts...)
		rng = rngFromSeed(cfg.seed)
		dim = n + 1
	)

	coords := make([]cvrp.Point, dim)
	for i := 0; i < dim; i++ {
		coords[i] = cvrp.Point{X: rng.Float64(), Y: rng.Float64()}
	}

	demands := make([]int, dim)
	for i := 1; i < dim; i++ {
		demands[i] = cfg.demandLo + rng.Intn(cfg.demandHi-cfg.demandLo+1)
	}

	return &cvrp.Instance{
		Name:           fmt.Sprintf("random-n%d", dim),
		Type:           "CVRP",
		Dimension:      dim,
		EdgeWeightType: "EUC_2D",
		Capacity:       cfg.capacity,
		NodeCoords:     coords,
		Demands:        demands,
		Depots:         []int{cvrp.Depot},
	}, nil
}
