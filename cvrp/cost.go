package cvrp

import (
	"fmt"
	"math"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting
// which solution is cheaper.
const roundScale = 1e9

// CostOptions configures the distance accumulation.
//
// Fields:
//   - RoundEdges — round every pairwise Euclidean distance to the
//     nearest integer before summing. This is the EUC_2D convention of
//     the TSPLIB/VRPLIB benchmark families; leave it false for plain
//     real-valued distances.
type CostOptions struct {
	RoundEdges bool
}

// DefaultCostOptions returns the plain real-valued distance mode.
func DefaultCostOptions() CostOptions {
	return CostOptions{RoundEdges: false}
}

// SolutionCost sums the Euclidean distances between consecutive nodes
// of a flat solution, looking coordinates up positionally in coords.
//
// Contract:
//   - sol must be non-empty (ErrEmptySolution).
//   - Every visited node must index into coords; violations wrap
//     ErrMissingCoord naming the node.
//   - The final sum is rounded to 1e-9 absolute precision.
//
// Complexity: O(len(sol)) time, O(1) space.
func SolutionCost(sol Solution, coords []Point, opts CostOptions) (float64, error) {
	if len(sol) == 0 {
		return 0, ErrEmptySolution
	}

	var (
		sum  float64
		d    float64
		u, v int
		i    int
	)
	for i = 0; i < len(sol)-1; i++ {
		u, v = sol[i], sol[i+1]
		if u < 0 || u >= len(coords) {
			return 0, fmt.Errorf("%w: node %d", ErrMissingCoord, u)
		}
		if v < 0 || v >= len(coords) {
			return 0, fmt.Errorf("%w: node %d", ErrMissingCoord, v)
		}

		d = euclid(coords[u], coords[v])
		if opts.RoundEdges {
			d = math.Round(d)
		}
		sum += d
	}

	return round1e9(sum), nil
}

// RoutesCost flattens a route list and sums its distances; a single
// route [0,a,0] therefore costs exactly twice the depot-to-a leg.
//
// Contract:
//   - routes must be non-empty (ErrNoRoutes).
//   - Each route must satisfy the FlattenRoutes endpoint rule.
//
// Complexity: O(total nodes) time, O(total nodes) space for the
// intermediate flat shape.
func RoutesCost(routes []Route, coords []Point, opts CostOptions) (float64, error) {
	if len(routes) == 0 {
		return 0, ErrNoRoutes
	}

	sol, err := FlattenRoutes(routes)
	if err != nil {
		return 0, err
	}

	return SolutionCost(sol, coords, opts)
}

// euclid returns the planar Euclidean distance between a and b.
//
// Complexity: O(1).
func euclid(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps costs stable across platforms without affecting which
// of two solutions wins a comparison.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
