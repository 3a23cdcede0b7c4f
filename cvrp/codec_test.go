package cvrp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpkit/builder"
	"github.com/katalvlaran/vrpkit/cvrp"
)

// TestFlattenRoutes_TwoRoutes verifies the shared-depot concatenation
// on the canonical two-route case.
func TestFlattenRoutes_TwoRoutes(t *testing.T) {
	routes := []cvrp.Route{{0, 1, 2, 0}, {0, 3, 0}}

	sol, err := cvrp.FlattenRoutes(routes)
	require.NoError(t, err)
	assert.Equal(t, cvrp.Solution{0, 1, 2, 0, 3, 0}, sol, "consecutive routes must share one depot marker")
}

// TestFlattenRoutes_SingleRoute verifies that one route flattens to itself.
func TestFlattenRoutes_SingleRoute(t *testing.T) {
	sol, err := cvrp.FlattenRoutes([]cvrp.Route{{0, 4, 7, 0}})
	require.NoError(t, err)
	assert.Equal(t, cvrp.Solution{0, 4, 7, 0}, sol)
}

// TestFlattenRoutes_EmptyInput verifies that no routes flatten to an
// empty solution without error.
func TestFlattenRoutes_EmptyInput(t *testing.T) {
	sol, err := cvrp.FlattenRoutes(nil)
	require.NoError(t, err)
	assert.Empty(t, sol)
}

// TestFlattenRoutes_NotClosed verifies the endpoint rule on both ends.
func TestFlattenRoutes_NotClosed(t *testing.T) {
	_, err := cvrp.FlattenRoutes([]cvrp.Route{{1, 2, 0}})
	assert.ErrorIs(t, err, cvrp.ErrRouteNotClosed, "missing leading depot must error")

	_, err = cvrp.FlattenRoutes([]cvrp.Route{{0, 1, 0}, {0, 2, 3}})
	assert.ErrorIs(t, err, cvrp.ErrRouteNotClosed, "missing trailing depot must error")
	assert.ErrorContains(t, err, "route 1", "error should name the offending route")
}

// TestFlattenRoutes_EmptyRoute verifies that a zero-length route is rejected.
func TestFlattenRoutes_EmptyRoute(t *testing.T) {
	_, err := cvrp.FlattenRoutes([]cvrp.Route{{0, 1, 0}, {}})
	assert.ErrorIs(t, err, cvrp.ErrEmptyRoute)
}

// TestSplitSolution_TwoRoutes verifies the inverse of the canonical case.
func TestSplitSolution_TwoRoutes(t *testing.T) {
	routes := cvrp.SplitSolution(cvrp.Solution{0, 1, 2, 0, 3, 0})
	assert.Equal(t, []cvrp.Route{{0, 1, 2, 0}, {0, 3, 0}}, routes)
}

// TestSplitSolution_DropsOpenTail verifies that a fragment without a
// closing depot is not emitted as a route.
func TestSplitSolution_DropsOpenTail(t *testing.T) {
	routes := cvrp.SplitSolution(cvrp.Solution{0, 1, 0, 3})
	assert.Equal(t, []cvrp.Route{{0, 1, 0}}, routes, "the open [0 3] tail must be dropped")
}

// TestSplitSolution_Empty verifies that an empty solution yields no routes.
func TestSplitSolution_Empty(t *testing.T) {
	assert.Nil(t, cvrp.SplitSolution(nil))
}

// TestRoundTrip_Fixed verifies split∘flatten == identity on hand-built
// route lists of several shapes.
func TestRoundTrip_Fixed(t *testing.T) {
	cases := [][]cvrp.Route{
		{{0, 1, 0}},
		{{0, 1, 2, 0}, {0, 3, 0}},
		{{0, 5, 0}, {0, 2, 4, 0}, {0, 1, 3, 6, 0}},
	}
	for _, routes := range cases {
		sol, err := cvrp.FlattenRoutes(routes)
		require.NoError(t, err)
		assert.Equal(t, routes, cvrp.SplitSolution(sol), "round trip must restore %v", routes)
	}
}

// TestRoundTrip_Random verifies the round-trip property on generated
// solutions across several seeds.
func TestRoundTrip_Random(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		sol, err := builder.RandomSolution(40, builder.WithSeed(seed))
		require.NoError(t, err)

		routes := cvrp.SplitSolution(sol)
		require.NoError(t, cvrp.ValidateRoutes(routes), "seed %d produced an invalid split", seed)

		back, err := cvrp.FlattenRoutes(routes)
		require.NoError(t, err)
		assert.Equal(t, sol, back, "seed %d must round-trip", seed)
	}
}

// TestCloseRoutes_WrapsAndCopies verifies the depot wrapping and that
// the caller's routes are left untouched.
func TestCloseRoutes_WrapsAndCopies(t *testing.T) {
	original := []cvrp.Route{{1, 2}, {3}}

	closed := cvrp.CloseRoutes(original)
	require.Len(t, closed, 2)
	assert.Equal(t, cvrp.Route{0, 1, 2, 0}, closed[0])
	assert.Equal(t, cvrp.Route{0, 3, 0}, closed[1])

	// Purity: the inputs keep their length and content.
	assert.Equal(t, []cvrp.Route{{1, 2}, {3}}, original, "inputs must not be mutated")

	closed[0][1] = 99
	assert.Equal(t, cvrp.Route{1, 2}, original[0], "outputs must not alias inputs")
}

// TestCloseRoutes_Nil verifies the nil pass-through.
func TestCloseRoutes_Nil(t *testing.T) {
	assert.Nil(t, cvrp.CloseRoutes(nil))
}

// TestValidateRoutes_Shapes covers the full shape invariant.
func TestValidateRoutes_Shapes(t *testing.T) {
	assert.NoError(t, cvrp.ValidateRoutes([]cvrp.Route{{0, 1, 0}, {0, 2, 3, 0}}))

	assert.ErrorIs(t, cvrp.ValidateRoutes(nil), cvrp.ErrNoRoutes)
	assert.ErrorIs(t, cvrp.ValidateRoutes([]cvrp.Route{{}}), cvrp.ErrEmptyRoute)
	assert.ErrorIs(t, cvrp.ValidateRoutes([]cvrp.Route{{0, 1, 2}}), cvrp.ErrRouteNotClosed)

	err := cvrp.ValidateRoutes([]cvrp.Route{{0, 1, 0, 2, 0}})
	assert.ErrorIs(t, err, cvrp.ErrDepotInside)
	assert.ErrorContains(t, err, "position 2")
}
