package cvrp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vrpkit/cvrp"
)

// fullInstance returns a consistent four-node instance.
func fullInstance() *cvrp.Instance {
	return &cvrp.Instance{
		Name:           "toy-n4",
		Type:           "CVRP",
		Dimension:      4,
		EdgeWeightType: "EUC_2D",
		Capacity:       10,
		NodeCoords:     []cvrp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Demands:        []int{0, 3, 4, 2},
		Depots:         []int{0},
	}
}

// TestValidate_OK verifies that a consistent instance passes, as does a
// partial one with every optional field absent.
func TestValidate_OK(t *testing.T) {
	assert.NoError(t, fullInstance().Validate())
	assert.NoError(t, (&cvrp.Instance{Name: "headers-only"}).Validate())
}

// TestValidate_Nil verifies the nil-receiver sentinel.
func TestValidate_Nil(t *testing.T) {
	assert.ErrorIs(t, (*cvrp.Instance)(nil).Validate(), cvrp.ErrNilInstance)
}

// TestValidate_DimensionMismatch covers every length disagreement.
func TestValidate_DimensionMismatch(t *testing.T) {
	in := fullInstance()
	in.Dimension = 5
	err := in.Validate()
	assert.ErrorIs(t, err, cvrp.ErrDimensionMismatch)
	assert.ErrorContains(t, err, "DIMENSION 5")

	in = fullInstance()
	in.Demands = []int{0, 3}
	assert.ErrorIs(t, in.Validate(), cvrp.ErrDimensionMismatch)

	// Sections disagree even without a declared dimension.
	in = fullInstance()
	in.Dimension = 0
	in.Demands = []int{0, 3}
	assert.ErrorIs(t, in.Validate(), cvrp.ErrDimensionMismatch)
}

// TestValidate_DepotDemand verifies the zero-demand depot rule.
func TestValidate_DepotDemand(t *testing.T) {
	in := fullInstance()
	in.Demands[0] = 5
	assert.ErrorIs(t, in.Validate(), cvrp.ErrDepotDemand)
}

// TestValidate_BadDepot verifies that only the single depot node 0 is
// accepted when the section is present, while an absent section is fine.
func TestValidate_BadDepot(t *testing.T) {
	in := fullInstance()
	in.Depots = []int{1}
	assert.ErrorIs(t, in.Validate(), cvrp.ErrBadDepot)

	in.Depots = []int{0, 1}
	assert.ErrorIs(t, in.Validate(), cvrp.ErrBadDepot)

	in.Depots = nil
	assert.NoError(t, in.Validate(), "absent depot section is a partial parse, not an error")
}
