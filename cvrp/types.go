package cvrp

import "errors"

// Depot is the distinguished start/end node of every route.
// The whole library assumes the depot is node 0; Instance.Validate
// checks that assumption when a depot list is present.
const Depot = 0

// Sentinel errors shared by the codec, the metrics and Validate.
var (
	// ErrEmptyRoute indicates a route with no nodes at all.
	ErrEmptyRoute = errors.New("cvrp: route must be non-empty")

	// ErrRouteNotClosed indicates a route whose first or last node is not the depot.
	ErrRouteNotClosed = errors.New("cvrp: route must start and end at the depot")

	// ErrDepotInside indicates a depot occurrence strictly inside a route.
	ErrDepotInside = errors.New("cvrp: depot must not appear inside a route")

	// ErrNoRoutes indicates an empty route list where at least one route is required.
	ErrNoRoutes = errors.New("cvrp: route list must contain at least one route")

	// ErrEmptySolution indicates a flat solution with no nodes.
	ErrEmptySolution = errors.New("cvrp: solution must contain at least one node")

	// ErrMissingCoord indicates a visited node outside the coordinate table.
	ErrMissingCoord = errors.New("cvrp: node has no coordinate")

	// ErrMissingDemand indicates a visited node absent from the demand table.
	ErrMissingDemand = errors.New("cvrp: node has no demand entry")

	// ErrNilInstance indicates a nil *Instance receiver or argument.
	ErrNilInstance = errors.New("cvrp: instance is nil")

	// ErrDimensionMismatch indicates DIMENSION disagrees with a section length.
	ErrDimensionMismatch = errors.New("cvrp: dimension does not match section length")

	// ErrDepotDemand indicates a non-zero demand recorded for the depot.
	ErrDepotDemand = errors.New("cvrp: depot demand must be zero")

	// ErrBadDepot indicates a depot list other than exactly [0].
	ErrBadDepot = errors.New("cvrp: depot list must be exactly node 0")
)

// Point is one planar node coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Route is one vehicle's visit sequence. A valid route begins and ends
// at Depot and never visits it in between; see ValidateRoutes.
type Route []int

// Solution is the flat solution shape: every maximal run between two
// depot occurrences is one route, with a single depot marker shared by
// consecutive routes and one at each end.
type Solution []int

// Instance is an in-memory CVRP problem, field-compatible with the
// VRPLIB instance format. A zero field means the corresponding section
// or header was absent from the source text; nothing here is validated
// at construction time (see Validate).
type Instance struct {
	// Name is the instance identifier, e.g. "X-n101-k25".
	Name string `json:"name,omitempty"`

	// Comment is free-form text carried by the COMMENT header.
	Comment string `json:"comment,omitempty"`

	// Type is the declared problem family, typically "CVRP".
	Type string `json:"type,omitempty"`

	// Dimension is the declared node count including the depot.
	Dimension int `json:"dimension,omitempty"`

	// EdgeWeightType names the distance convention, typically "EUC_2D".
	EdgeWeightType string `json:"edge_weight_type,omitempty"`

	// Capacity is the uniform vehicle capacity.
	Capacity int `json:"capacity,omitempty"`

	// NodeCoords lists coordinates in file order; index is the node id.
	NodeCoords []Point `json:"node_coords,omitempty"`

	// Demands lists per-node demands aligned with NodeCoords.
	Demands []int `json:"demands,omitempty"`

	// Depots lists zero-based depot nodes; nil when the section was absent.
	Depots []int `json:"depots,omitempty"`
}

// DemandTable returns the positional Demands as a node-keyed table,
// the shape RouteDemand and Feasible consume. Returns nil when the
// instance carries no demands.
//
// Complexity: O(n) time and space.
func (in *Instance) DemandTable() map[int]int {
	if in == nil || len(in.Demands) == 0 {
		return nil
	}
	table := make(map[int]int, len(in.Demands))
	for node, d := range in.Demands {
		table[node] = d
	}

	return table
}
