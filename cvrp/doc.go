// Package cvrp holds the core in-memory model for the Capacitated
// Vehicle Routing Problem: routes, flat solutions, instances, the codec
// between the two solution shapes, and the cost/demand/feasibility
// metrics computed over them.
//
// What:
//
//   - Route is one vehicle's visit sequence, depot-bounded on both ends.
//   - Solution is the flat shape: one sequence with a single depot
//     marker between consecutive routes and one at each end.
//   - Instance mirrors a VRPLIB problem file: coordinates, demands,
//     capacity and the depot list, all indexed positionally with the
//     depot at node 0.
//   - FlattenRoutes / SplitSolution convert losslessly between the two
//     solution shapes; CloseRoutes wraps open routes with the depot.
//   - SolutionCost / RoutesCost, RouteDemand and Feasible measure
//     solutions against an instance's coordinates, demands and capacity.
//
// Why:
//
//   - Solver output, benchmark files and plotting code each prefer a
//     different solution shape; the codec keeps them interchangeable.
//   - Feasibility and cost checks are the ground truth when comparing
//     solutions produced elsewhere.
//
// Shape discipline:
//
//   - Route and Solution are distinct named types, so every function
//     states which shape it takes; there is no runtime probing of
//     "nested or flat".
//   - Nothing here mutates its input; CloseRoutes returns fresh routes
//     and never aliases the caller's slices.
//
// Complexity:
//
//   - Every operation is a single pass: O(n) time over the nodes it
//     touches, allocation only for returned values.
//
// Errors (sentinel):
//
//   - ErrEmptyRoute, ErrRouteNotClosed, ErrDepotInside: invalid route shape.
//   - ErrNoRoutes, ErrEmptySolution: empty outer input where nodes are required.
//   - ErrMissingCoord, ErrMissingDemand: a visited node has no table entry.
//   - ErrNilInstance, ErrDimensionMismatch, ErrDepotDemand, ErrBadDepot:
//     instance-level invariant violations reported by Validate.
package cvrp
