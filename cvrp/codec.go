package cvrp

import "fmt"

// FlattenRoutes concatenates depot-bounded routes into the flat shape.
// The first route is kept whole; every subsequent route contributes its
// nodes after the leading depot, so consecutive routes share a single
// depot marker.
//
// Contract:
//   - Every route must be non-empty and start and end at Depot
//     (ErrEmptyRoute / ErrRouteNotClosed, reported with the route position).
//   - An empty route list flattens to an empty solution.
//
// Complexity: O(total nodes) time and space.
func FlattenRoutes(routes []Route) (Solution, error) {
	if len(routes) == 0 {
		return nil, nil
	}

	var total int
	for i, r := range routes {
		if len(r) == 0 {
			return nil, fmt.Errorf("%w: route %d", ErrEmptyRoute, i)
		}
		if r[0] != Depot || r[len(r)-1] != Depot {
			return nil, fmt.Errorf("%w: route %d", ErrRouteNotClosed, i)
		}
		total += len(r)
	}

	sol := make(Solution, 0, total-(len(routes)-1))
	for i, r := range routes {
		if i == 0 {
			sol = append(sol, r...)
		} else {
			sol = append(sol, r[1:]...)
		}
	}

	return sol, nil
}

// SplitSolution cuts a flat solution back into depot-bounded routes.
// Scanning left to right, a depot occurrence with a non-empty
// accumulating route closes that route (the depot is appended), emits
// it, and opens the next route with the same depot. A trailing fragment
// without a closing depot is dropped.
//
// SplitSolution(FlattenRoutes(r)) == r for every valid route list r
// (non-empty interiors, depot-bounded, no interior depot).
//
// Complexity: O(len(sol)) time and space.
func SplitSolution(sol Solution) []Route {
	var (
		routes []Route
		route  Route
	)
	for _, node := range sol {
		if node == Depot && len(route) > 0 {
			route = append(route, Depot)
			routes = append(routes, route)
			route = Route{Depot}

			continue
		}
		route = append(route, node)
	}

	return routes
}

// CloseRoutes returns a new route list in which every input route is
// wrapped with a leading and a trailing depot. Inputs are copied, never
// aliased or mutated, so callers may keep using the originals.
//
// Complexity: O(total nodes) time and space.
func CloseRoutes(routes []Route) []Route {
	if routes == nil {
		return nil
	}

	closed := make([]Route, len(routes))
	for i, r := range routes {
		c := make(Route, 0, len(r)+2)
		c = append(c, Depot)
		c = append(c, r...)
		c = append(c, Depot)
		closed[i] = c
	}

	return closed
}

// ValidateRoutes checks the full route-shape invariant: at least one
// route, every route non-empty, depot-bounded, and free of interior
// depot visits. FlattenRoutes deliberately checks only the endpoint
// rule; callers that need the strict shape (plotting, feasibility
// pipelines) validate here first.
//
// Complexity: O(total nodes) time, O(1) space.
func ValidateRoutes(routes []Route) error {
	if len(routes) == 0 {
		return ErrNoRoutes
	}
	for i, r := range routes {
		if len(r) == 0 {
			return fmt.Errorf("%w: route %d", ErrEmptyRoute, i)
		}
		if r[0] != Depot || r[len(r)-1] != Depot {
			return fmt.Errorf("%w: route %d", ErrRouteNotClosed, i)
		}
		for j := 1; j < len(r)-1; j++ {
			if r[j] == Depot {
				return fmt.Errorf("%w: route %d, position %d", ErrDepotInside, i, j)
			}
		}
	}

	return nil
}
