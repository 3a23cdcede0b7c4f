package cvrp

import "fmt"

// RouteDemand sums the demand of every node a route visits, depot
// included (the depot contributes 0 on any valid instance).
//
// Contract:
//   - Every visited node must have a demand entry; violations wrap
//     ErrMissingDemand naming the node instead of failing silently.
//
// Complexity: O(len(r)) time, O(1) space.
func RouteDemand(r Route, demands map[int]int) (int, error) {
	var total int
	for _, node := range r {
		d, ok := demands[node]
		if !ok {
			return 0, fmt.Errorf("%w: node %d", ErrMissingDemand, node)
		}
		total += d
	}

	return total, nil
}

// Feasible reports whether routes form a valid solution for the given
// demand table and vehicle capacity. It is a single boolean verdict
// covering both checks, with no partial-failure reporting:
//
//   - Coverage: every demand-table node is visited, every customer
//     exactly once, and no route visits a node outside the table.
//     Missing, duplicated and unknown nodes all fail this check.
//   - Capacity: every route's total demand is at most capacity.
//
// Complexity: O(total nodes + len(demands)) time, O(len(demands)) space.
func Feasible(routes []Route, demands map[int]int, capacity int) bool {
	// Coverage first: count visits per node across all routes.
	visits := make(map[int]int, len(demands))
	for _, r := range routes {
		for _, node := range r {
			visits[node]++
		}
	}
	for node := range demands {
		if node == Depot {
			if visits[node] == 0 {
				return false
			}

			continue
		}
		if visits[node] != 1 {
			return false
		}
	}
	for node := range visits {
		if _, ok := demands[node]; !ok {
			return false
		}
	}

	// Capacity per route.
	for _, r := range routes {
		total, err := RouteDemand(r, demands)
		if err != nil || total > capacity {
			return false
		}
	}

	return true
}
