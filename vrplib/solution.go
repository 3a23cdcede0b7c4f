package vrplib

import (
	"bufio"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/vrpkit/cvrp"
)

// Line patterns of the solution dialect. A line that matches neither is
// ignored, including near-misses such as "Cost abc".
var (
	routeLineRE = regexp.MustCompile(`^Route #(\d+):((?:\s+\d+)*)\s*$`)
	costLineRE  = regexp.MustCompile(`^Cost\s+(\S+)$`)
)

// ParseSolution extracts routes and the total cost from solution text.
//
// Every line of the form "Route #<k>: <ids>" yields one route in line
// order; the route number is read for matching only, never for
// ordering. The last "Cost <number>" line wins; when no such line
// exists, Cost is NaN and HasCost reports false. Routes list customers
// only, exactly as written; close them with cvrp.CloseRoutes.
//
// The only possible failure is an id too large for the int type, which
// surfaces as *ParseError.
//
// Complexity: O(len(text)) time, O(nodes) space.
func ParseSolution(text string) (*Solution, error) {
	sol := &Solution{Cost: math.NaN()}

	var lineNo int
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if m := routeLineRE.FindStringSubmatch(line); m != nil {
			ids := strings.Fields(m[2])
			route := make(cvrp.Route, 0, len(ids))
			for _, tok := range ids {
				id, err := strconv.Atoi(tok)
				if err != nil {
					return nil, &ParseError{Section: "Route", Line: lineNo, Token: tok, Err: err}
				}
				route = append(route, id)
			}
			sol.Routes = append(sol.Routes, route)

			continue
		}

		if m := costLineRE.FindStringSubmatch(line); m != nil {
			// A non-numeric value makes this a non-matching line, not an error.
			if c, err := strconv.ParseFloat(m[1], 64); err == nil {
				sol.Cost = c
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vrplib: scan solution text: %w", err)
	}

	return sol, nil
}
