package vrplib

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/vrpkit/cvrp"
)

// WriteInstance emits inst in the instance dialect ParseInstance reads:
// headers first, then the coordinate, demand and depot sections, then
// the EOF terminator. Only present fields are written, so a partial
// instance round-trips to the same partial instance. Node ids are
// one-based on output, mirroring the parser's conversion.
//
// Complexity: O(nodes) time and space.
func WriteInstance(w io.Writer, inst *cvrp.Instance) error {
	if inst == nil {
		return cvrp.ErrNilInstance
	}

	var b strings.Builder
	if inst.Name != "" {
		fmt.Fprintf(&b, "NAME : %s\n", inst.Name)
	}
	if inst.Comment != "" {
		fmt.Fprintf(&b, "COMMENT : \"%s\"\n", inst.Comment)
	}
	if inst.Type != "" {
		fmt.Fprintf(&b, "TYPE : %s\n", inst.Type)
	}
	if inst.Dimension > 0 {
		fmt.Fprintf(&b, "DIMENSION : %d\n", inst.Dimension)
	}
	if inst.EdgeWeightType != "" {
		fmt.Fprintf(&b, "EDGE_WEIGHT_TYPE : %s\n", inst.EdgeWeightType)
	}
	if inst.Capacity > 0 {
		fmt.Fprintf(&b, "CAPACITY : %d\n", inst.Capacity)
	}

	if len(inst.NodeCoords) > 0 {
		b.WriteString(markerCoords + "\n")
		for i, p := range inst.NodeCoords {
			fmt.Fprintf(&b, "%d %s %s\n", i+1, formatCoord(p.X), formatCoord(p.Y))
		}
	}
	if len(inst.Demands) > 0 {
		b.WriteString(markerDemand + "\n")
		for i, d := range inst.Demands {
			fmt.Fprintf(&b, "%d %d\n", i+1, d)
		}
	}
	if len(inst.Depots) > 0 {
		b.WriteString(markerDepot + "\n")
		for _, id := range inst.Depots {
			fmt.Fprintf(&b, "%d\n", id+1)
		}
		b.WriteString("-1\n")
	}
	b.WriteString(markerEOF + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("vrplib: write instance: %w", err)
	}

	return nil
}

// WriteSolution emits sol in the solution dialect ParseSolution reads:
// one "Route #<k>:" line per route (numbered from 1) and a final "Cost"
// line when the solution carries one.
//
// Complexity: O(nodes) time and space.
func WriteSolution(w io.Writer, sol *Solution) error {
	if sol == nil {
		return ErrNilSolution
	}

	var b strings.Builder
	for i, r := range sol.Routes {
		b.WriteString("Route #")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte(':')
		for _, node := range r {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(node))
		}
		b.WriteByte('\n')
	}
	if sol.HasCost() {
		fmt.Fprintf(&b, "Cost %s\n", formatCoord(sol.Cost))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("vrplib: write solution: %w", err)
	}

	return nil
}

// formatCoord renders a float with the shortest exact representation,
// so written values reparse to the same float64.
func formatCoord(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
