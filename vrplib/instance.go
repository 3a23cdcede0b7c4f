package vrplib

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vrpkit/cvrp"
)

// Section markers of the instance dialect.
const (
	markerCoords = "NODE_COORD_SECTION"
	markerDemand = "DEMAND_SECTION"
	markerDepot  = "DEPOT_SECTION"
	markerEOF    = "EOF"
)

// section is the scanner state: which line parser currently applies.
type section int

const (
	// secHeader: "KEY : value" lines before any section marker.
	secHeader section = iota
	// secCoords: "<id> <x> <y>" lines.
	secCoords
	// secDemand: "<id> <signed-integer>" lines.
	secDemand
	// secDepot: one depot id per line until a non-digit terminator.
	secDepot
	// secTrailer: after the depot terminator; stray header lines are
	// still honored, everything else is ignored.
	secTrailer
)

// sectionOf maps a marker line to the state it opens.
var sectionOf = map[string]section{
	markerCoords: secCoords,
	markerDemand: secDemand,
	markerDepot:  secDepot,
}

// ParseInstance extracts a cvrp.Instance from instance text in one
// forward scan. Header fields may appear in any order; each recognized
// section marker closes the previous section and opens its own. A
// marker that never appears leaves the corresponding field at its zero
// value; this is a partial parse, not a strict schema (run
// Instance.Validate for cross-field checks).
//
// Errors:
//   - *ParseError for a malformed numeric token inside a recognized
//     section or header.
//   - ErrDuplicateSection when a marker appears twice.
//
// Complexity: O(len(text)) time, O(nodes) space.
func ParseInstance(text string) (*cvrp.Instance, error) {
	var (
		inst   = new(cvrp.Instance)
		state  = secHeader
		seen   = make(map[string]bool, len(sectionOf))
		lineNo int
	)

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == markerEOF {
			break
		}

		// Section markers switch state regardless of the current one.
		if next, ok := sectionOf[line]; ok {
			if seen[line] {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateSection, line)
			}
			seen[line] = true
			state = next

			continue
		}

		var err error
		switch state {
		case secHeader, secTrailer:
			err = applyHeader(inst, line, lineNo)
		case secCoords:
			err = parseCoordLine(inst, line, lineNo)
		case secDemand:
			err = parseDemandLine(inst, line, lineNo)
		case secDepot:
			if done := parseDepotLine(inst, line); done {
				state = secTrailer
			}
		}
		if err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vrplib: scan instance text: %w", err)
	}

	return inst, nil
}

// applyHeader populates one "KEY : value" field. Unknown keys and
// lines without a colon are ignored; malformed integer values for the
// numeric keys are surfaced as *ParseError.
func applyHeader(inst *cvrp.Instance, line string, lineNo int) error {
	key, val, ok := strings.Cut(line, ":")
	if !ok {
		return nil
	}
	key = strings.TrimSpace(key)
	val = strings.TrimSpace(val)

	switch key {
	case "NAME":
		inst.Name = val
	case "COMMENT":
		inst.Comment = unquote(val)
	case "TYPE":
		inst.Type = val
	case "EDGE_WEIGHT_TYPE":
		inst.EdgeWeightType = val
	case "DIMENSION":
		n, err := strconv.Atoi(val)
		if err != nil {
			return &ParseError{Section: "DIMENSION", Line: lineNo, Token: val, Err: err}
		}
		inst.Dimension = n
	case "CAPACITY":
		n, err := strconv.Atoi(val)
		if err != nil {
			return &ParseError{Section: "CAPACITY", Line: lineNo, Token: val, Err: err}
		}
		inst.Capacity = n
	}

	return nil
}

// parseCoordLine collects one "<id> <x> <y>" line. The id column is
// checked for well-formedness and discarded: coordinates are indexed by
// position, which is what every downstream consumer assumes.
func parseCoordLine(inst *cvrp.Instance, line string, lineNo int) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return &ParseError{Section: markerCoords, Line: lineNo, Token: line, Err: errFieldCount}
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return &ParseError{Section: markerCoords, Line: lineNo, Token: fields[0], Err: err}
	}

	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return &ParseError{Section: markerCoords, Line: lineNo, Token: fields[1], Err: err}
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return &ParseError{Section: markerCoords, Line: lineNo, Token: fields[2], Err: err}
	}

	inst.NodeCoords = append(inst.NodeCoords, cvrp.Point{X: x, Y: y})

	return nil
}

// parseDemandLine collects one "<id> <signed-integer>" line, positional
// like the coordinates.
func parseDemandLine(inst *cvrp.Instance, line string, lineNo int) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return &ParseError{Section: markerDemand, Line: lineNo, Token: line, Err: errFieldCount}
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return &ParseError{Section: markerDemand, Line: lineNo, Token: fields[0], Err: err}
	}

	d, err := strconv.Atoi(fields[1])
	if err != nil {
		return &ParseError{Section: markerDemand, Line: lineNo, Token: fields[1], Err: err}
	}

	inst.Demands = append(inst.Demands, d)

	return nil
}

// parseDepotLine collects depot ids, converting the file's one-based
// convention to zero-based nodes. The first token that is not an
// unsigned integer (conventionally the -1 sentinel) terminates the
// section; done reports that the terminator was reached.
func parseDepotLine(inst *cvrp.Instance, line string) (done bool) {
	for _, tok := range strings.Fields(line) {
		id, err := strconv.Atoi(tok)
		if err != nil || id < 0 {
			return true
		}
		inst.Depots = append(inst.Depots, id-1)
	}

	return false
}

// unquote strips one pair of surrounding double quotes, the COMMENT
// convention; unquoted values pass through unchanged.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
