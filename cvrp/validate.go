package cvrp

import "fmt"

// Validate checks the cross-field invariants of a parsed or generated
// instance. Parsing is deliberately partial (absent sections leave zero
// fields), so validation is a separate, opt-in step; call it before
// trusting positional indexing downstream.
//
// Checked, for the fields that are present:
//   - DIMENSION agrees with the coordinate and demand section lengths,
//     and the two sections agree with each other.
//   - The depot's demand entry is zero.
//   - The depot list is exactly [Depot]: the positional model used by
//     the codec, the metrics and the generator hard-wires node 0 as the
//     depot, so any other depot list would be silently misread.
//
// Complexity: O(1) time, O(1) space.
func (in *Instance) Validate() error {
	if in == nil {
		return ErrNilInstance
	}

	if in.Dimension > 0 {
		if len(in.NodeCoords) > 0 && len(in.NodeCoords) != in.Dimension {
			return fmt.Errorf("%w: DIMENSION %d, %d coordinates",
				ErrDimensionMismatch, in.Dimension, len(in.NodeCoords))
		}
		if len(in.Demands) > 0 && len(in.Demands) != in.Dimension {
			return fmt.Errorf("%w: DIMENSION %d, %d demands",
				ErrDimensionMismatch, in.Dimension, len(in.Demands))
		}
	}
	if len(in.NodeCoords) > 0 && len(in.Demands) > 0 && len(in.NodeCoords) != len(in.Demands) {
		return fmt.Errorf("%w: %d coordinates, %d demands",
			ErrDimensionMismatch, len(in.NodeCoords), len(in.Demands))
	}

	if len(in.Demands) > 0 && in.Demands[Depot] != 0 {
		return fmt.Errorf("%w: demand %d", ErrDepotDemand, in.Demands[Depot])
	}

	if in.Depots != nil {
		if len(in.Depots) != 1 || in.Depots[0] != Depot {
			return fmt.Errorf("%w: got %v", ErrBadDepot, in.Depots)
		}
	}

	return nil
}
