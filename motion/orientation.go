package motion

// DeriveEndOrientation — orientation parity
//
// Description:
//
//	A prop's facing at the end of a motion is a pure function of its
//	facing at the start, the motion type, the rotation direction, and the
//	turns count. Whether the orientation *switches* at all depends only on
//	(motion type, turns); the rotation direction merely selects which
//	orientation inside the target layer is reached on half turns.
//
// Rule outline:
//  1. Whole turns (0, 1, 2, ...): the orientation stays within its layer.
//     Pro and Static keep the start orientation on even turn counts and
//     flip it within the layer (In↔Out, Clock↔Counter) on odd counts;
//     Anti, Dash, and Float do the reverse.
//  2. Half turns (0.5, 1.5, ...): the orientation crosses layers
//     (radial↔nonradial). The landing orientation follows the rotation
//     direction; Anti and Dash land on the opposite tangent/radius from
//     Pro, Static, and Float. NoRotation uses the clockwise mapping.
//
// Determinism: pure function; no state consulted.
// Complexity: O(1).
func DeriveEndOrientation(t MotionType, turns Turns, dir RotationDirection, start Orientation) Orientation {
	steps := turns.halfSteps()
	if steps%2 == 0 {
		// Whole number of turns: stay in the same layer.
		flips := baseFlip(t) + (steps/2)%2
		if flips%2 == 0 {
			return start
		}
		return start.opposite()
	}
	// Half turn: cross layers.
	target := crossLayer(start, dir)
	if t == Anti || t == Dash {
		target = target.opposite()
	}
	return target
}

// baseFlip returns 1 for motion types that switch orientation on an even
// whole-turn count and 0 for those that keep it.
func baseFlip(t MotionType) int {
	switch t {
	case Anti, Dash, Float:
		return 1
	default:
		return 0
	}
}

// crossLayer maps an orientation onto the other layer for a half-turn
// motion, following the rotation direction. NoRotation defaults to the
// clockwise mapping.
func crossLayer(o Orientation, dir RotationDirection) Orientation {
	cw := dir != CounterClockwise
	switch o {
	case In:
		if cw {
			return Clock
		}
		return Counter
	case Out:
		if cw {
			return Counter
		}
		return Clock
	case Clock:
		if cw {
			return Out
		}
		return In
	default: // Counter
		if cw {
			return In
		}
		return Out
	}
}
