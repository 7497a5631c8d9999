package special

import (
	"strconv"

	"github.com/glyphkit/pictograph/motion"
)

// FormatTurns renders a turns value in the canonical spelling used by
// turns-tuple strings: no trailing ".0" when integral ("1", not "1.0"),
// one decimal otherwise ("1.5").
func FormatTurns(t motion.Turns) string {
	return strconv.FormatFloat(float64(t), 'f', -1, 64)
}

// TurnsTuple renders the canonical "(b, r)" tuple for a frame, b and r
// being the blue and red turns. A missing motion contributes 0.
func TurnsTuple(p *motion.Pictograph) string {
	var blue, red motion.Turns
	if m := p.Motion(motion.Blue); m != nil {
		blue = m.Turns
	}
	if m := p.Motion(motion.Red); m != nil {
		red = m.Turns
	}
	return "(" + FormatTurns(blue) + ", " + FormatTurns(red) + ")"
}

// GroupFor selects the orientation group for a frame by comparing both
// motions' end-orientation layers. Any arrangement other than the four
// named ones (including missing motions) defaults to FromLayer1.
func GroupFor(p *motion.Pictograph) OrientationGroup {
	blue := p.Motion(motion.Blue)
	red := p.Motion(motion.Red)
	if blue == nil || red == nil {
		return FromLayer1
	}
	b, r := blue.EndOrientation.Layer(), red.EndOrientation.Layer()
	switch {
	case b == 1 && r == 1:
		return FromLayer1
	case b == 2 && r == 2:
		return FromLayer2
	case b == 1 && r == 2:
		return FromLayer3Blue1Red2
	default:
		return FromLayer3Blue2Red1
	}
}
