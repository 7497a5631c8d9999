package placement

import (
	"math"

	"github.com/glyphkit/pictograph/grid"
	"github.com/glyphkit/pictograph/motion"
)

// Pictograph property inspection: stateless boolean queries over a frame,
// used only by key generation. An absent motion contributes "neither" to
// every query, so a frame with an empty slot answers false throughout.

// endPair returns both motions when both slots are filled.
func endPair(p *motion.Pictograph) (blue, red *motion.Motion, ok bool) {
	blue, red = p.Motion(motion.Blue), p.Motion(motion.Red)
	return blue, red, blue != nil && red != nil
}

// endSeparation returns the absolute angular separation of the two end
// locations in degrees, folded into [0, 360).
func endSeparation(blue, red *motion.Motion) float64 {
	diff := grid.StandingAngle(blue.End) - grid.StandingAngle(red.End)
	return math.Mod(math.Abs(diff), 360)
}

// EndsWithAlpha reports whether the two motions end at opposed compass
// points (180° apart). Mutually exclusive with beta and gamma.
func EndsWithAlpha(p *motion.Pictograph) bool {
	blue, red, ok := endPair(p)
	return ok && endSeparation(blue, red) == 180
}

// EndsWithBeta reports whether the two motions end at the same compass
// point. Mutually exclusive with alpha and gamma.
func EndsWithBeta(p *motion.Pictograph) bool {
	blue, red, ok := endPair(p)
	return ok && endSeparation(blue, red) == 0
}

// EndsWithGamma reports whether the two motions end a quarter apart
// (90° or 270° separation). Mutually exclusive with alpha and beta.
func EndsWithGamma(p *motion.Pictograph) bool {
	blue, red, ok := endPair(p)
	if !ok {
		return false
	}
	sep := endSeparation(blue, red)
	return sep == 90 || sep == 270
}

// EndsWithRadialOrientation reports whether both motions end radial
// (In/Out). Mutually exclusive with EndsWithNonradialOrientation.
func EndsWithRadialOrientation(p *motion.Pictograph) bool {
	blue, red, ok := endPair(p)
	return ok && blue.EndOrientation.IsRadial() && red.EndOrientation.IsRadial()
}

// EndsWithNonradialOrientation reports whether both motions end nonradial
// (Clock/Counter).
func EndsWithNonradialOrientation(p *motion.Pictograph) bool {
	blue, red, ok := endPair(p)
	return ok && !blue.EndOrientation.IsRadial() && !red.EndOrientation.IsRadial()
}

// EndsWithHybridLayer reports whether one motion ends radial and the other
// nonradial simultaneously ("layer 3").
func EndsWithHybridLayer(p *motion.Pictograph) bool {
	blue, red, ok := endPair(p)
	return ok && blue.EndOrientation.IsRadial() != red.EndOrientation.IsRadial()
}
