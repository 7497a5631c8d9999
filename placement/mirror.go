package placement

import "github.com/glyphkit/pictograph/motion"

// mirrorTable holds the verified mirror truth table. Combinations absent
// from the table render unmirrored; extending coverage to further letters
// is an additive data edit, never a formula change.
var mirrorTable = map[motion.MotionType]map[motion.RotationDirection]bool{
	motion.Anti: {
		motion.Clockwise:        true,
		motion.CounterClockwise: false,
	},
	motion.Pro: {
		motion.Clockwise: false,
	},
}

// ShouldMirror decides the left-right flip of a rendered arrow asset.
// A nil motion never mirrors.
// Complexity: O(1).
func ShouldMirror(m *motion.Motion) bool {
	if m == nil {
		return false
	}
	return mirrorTable[m.Type][m.Direction]
}
