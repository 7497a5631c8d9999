package placement_test

import (
	"testing"

	"github.com/glyphkit/pictograph/motion"
	"github.com/glyphkit/pictograph/placement"
	"github.com/stretchr/testify/assert"
)

// TestShouldMirror_TruthTable pins the verified cells of the mirror rule.
func TestShouldMirror_TruthTable(t *testing.T) {
	antiCW := motion.NewMotion(motion.Anti, motion.Clockwise, motion.N, motion.S, 1, motion.In)
	assert.True(t, placement.ShouldMirror(&antiCW))

	antiCCW := motion.NewMotion(motion.Anti, motion.CounterClockwise, motion.N, motion.S, 1, motion.In)
	assert.False(t, placement.ShouldMirror(&antiCCW))

	proCW := motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 1, motion.In)
	assert.False(t, placement.ShouldMirror(&proCW))
}

// TestShouldMirror_NilMotion never mirrors.
func TestShouldMirror_NilMotion(t *testing.T) {
	assert.False(t, placement.ShouldMirror(nil))
}

// TestShouldMirror_UnspecifiedCombinations default to false until the
// rule gains verified coverage.
func TestShouldMirror_UnspecifiedCombinations(t *testing.T) {
	for _, typ := range []motion.MotionType{motion.Static, motion.Pro, motion.Dash, motion.Float} {
		for _, dir := range []motion.RotationDirection{motion.NoRotation, motion.CounterClockwise} {
			m := motion.NewMotion(typ, dir, motion.N, motion.S, 0, motion.In)
			assert.False(t, placement.ShouldMirror(&m), "%s/%s", typ, dir)
		}
	}
}
