package special_test

import (
	"testing"

	"github.com/glyphkit/pictograph/motion"
	"github.com/glyphkit/pictograph/special"
	"github.com/stretchr/testify/assert"
)

// TestFormatTurns pins the canonical turns spelling: integral values drop
// the trailing ".0", half values keep one decimal.
func TestFormatTurns(t *testing.T) {
	assert.Equal(t, "0", special.FormatTurns(0))
	assert.Equal(t, "1", special.FormatTurns(1.0))
	assert.Equal(t, "1.5", special.FormatTurns(1.5))
	assert.Equal(t, "0.5", special.FormatTurns(0.5))
	assert.Equal(t, "2", special.FormatTurns(2))
	assert.Equal(t, "2.5", special.FormatTurns(2.5))
}

// TestTurnsTuple renders "(b, r)" with missing motions contributing 0.
func TestTurnsTuple(t *testing.T) {
	p := motion.NewPictograph("A")
	assert.Equal(t, "(0, 0)", special.TurnsTuple(p), "empty frame")

	p.SetMotion(motion.Blue, motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 1, motion.In))
	assert.Equal(t, "(1, 0)", special.TurnsTuple(p), "red slot still empty")

	p.SetMotion(motion.Red, motion.NewMotion(motion.Anti, motion.CounterClockwise, motion.E, motion.W, 1.5, motion.Out))
	assert.Equal(t, "(1, 1.5)", special.TurnsTuple(p))
}

// TestGroupFor covers all four named layer arrangements plus the
// missing-motion default.
func TestGroupFor(t *testing.T) {
	radial := func(c motion.Color, p *motion.Pictograph) {
		p.SetMotion(c, motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 0, motion.In))
	}
	nonradial := func(c motion.Color, p *motion.Pictograph) {
		p.SetMotion(c, motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 0, motion.Clock))
	}

	p := motion.NewPictograph("")
	radial(motion.Blue, p)
	radial(motion.Red, p)
	assert.Equal(t, special.FromLayer1, special.GroupFor(p))

	p = motion.NewPictograph("")
	nonradial(motion.Blue, p)
	nonradial(motion.Red, p)
	assert.Equal(t, special.FromLayer2, special.GroupFor(p))

	p = motion.NewPictograph("")
	radial(motion.Blue, p)
	nonradial(motion.Red, p)
	assert.Equal(t, special.FromLayer3Blue1Red2, special.GroupFor(p))

	p = motion.NewPictograph("")
	nonradial(motion.Blue, p)
	radial(motion.Red, p)
	assert.Equal(t, special.FromLayer3Blue2Red1, special.GroupFor(p))

	p = motion.NewPictograph("")
	radial(motion.Blue, p)
	assert.Equal(t, special.FromLayer1, special.GroupFor(p), "missing motion defaults to layer1")
}
