package motion_test

import (
	"testing"

	"github.com/glyphkit/pictograph/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMotionType_String verifies the canonical lowercase spellings used
// inside placement keys and reference-data files.
func TestMotionType_String(t *testing.T) {
	assert.Equal(t, "static", motion.Static.String())
	assert.Equal(t, "pro", motion.Pro.String())
	assert.Equal(t, "anti", motion.Anti.String())
	assert.Equal(t, "dash", motion.Dash.String())
	assert.Equal(t, "float", motion.Float.String())
	assert.Equal(t, "unknown", motion.MotionType(99).String())
}

// TestOrientation_Layers verifies the radial/nonradial split: In/Out are
// layer 1, Clock/Counter are layer 2.
func TestOrientation_Layers(t *testing.T) {
	assert.True(t, motion.In.IsRadial())
	assert.True(t, motion.Out.IsRadial())
	assert.False(t, motion.Clock.IsRadial())
	assert.False(t, motion.Counter.IsRadial())

	assert.Equal(t, 1, motion.In.Layer())
	assert.Equal(t, 1, motion.Out.Layer())
	assert.Equal(t, 2, motion.Clock.Layer())
	assert.Equal(t, 2, motion.Counter.Layer())
}

// TestLocation_Diagonals verifies the cardinal/diagonal split that implies
// the grid mode.
func TestLocation_Diagonals(t *testing.T) {
	for _, l := range []motion.Location{motion.N, motion.E, motion.S, motion.W} {
		assert.False(t, l.IsDiagonal(), "cardinal %s must not be diagonal", l)
	}
	for _, l := range []motion.Location{motion.NE, motion.SE, motion.SW, motion.NW} {
		assert.True(t, l.IsDiagonal(), "diagonal %s must be diagonal", l)
	}
}

// TestTurns_IsValid verifies half-integer acceptance and rejection of
// negatives and off-grid values.
func TestTurns_IsValid(t *testing.T) {
	assert.True(t, motion.Turns(0).IsValid())
	assert.True(t, motion.Turns(0.5).IsValid())
	assert.True(t, motion.Turns(1).IsValid())
	assert.True(t, motion.Turns(2.5).IsValid())

	assert.False(t, motion.Turns(-0.5).IsValid())
	assert.False(t, motion.Turns(0.25).IsValid())
	assert.False(t, motion.Turns(1.1).IsValid())
}

// TestNewMotion_DerivesEndOrientation ensures the constructor never stores
// an orientation pair inconsistent with the parity rule.
func TestNewMotion_DerivesEndOrientation(t *testing.T) {
	m := motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 1, motion.In)
	assert.Equal(t, motion.DeriveEndOrientation(motion.Pro, 1, motion.Clockwise, motion.In), m.EndOrientation)
	assert.NoError(t, m.Validate())
}

// TestMotion_Validate walks each sentinel in turn.
func TestMotion_Validate(t *testing.T) {
	valid := motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 1, motion.In)
	require.NoError(t, valid.Validate())

	m := valid
	m.Type = motion.MotionType(42)
	assert.ErrorIs(t, m.Validate(), motion.ErrUnknownMotionType)

	m = valid
	m.Direction = motion.RotationDirection(42)
	assert.ErrorIs(t, m.Validate(), motion.ErrUnknownRotation)

	m = valid
	m.End = motion.Location(42)
	assert.ErrorIs(t, m.Validate(), motion.ErrUnknownLocation)

	m = valid
	m.Turns = 0.25
	assert.ErrorIs(t, m.Validate(), motion.ErrBadTurns)

	m = valid
	m.EndOrientation = m.EndOrientation + 1
	assert.ErrorIs(t, m.Validate(), motion.ErrOrientationDrift)
}
