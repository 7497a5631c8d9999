package motion_test

import (
	"testing"

	"github.com/glyphkit/pictograph/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPictograph_SlotsAlwaysExist verifies that both color slots are
// present on construction even though their motions are absent.
func TestNewPictograph_SlotsAlwaysExist(t *testing.T) {
	p := motion.NewPictograph("A")

	require.Contains(t, p.Arrows, motion.Blue)
	require.Contains(t, p.Arrows, motion.Red)
	assert.Nil(t, p.Motion(motion.Blue))
	assert.Nil(t, p.Motion(motion.Red))
	assert.Nil(t, p.Arrows[motion.Blue].Motion)
}

// TestPictograph_SetMotion wires the motion into both the slot and its arrow.
func TestPictograph_SetMotion(t *testing.T) {
	p := motion.NewPictograph("A")
	m := motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 1, motion.In)

	p.SetMotion(motion.Blue, m)

	require.NotNil(t, p.Motion(motion.Blue))
	assert.Equal(t, m, *p.Motion(motion.Blue))
	require.NotNil(t, p.Arrows[motion.Blue].Motion)
	assert.Equal(t, m, *p.Arrows[motion.Blue].Motion)
}

// TestPictograph_GridMode derives Diamond for cardinal frames, Box for
// all-diagonal frames, and Diamond for empty or mixed frames.
func TestPictograph_GridMode(t *testing.T) {
	empty := motion.NewPictograph("")
	assert.Equal(t, motion.Diamond, empty.GridMode(), "empty frame defaults to diamond")

	diamond := motion.NewPictograph("A")
	diamond.SetMotion(motion.Blue, motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 1, motion.In))
	diamond.SetMotion(motion.Red, motion.NewMotion(motion.Anti, motion.CounterClockwise, motion.E, motion.W, 0, motion.Out))
	assert.Equal(t, motion.Diamond, diamond.GridMode())

	box := motion.NewPictograph("A")
	box.SetMotion(motion.Blue, motion.NewMotion(motion.Dash, motion.NoRotation, motion.NE, motion.SW, 0, motion.In))
	box.SetMotion(motion.Red, motion.NewMotion(motion.Static, motion.NoRotation, motion.NW, motion.NW, 0, motion.Out))
	assert.Equal(t, motion.Box, box.GridMode())

	mixed := motion.NewPictograph("A")
	mixed.SetMotion(motion.Blue, motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.SE, 1, motion.In))
	assert.Equal(t, motion.Diamond, mixed.GridMode(), "mixed locations fall back to diamond")
}

// TestPictograph_Validate surfaces the first invalid motion.
func TestPictograph_Validate(t *testing.T) {
	p := motion.NewPictograph("A")
	require.NoError(t, p.Validate())

	bad := motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 1, motion.In)
	bad.Turns = 0.3
	p.Motions[motion.Red] = &bad
	assert.ErrorIs(t, p.Validate(), motion.ErrBadTurns)
}
