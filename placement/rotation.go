// SPDX-License-Identifier: MIT
// Package: pictograph/placement
//
// rotation.go - arrow rotation resolution (data-driven offset table).
//
// Purpose:
//   - A static arrow always points inward toward the grid center:
//     rotation = 180° − standing angle, normalized to [0, 360).
//   - A traveling arrow starts from its location's standing angle and the
//     rotation direction adds (clockwise) or subtracts (counter-clockwise)
//     a per-(motion type, location) offset; NoRotation yields the bare
//     standing angle.
//
// Contract:
//   - The offset table is data, not a formula. The legacy values were hand
//     tuned per location for edge-case letters upstream of this resolver;
//     keep the table explicit and edit it per cell, never collapse it into
//     a single constant.
//
// Determinism:
//   - Pure function of (motion, location); no state consulted.
package placement

import (
	"math"

	"github.com/glyphkit/pictograph/grid"
	"github.com/glyphkit/pictograph/motion"
)

// inwardBase is the rotation a static arrow would have at standing angle
// zero (compass north): pointing straight down toward the center.
const inwardBase = 180.0

// rotationOffsets holds the per-(motion type, location) rotation offset in
// degrees. Keep changes per-cell and append-only.
var rotationOffsets = map[motion.MotionType]map[motion.Location]float64{
	motion.Pro: {
		motion.N: 90, motion.NE: 90, motion.E: 90, motion.SE: 90,
		motion.S: 90, motion.SW: 90, motion.W: 90, motion.NW: 90,
	},
	motion.Anti: {
		motion.N: 90, motion.NE: 45, motion.E: 90, motion.SE: 45,
		motion.S: 90, motion.SW: 45, motion.W: 90, motion.NW: 45,
	},
	motion.Dash: {
		motion.N: 90, motion.NE: 135, motion.E: 90, motion.SE: 135,
		motion.S: 90, motion.SW: 135, motion.W: 90, motion.NW: 135,
	},
	motion.Float: {
		motion.N: 0, motion.NE: 0, motion.E: 0, motion.SE: 0,
		motion.S: 0, motion.SW: 0, motion.W: 0, motion.NW: 0,
	},
}

// ResolveRotation derives an arrow's rotation angle in degrees, in
// [0, 360), from its motion and resolved location.
// Complexity: O(1).
func ResolveRotation(m *motion.Motion, l motion.Location) float64 {
	angle := grid.StandingAngle(l)
	if m.Type == motion.Static {
		return normalizeDegrees(inwardBase - angle)
	}
	off := rotationOffsets[m.Type][l]
	switch m.Direction {
	case motion.Clockwise:
		angle += off
	case motion.CounterClockwise:
		angle -= off
	}
	return normalizeDegrees(angle)
}

// normalizeDegrees folds an angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
