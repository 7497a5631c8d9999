// Package grid defines the Geometry value and the per-location offset and
// angle tables shared by the placement engine.
package grid

import (
	"github.com/glyphkit/pictograph/motion"
)

// diagonalUnit is the unit offset of a diagonal compass point along each
// axis. The literal keeps every diagonal point at Euclidean distance R
// from center to well under rendering precision; do not replace it with a
// computed square root, loaded override tables were tuned against it.
const diagonalUnit = 0.70710678

// Default canvas dimensions. The reference canvas is square; both radii
// were tuned against it and scale linearly with it.
const (
	// DefaultCenterX is the default canvas center abscissa.
	DefaultCenterX = 475.0
	// DefaultCenterY is the default canvas center ordinate.
	DefaultCenterY = 475.0
	// DefaultHandRadius is the default hand-level circle radius (static props).
	DefaultHandRadius = 151.5
	// DefaultPropRadius is the default prop-level circle radius (traveling props).
	DefaultPropRadius = 243.0
)

// unitOffsets places each compass point on the unit circle in screen
// coordinates: y decreases going north, N straight up, 45° steps.
var unitOffsets = map[motion.Location][2]float64{
	motion.N:  {0, -1},
	motion.NE: {diagonalUnit, -diagonalUnit},
	motion.E:  {1, 0},
	motion.SE: {diagonalUnit, diagonalUnit},
	motion.S:  {0, 1},
	motion.SW: {-diagonalUnit, diagonalUnit},
	motion.W:  {-1, 0},
	motion.NW: {-diagonalUnit, -diagonalUnit},
}

// standingAngles holds each location's standing angle in degrees,
// clockwise from north.
var standingAngles = map[motion.Location]float64{
	motion.N:  0,
	motion.NE: 45,
	motion.E:  90,
	motion.SE: 135,
	motion.S:  180,
	motion.SW: 225,
	motion.W:  270,
	motion.NW: 315,
}

// StandingAngle returns the location's standing angle in degrees,
// clockwise from north, in [0, 360).
func StandingAngle(l motion.Location) float64 {
	return standingAngles[l]
}

// Geometry is the canvas coordinate system: a center and the two
// concentric circle radii props stand on. It is an immutable value;
// construct one and share it freely.
type Geometry struct {
	// CenterX, CenterY locate the canvas center in screen coordinates.
	CenterX, CenterY float64

	// HandRadius is the circle static props stand on.
	HandRadius float64

	// PropRadius is the circle traveling props stand on.
	PropRadius float64
}

// DefaultGeometry returns the reference-canvas geometry.
func DefaultGeometry() Geometry {
	return Geometry{
		CenterX:    DefaultCenterX,
		CenterY:    DefaultCenterY,
		HandRadius: DefaultHandRadius,
		PropRadius: DefaultPropRadius,
	}
}

// Radius selects the circle for a motion type: hand-level for Static,
// prop-level for every traveling type.
// Complexity: O(1).
func (g Geometry) Radius(t motion.MotionType) float64 {
	if t == motion.Static {
		return g.HandRadius
	}
	return g.PropRadius
}

// BasePoint returns the canvas point for a motion type standing at l.
// Every location lies at exactly Radius(t) from center.
// Complexity: O(1).
func (g Geometry) BasePoint(t motion.MotionType, l motion.Location) (x, y float64) {
	r := g.Radius(t)
	off := unitOffsets[l]
	return g.CenterX + off[0]*r, g.CenterY + off[1]*r
}

// Center returns the canvas center point.
func (g Geometry) Center() (x, y float64) {
	return g.CenterX, g.CenterY
}
