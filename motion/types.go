// Package motion declares the closed enumerations shared across the engine,
// the Motion value object, and the validation sentinels.
//
// This file declares MotionType, RotationDirection, Orientation, Location,
// GridMode, Color, Turns, Motion, sentinel errors, and the NewMotion
// constructor.
//
// Errors:
//
//	ErrUnknownMotionType  - motion type outside the closed set.
//	ErrUnknownRotation    - rotation direction outside the closed set.
//	ErrUnknownOrientation - orientation outside the closed set.
//	ErrUnknownLocation    - location outside the 8-point compass.
//	ErrBadTurns           - turns negative or not a half-integer multiple.
//	ErrOrientationDrift   - stored end orientation disagrees with the one
//	                        derivable from (start, type, direction, turns).
package motion

import (
	"errors"
	"math"
)

// Sentinel errors for domain-model validation.
var (
	// ErrUnknownMotionType indicates a MotionType outside the closed set.
	ErrUnknownMotionType = errors.New("motion: unknown motion type")

	// ErrUnknownRotation indicates a RotationDirection outside the closed set.
	ErrUnknownRotation = errors.New("motion: unknown rotation direction")

	// ErrUnknownOrientation indicates an Orientation outside the closed set.
	ErrUnknownOrientation = errors.New("motion: unknown orientation")

	// ErrUnknownLocation indicates a Location outside the 8-point compass.
	ErrUnknownLocation = errors.New("motion: location outside the 8-point compass")

	// ErrBadTurns indicates a turns value that is negative or not a
	// multiple of one half.
	ErrBadTurns = errors.New("motion: turns must be a non-negative half-integer multiple")

	// ErrOrientationDrift indicates a Motion whose stored end orientation
	// disagrees with the one derivable from its other fields.
	ErrOrientationDrift = errors.New("motion: end orientation inconsistent with start, type, and turns")
)

// MotionType classifies how a prop travels across a pictograph frame.
// The set is closed; switch statements over it must be exhaustive.
type MotionType int

const (
	// Static props do not travel; their arrow sits at the start location.
	Static MotionType = iota
	// Pro motions rotate the prop in the same sense as its travel.
	Pro
	// Anti motions rotate the prop against the sense of its travel.
	Anti
	// Dash motions traverse in a straight line, possibly without rotating.
	Dash
	// Float motions drift between locations without a driven rotation.
	Float
)

// motionTypeNames holds the canonical lowercase spelling of each motion
// type. These strings participate in placement keys and reference-data
// files; changing them is a breaking change for loaded override tables.
var motionTypeNames = [...]string{"static", "pro", "anti", "dash", "float"}

// String returns the canonical lowercase name ("static", "pro", ...).
func (t MotionType) String() string {
	if t < Static || t > Float {
		return "unknown"
	}
	return motionTypeNames[t]
}

// RotationDirection is the sense in which a prop rotates during a motion.
type RotationDirection int

const (
	// NoRotation marks a motion with no driven rotation (e.g. a straight dash).
	NoRotation RotationDirection = iota
	// Clockwise rotation, in screen coordinates.
	Clockwise
	// CounterClockwise rotation, in screen coordinates.
	CounterClockwise
)

// String returns the canonical lowercase name ("none", "cw", "ccw").
func (d RotationDirection) String() string {
	switch d {
	case NoRotation:
		return "none"
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "unknown"
	}
}

// Orientation describes which way a prop faces relative to the grid center.
// In and Out are radial (layer 1); Clock and Counter are nonradial (layer 2).
type Orientation int

const (
	// In faces the grid center.
	In Orientation = iota
	// Out faces away from the grid center.
	Out
	// Clock faces along the clockwise tangent.
	Clock
	// Counter faces along the counter-clockwise tangent.
	Counter
)

// String returns the canonical lowercase name ("in", "out", "clock", "counter").
func (o Orientation) String() string {
	switch o {
	case In:
		return "in"
	case Out:
		return "out"
	case Clock:
		return "clock"
	case Counter:
		return "counter"
	default:
		return "unknown"
	}
}

// IsRadial reports whether o belongs to the radial layer (In or Out).
func (o Orientation) IsRadial() bool { return o == In || o == Out }

// Layer returns 1 for radial orientations and 2 for nonradial ones.
func (o Orientation) Layer() int {
	if o.IsRadial() {
		return 1
	}
	return 2
}

// opposite flips an orientation within its layer: In↔Out, Clock↔Counter.
func (o Orientation) opposite() Orientation {
	switch o {
	case In:
		return Out
	case Out:
		return In
	case Clock:
		return Counter
	default:
		return Clock
	}
}

// Location is one of the 8 compass points a prop can occupy.
// Cardinal points belong to the Diamond grid mode, diagonal points to Box.
type Location int

const (
	// N is compass north (straight up in screen coordinates).
	N Location = iota
	// NE is compass north-east.
	NE
	// E is compass east.
	E
	// SE is compass south-east.
	SE
	// S is compass south.
	S
	// SW is compass south-west.
	SW
	// W is compass west.
	W
	// NW is compass north-west.
	NW
)

// locationNames holds the canonical lowercase spelling of each location.
var locationNames = [...]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

// String returns the canonical lowercase name ("n", "ne", ...).
func (l Location) String() string {
	if l < N || l > NW {
		return "unknown"
	}
	return locationNames[l]
}

// IsDiagonal reports whether l is one of the four diagonal compass points.
func (l Location) IsDiagonal() bool {
	return l == NE || l == SE || l == SW || l == NW
}

// GridMode selects which four compass points a pictograph's props are
// allowed to stand on: cardinals (Diamond) or diagonals (Box).
type GridMode int

const (
	// Diamond places props on the cardinal points N, E, S, W.
	Diamond GridMode = iota
	// Box places props on the diagonal points NE, SE, SW, NW.
	Box
)

// String returns the canonical lowercase name ("diamond", "box"). These
// strings double as directory names in the reference-data tree.
func (g GridMode) String() string {
	if g == Box {
		return "box"
	}
	return "diamond"
}

// Color identifies one of the two prop slots of a pictograph.
type Color int

const (
	// Blue is the first prop slot.
	Blue Color = iota
	// Red is the second prop slot.
	Red
)

// String returns the canonical lowercase name ("blue", "red"). These
// strings double as entry keys inside the special-placement tables.
func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "blue"
}

// Turns is the half-integer count of rotations a prop makes during a
// motion: 0, 0.5, 1, 1.5, and so on.
type Turns float64

// IsValid reports whether t is non-negative and a multiple of one half,
// within floating tolerance.
func (t Turns) IsValid() bool {
	if t < 0 {
		return false
	}
	doubled := float64(t) * 2
	return math.Abs(doubled-math.Round(doubled)) < 1e-9
}

// halfSteps returns the number of half-turns in t, rounded to the nearest
// integer. Callers must have validated t first.
func (t Turns) halfSteps() int {
	return int(math.Round(float64(t) * 2))
}

// IsWhole reports whether t is an integral number of turns.
func (t Turns) IsWhole() bool { return t.halfSteps()%2 == 0 }

// Motion is the value object describing one prop's travel across a
// pictograph frame. It is immutable after construction: build it with
// NewMotion so End orientation stays consistent with the other fields.
type Motion struct {
	// Type classifies the travel (Static, Pro, Anti, Dash, Float).
	Type MotionType

	// Direction is the sense of driven rotation, NoRotation if none.
	Direction RotationDirection

	// Start is the compass point the prop departs from.
	Start Location

	// End is the compass point the prop arrives at.
	End Location

	// Turns is the half-integer rotation count over the motion.
	Turns Turns

	// StartOrientation is the prop's facing at the start of the motion.
	StartOrientation Orientation

	// EndOrientation is the prop's facing at the end of the motion.
	// Always derivable from the other fields; never set it independently.
	EndOrientation Orientation
}

// NewMotion builds a Motion and derives its end orientation from the start
// orientation, motion type, rotation direction, and turns. It performs no
// validation; call Validate when the inputs come from an untrusted source.
func NewMotion(t MotionType, dir RotationDirection, start, end Location, turns Turns, startOri Orientation) Motion {
	return Motion{
		Type:             t,
		Direction:        dir,
		Start:            start,
		End:              end,
		Turns:            turns,
		StartOrientation: startOri,
		EndOrientation:   DeriveEndOrientation(t, turns, dir, startOri),
	}
}

// Validate reports the first contract violation found in m, or nil.
// The placement engine never calls this; it exists for callers that want
// to treat invariant violations as fatal before rendering.
func (m Motion) Validate() error {
	if m.Type < Static || m.Type > Float {
		return ErrUnknownMotionType
	}
	if m.Direction < NoRotation || m.Direction > CounterClockwise {
		return ErrUnknownRotation
	}
	if m.Start < N || m.Start > NW {
		return ErrUnknownLocation
	}
	if m.End < N || m.End > NW {
		return ErrUnknownLocation
	}
	if !m.Turns.IsValid() {
		return ErrBadTurns
	}
	if m.StartOrientation < In || m.StartOrientation > Counter {
		return ErrUnknownOrientation
	}
	if m.EndOrientation != DeriveEndOrientation(m.Type, m.Turns, m.Direction, m.StartOrientation) {
		return ErrOrientationDrift
	}
	return nil
}
