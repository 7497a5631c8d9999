// Package motion defines the symbolic domain model for pictograph frames:
// closed enumerations (MotionType, RotationDirection, Orientation, Location,
// GridMode, Color), the Motion value object, and the Pictograph aggregate
// holding one motion slot per color.
//
// All types are cheap, disposable values with no identity beyond structural
// equality. A Motion is immutable after construction; NewMotion derives the
// end orientation from the start orientation, motion type, rotation
// direction, and turns, so a Motion can never store an inconsistent
// orientation pair.
//
// Validation is opt-in: the placement engine itself never rejects a value
// (it favors silent geometric fallback), while callers that want a checking
// layer use Motion.Validate and Pictograph.Validate, which report contract
// violations as sentinel errors.
package motion
