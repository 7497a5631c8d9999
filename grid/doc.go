// Package grid maps compass locations onto canvas coordinates.
//
// 🚀 What is grid?
//
//	The 8 compass points of a pictograph frame sit on one of two
//	concentric circles around the canvas center: a hand-level circle for
//	static props and a prop-level circle for traveling ones. This package
//	owns that geometry — the center, the two radii, the per-location unit
//	offsets, and the standing angle of each compass point.
//
// ✨ Key properties:
//   - every location sits at exactly its circle's radius from center,
//     regardless of grid mode (cardinal and diagonal offsets alike)
//   - screen coordinates: y decreases going north, N is straight up
//   - pure value semantics; a Geometry is cheap to copy and never mutates
//
// ⚙️ Usage:
//
//	g := grid.DefaultGeometry()
//	x, y := g.BasePoint(motion.Static, motion.N) // (Cx, Cy - HandRadius)
//
// Standing angles grow clockwise from north: N=0°, E=90°, S=180°, W=270°.
package grid
