// Package pictograph turns symbolic two-prop movement descriptions into
// exact arrow placements: a 2-D position, a rotation angle, and a mirror
// flag per colored prop.
//
// 🚀 What is pictograph?
//
//	A deterministic placement engine for movement-diagram frames
//	("pictographs"). Each frame holds up to two colored motions; the
//	engine resolves where each motion's arrow sits on an 8-point compass,
//	which way it points, and whether its asset is flipped — by combining
//	closed-form circle geometry with a hand-curated override table keyed
//	by a generated composite string.
//
// ✨ Why choose pictograph?
//
//   - Fully deterministic — identical inputs always yield bit-identical
//     placements; no clocks, randomness, or ambient state
//   - Lock-free hot path — the override table is immutable after load,
//     so concurrent Calculate calls need no synchronization
//   - Graceful fallback — a missing letter, turns tuple, or whole
//     override tree degrades to pure geometry, never to a crash
//
// Under the hood, everything is organized under four subpackages:
//
//	motion/    — domain value types: Motion, Arrow, Pictograph, enums
//	grid/      — compass-to-coordinates geometry on two concentric circles
//	special/   — the immutable special-placement override repository + loader
//	placement/ — location, rotation, key, and mirror resolution; the Engine
//
// Quick sketch:
//
//	repo, keys, _ := special.Load("placements")
//	eng := placement.NewEngine(grid.DefaultGeometry(), repo, keys)
//	p := eng.Calculate(arrow, picto) // → {X, Y, Rotation, Mirrored}
//
// The serving binary in cmd/placementd exposes the same entry point over
// HTTP for non-Go callers.
package pictograph
