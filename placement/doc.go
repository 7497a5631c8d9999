// Package placement resolves where a pictograph's arrows sit, how they
// rotate, and whether they mirror.
//
// 🚀 What is placement?
//
//	The engine of the module. Given one Arrow and its Pictograph frame it
//	runs a deterministic pipeline:
//
//	  1. ResolveLocation   — which compass point the arrow occupies
//	  2. ResolveRotation   — its rotation angle in degrees
//	  3. grid.BasePoint    — closed-form position on the right circle
//	  4. GenerateKey       — composite lookup key with three-tier fallback
//	  5. special.Lookup    — hand-curated (dx, dy) override, if any
//	  6. ShouldMirror      — horizontal flip flag
//
//	and sums base position + override into the final Placement.
//
// ✨ Key properties:
//   - fully deterministic: identical inputs yield bit-identical outputs;
//     no clocks, randomness, or mutable ambient state
//   - never errors and never panics on domain values: missing data
//     degrades to the canvas center or to pure geometry
//   - safe for concurrent use once the override repository is loaded
//
// ⚙️ Usage:
//
//	repo, keys, _ := special.Load("placements")
//	eng := placement.NewEngine(grid.DefaultGeometry(), repo, keys)
//	pl := eng.Calculate(picto.Arrows[motion.Blue], picto)
//	// pl.X, pl.Y, pl.Rotation, pl.Mirrored
//
// The free functions (ResolveLocation, GenerateKey, EndsWithAlpha, ...)
// are exported individually; the Engine only composes them.
package placement
