package placement

import (
	"github.com/glyphkit/pictograph/grid"
	"github.com/glyphkit/pictograph/motion"
	"github.com/glyphkit/pictograph/special"
)

// Placement is the final render instruction for one arrow: a canvas
// position, a rotation in degrees [0, 360), and a mirror flag.
type Placement struct {
	// X, Y locate the arrow asset's anchor on the canvas.
	X, Y float64

	// Rotation is the asset's rotation in degrees, clockwise.
	Rotation float64

	// Mirrored requests a horizontal flip of the asset.
	Mirrored bool
}

// Engine composes the resolution pipeline behind a single entry point.
// It is immutable after construction and safe for concurrent use,
// provided the repository handed to NewEngine is no longer mutated —
// special.Load and special.NewRepository both guarantee that.
type Engine struct {
	geom grid.Geometry
	repo *special.Repository
	keys special.KeySet
}

// NewEngine builds an engine over a geometry, an override repository, and
// the known-key set derived from it. A nil repository or key set degrades
// to the empty table: pure geometry, bare keys, zero offsets.
func NewEngine(geom grid.Geometry, repo *special.Repository, keys special.KeySet) *Engine {
	if repo == nil {
		repo = special.NewRepository()
	}
	if keys == nil {
		keys = special.BaseKeys()
	}
	return &Engine{geom: geom, repo: repo, keys: keys}
}

// Geometry returns the engine's canvas geometry.
func (e *Engine) Geometry() grid.Geometry { return e.geom }

// Calculate resolves the placement of one arrow within its frame.
//
// An arrow with no motion resolves to the canvas center, unrotated and
// unmirrored — the single universal fallback for missing data. Otherwise
// the pipeline runs: location → rotation → base point → placement key →
// override lookup → mirror, with a missing override contributing (0, 0).
// A nil frame is treated as an empty one: geometry stands, no override
// applies.
//
// Fully deterministic and never fails; see the package doc for the
// degradation rules.
// Complexity: O(1).
func (e *Engine) Calculate(a *motion.Arrow, p *motion.Pictograph) Placement {
	if a == nil || a.Motion == nil {
		cx, cy := e.geom.Center()
		return Placement{X: cx, Y: cy}
	}
	if p == nil {
		p = motion.NewPictograph("")
	}
	m := a.Motion

	loc := ResolveLocation(m)
	rot := ResolveRotation(m, loc)
	x, y := e.geom.BasePoint(m.Type, loc)

	// The bare type name is the offset-free fallback tier; only a tiered
	// key consults the override table.
	if key := GenerateKey(m, p, e.keys); key != m.Type.String() {
		off, ok := e.repo.Lookup(p.GridMode(), special.GroupFor(p), p.Letter,
			special.TurnsTuple(p), a.Color, m.Type)
		if ok {
			x += off.X
			y += off.Y
		}
	}

	return Placement{X: x, Y: y, Rotation: rot, Mirrored: ShouldMirror(m)}
}

// CalculateAll resolves both color slots of a frame, keyed by color.
// Convenience for callers rendering whole frames.
func (e *Engine) CalculateAll(p *motion.Pictograph) map[motion.Color]Placement {
	out := make(map[motion.Color]Placement, 2)
	for _, c := range []motion.Color{motion.Blue, motion.Red} {
		var a *motion.Arrow
		if p != nil {
			a = p.Arrows[c]
		}
		out[c] = e.Calculate(a, p)
	}
	return out
}
