package motion

// Arrow is the renderable indicator for one prop slot. Its position,
// rotation, and mirror flag are derived by the placement engine, never
// stored here. An Arrow with a nil Motion renders invisible/centered.
type Arrow struct {
	// Color identifies the prop slot this arrow belongs to.
	Color Color

	// Motion is the motion this arrow depicts, nil when the slot is empty.
	Motion *Motion
}

// Pictograph is a single movement-diagram frame: up to two prop motions
// plus an optional letter. Both color slots always exist, even when a
// slot's motion is absent.
type Pictograph struct {
	// Letter is the frame's identifier from the closed alphabet, or the
	// empty string when the frame is unlettered.
	Letter string

	// Motions holds the per-color motion slots. A missing or nil entry
	// means the slot is empty.
	Motions map[Color]*Motion

	// Arrows holds the per-color arrow entities, exactly one per color.
	Arrows map[Color]*Arrow
}

// NewPictograph builds an empty frame with both color slots present.
func NewPictograph(letter string) *Pictograph {
	return &Pictograph{
		Letter:  letter,
		Motions: map[Color]*Motion{Blue: nil, Red: nil},
		Arrows: map[Color]*Arrow{
			Blue: {Color: Blue},
			Red:  {Color: Red},
		},
	}
}

// SetMotion fills the color slot with m and points the slot's arrow at it.
func (p *Pictograph) SetMotion(c Color, m Motion) {
	p.Motions[c] = &m
	if a := p.Arrows[c]; a != nil {
		a.Motion = &m
	} else {
		p.Arrows[c] = &Arrow{Color: c, Motion: &m}
	}
}

// Motion returns the motion in the color slot, nil when absent.
func (p *Pictograph) Motion(c Color) *Motion {
	if p == nil {
		return nil
	}
	return p.Motions[c]
}

// GridMode derives the frame's grid mode from the locations its motions
// use: Box when every used location is diagonal, Diamond otherwise
// (including the empty frame).
func (p *Pictograph) GridMode() GridMode {
	used, diagonal := 0, 0
	for _, m := range p.Motions {
		if m == nil {
			continue
		}
		used += 2
		if m.Start.IsDiagonal() {
			diagonal++
		}
		if m.End.IsDiagonal() {
			diagonal++
		}
	}
	if used > 0 && diagonal == used {
		return Box
	}
	return Diamond
}

// Validate reports the first contract violation found in the frame's
// motions, or nil. Empty slots are legal and skipped.
func (p *Pictograph) Validate() error {
	for _, c := range []Color{Blue, Red} {
		if m := p.Motions[c]; m != nil {
			if err := m.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
