package placement_test

import (
	"testing"

	"github.com/glyphkit/pictograph/motion"
	"github.com/glyphkit/pictograph/placement"
	"github.com/glyphkit/pictograph/special"
	"github.com/stretchr/testify/assert"
)

// keySet builds an ad hoc known-key set on top of the bare names.
func keySet(extra ...string) special.KeySet {
	s := special.BaseKeys()
	for _, k := range extra {
		s[k] = struct{}{}
	}
	return s
}

// radialAlphaFrame is a lettered frame whose motions both end radial at
// opposed points: middle "layer1_alpha".
func radialAlphaFrame(letter string) (*motion.Motion, *motion.Pictograph) {
	p := motion.NewPictograph(letter)
	p.SetMotion(motion.Blue, motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 0, motion.In))
	p.SetMotion(motion.Red, motion.NewMotion(motion.Pro, motion.Clockwise, motion.S, motion.N, 0, motion.In))
	return p.Motion(motion.Blue), p
}

// TestGenerateKey_LetterTier selects the full letter key when known.
func TestGenerateKey_LetterTier(t *testing.T) {
	m, p := radialAlphaFrame("A")
	keys := keySet("pro_to_layer1_alpha_A", "pro_to_layer1_alpha")
	assert.Equal(t, "pro_to_layer1_alpha_A", placement.GenerateKey(m, p, keys))
}

// TestGenerateKey_FallbackMonotonicity: when the letter key is unknown but
// the radiality key is known, the radiality key must be returned — never
// the letter key, never the bare name.
func TestGenerateKey_FallbackMonotonicity(t *testing.T) {
	m, p := radialAlphaFrame("A")
	keys := keySet("pro_to_layer1_alpha")
	assert.Equal(t, "pro_to_layer1_alpha", placement.GenerateKey(m, p, keys))
}

// TestGenerateKey_BareFallback returns the bare motion type name when no
// tiered key is known.
func TestGenerateKey_BareFallback(t *testing.T) {
	m, p := radialAlphaFrame("A")
	assert.Equal(t, "pro", placement.GenerateKey(m, p, special.BaseKeys()))
}

// TestGenerateKey_UnletteredFrame skips tier 1 entirely: the letter suffix
// is empty, so the letter key equals the radiality key.
func TestGenerateKey_UnletteredFrame(t *testing.T) {
	m, p := radialAlphaFrame("")
	keys := keySet("pro_to_layer1_alpha")
	assert.Equal(t, "pro_to_layer1_alpha", placement.GenerateKey(m, p, keys))
}

// TestGenerateKey_DashFamilyLetter spells dash-family letters as
// "_<base>_dash" in tier 1.
func TestGenerateKey_DashFamilyLetter(t *testing.T) {
	m, p := radialAlphaFrame("W-")
	keys := keySet("pro_to_layer1_alpha_W_dash")
	assert.Equal(t, "pro_to_layer1_alpha_W_dash", placement.GenerateKey(m, p, keys))
}

// TestGenerateKey_HybridOrientationComponent carries RADIAL_/NONRADIAL_
// only on hybrid-layer frames, following the motion's own end orientation.
func TestGenerateKey_HybridOrientationComponent(t *testing.T) {
	p := motion.NewPictograph("G")
	p.SetMotion(motion.Blue, motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 0, motion.In))
	p.SetMotion(motion.Red, motion.NewMotion(motion.Pro, motion.Clockwise, motion.S, motion.N, 0, motion.Clock))

	blueKeys := keySet("pro_to_RADIAL_layer3_alpha_G")
	assert.Equal(t, "pro_to_RADIAL_layer3_alpha_G",
		placement.GenerateKey(p.Motion(motion.Blue), p, blueKeys))

	redKeys := keySet("pro_to_NONRADIAL_layer3_alpha_G")
	assert.Equal(t, "pro_to_NONRADIAL_layer3_alpha_G",
		placement.GenerateKey(p.Motion(motion.Red), p, redKeys))
}

// TestGenerateKey_NilFrame resolves to the bare name: without a frame
// there is no letter and no layer context to compose from.
func TestGenerateKey_NilFrame(t *testing.T) {
	m := motion.NewMotion(motion.Pro, motion.Clockwise, motion.N, motion.S, 0, motion.In)
	keys := keySet("pro_to_layer1_alpha_A", "pro_A")
	assert.Equal(t, "pro", placement.GenerateKey(&m, nil, keys))
}

// TestGenerateKey_EmptyMiddle yields no "_to_" section at all when the
// frame matches no layer (one slot empty): both tiers collapse onto the
// bare name plus letter.
func TestGenerateKey_EmptyMiddle(t *testing.T) {
	p := motion.NewPictograph("A")
	p.SetMotion(motion.Blue, motion.NewMotion(motion.Anti, motion.Clockwise, motion.E, motion.W, 1, motion.In))

	keys := keySet("anti_A")
	assert.Equal(t, "anti_A", placement.GenerateKey(p.Motion(motion.Blue), p, keys),
		"letter suffix still applies to an empty middle")

	assert.Equal(t, "anti", placement.GenerateKey(p.Motion(motion.Blue), p, special.BaseKeys()))
}
