// SPDX-License-Identifier: MIT
// Package: pictograph/placement
//
// key.go - placement-key generation with three-tier fallback.
//
// Purpose:
//   - Compose the composite lookup key from the motion type, the frame's
//     orientation layer, its named end configuration, and its letter, then
//     walk the fallback chain against the known-key set.
//
// Contract (order matters, do not reorder steps):
//  1. orientation component: only hybrid-layer frames carry one —
//     "RADIAL_" when the motion ends In/Out, "NONRADIAL_" otherwise.
//  2. letter suffix: "" for unlettered frames; dash-family letters spell
//     "_<base>_dash"; every other letter spells "_<letter>".
//  3. key middle: "layer1" (both radial) / "layer2" (both nonradial) /
//     "layer3" (hybrid) / "" — an empty middle skips step 4 entirely.
//  4. configuration suffix: "_alpha" / "_beta" / "_gamma" per the matching
//     inspection flag, nothing when none matches.
//  5. radiality key: type name, plus "_to_" + component + middle when the
//     middle is non-empty.
//  6. letter key: radiality key + letter suffix.
//  7. selection, first match wins: letter key if known; else radiality
//     key if known; else the bare type name (always known, zero offset).
//
// Determinism:
//   - Pure function of (motion, pictograph, keys); no state consulted.
package placement

import (
	"github.com/glyphkit/pictograph/motion"
	"github.com/glyphkit/pictograph/special"
)

// GenerateKey composes the placement lookup key for one arrow's motion and
// selects the most specific spelling present in keys. Specificity degrades
// gracefully: letter + full layer context → layer context only → bare
// motion type name.
func GenerateKey(m *motion.Motion, p *motion.Pictograph, keys special.KeySet) string {
	name := m.Type.String()
	if p == nil {
		// No frame context: every tiered component is empty, only the
		// bare name can resolve.
		return name
	}

	component := ""
	if EndsWithHybridLayer(p) {
		if m.EndOrientation.IsRadial() {
			component = "RADIAL_"
		} else {
			component = "NONRADIAL_"
		}
	}

	middle := keyMiddle(p)

	withRadiality := name
	if middle != "" {
		withRadiality = name + "_to_" + component + middle
	}
	withLetter := withRadiality + motion.LetterSuffix(p.Letter)

	switch {
	case keys.Contains(withLetter):
		return withLetter
	case keys.Contains(withRadiality):
		return withRadiality
	default:
		return name
	}
}

// keyMiddle renders the layer middle plus its configuration suffix, or ""
// when the frame matches no layer (in which case no suffix applies either).
func keyMiddle(p *motion.Pictograph) string {
	var middle string
	switch {
	case EndsWithRadialOrientation(p):
		middle = "layer1"
	case EndsWithNonradialOrientation(p):
		middle = "layer2"
	case EndsWithHybridLayer(p):
		middle = "layer3"
	default:
		return ""
	}
	switch {
	case EndsWithAlpha(p):
		middle += "_alpha"
	case EndsWithBeta(p):
		middle += "_beta"
	case EndsWithGamma(p):
		middle += "_gamma"
	}
	return middle
}
