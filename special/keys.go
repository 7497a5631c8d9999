// SPDX-License-Identifier: MIT
// Package: pictograph/special
//
// keys.go — known-key derivation for the placement-key fallback chain.
//
// Design:
//   • The key generator walks a three-tier fallback (letter key → radiality
//     key → bare motion type name) against a set of "known" keys. Known
//     means: the repository holds data the key could address.
//   • The set is derived mechanically at load time by expanding every
//     loaded (group, letter) pair into the full family of keys the
//     generator could emit for it: motion type × orientation component ×
//     layer middle × configuration suffix, with and without the letter —
//     plus the middle-free letter keys ("<type>_<letter>") a single-slot
//     frame generates.
//   • The five bare motion type names are always present; they are the
//     ultimate, offset-free fallback even over an empty repository.
//
// Determinism:
//   • Derivation is a pure function of repository contents; expansion order
//     does not matter because the result is a set.
package special

import "github.com/glyphkit/pictograph/motion"

// KeySet answers membership queries for generated placement keys.
// Treat it as immutable once derived.
type KeySet map[string]struct{}

// Contains reports whether k is a known key.
func (s KeySet) Contains(k string) bool {
	_, ok := s[k]
	return ok
}

// add registers a key. Only derivation code calls it.
func (s KeySet) add(k string) { s[k] = struct{}{} }

// motionTypes enumerates the closed motion-type set for key expansion.
var motionTypes = []motion.MotionType{
	motion.Static, motion.Pro, motion.Anti, motion.Dash, motion.Float,
}

// configSuffixes are the optional named-configuration suffixes a key
// middle may carry.
var configSuffixes = []string{"", "_alpha", "_beta", "_gamma"}

// BaseKeys returns the minimal key set: the five bare motion type names.
// This is the known-key set of an empty repository.
func BaseKeys() KeySet {
	s := make(KeySet, len(motionTypes))
	for _, t := range motionTypes {
		s.add(t.String())
	}
	return s
}

// layerMiddle returns the key middle implied by an orientation group.
func layerMiddle(g OrientationGroup) string {
	switch g {
	case FromLayer1:
		return "layer1"
	case FromLayer2:
		return "layer2"
	default:
		return "layer3"
	}
}

// orientationComponents returns the orientation components a group's keys
// may carry: none for the uniform layers, RADIAL_/NONRADIAL_ for hybrids.
func orientationComponents(g OrientationGroup) []string {
	if g == FromLayer3Blue1Red2 || g == FromLayer3Blue2Red1 {
		return []string{"RADIAL_", "NONRADIAL_"}
	}
	return []string{""}
}

// KeySet derives the known-key set for the repository's contents: the base
// names plus, for every loaded (grid, group, letter), each radiality key
// and letter key the generator could emit against that data.
func (r *Repository) KeySet() KeySet {
	s := BaseKeys()
	for _, grids := range r.tables {
		for group, letters := range grids {
			middle := layerMiddle(group)
			for letter := range letters {
				suffix := motion.LetterSuffix(letter)
				for _, t := range motionTypes {
					// Middle-free letter tier: a frame with an empty key
					// middle (one slot absent) generates bare name + letter.
					if suffix != "" {
						s.add(t.String() + suffix)
					}
					for _, oc := range orientationComponents(group) {
						for _, cfg := range configSuffixes {
							radiality := t.String() + "_to_" + oc + middle + cfg
							s.add(radiality)
							if suffix != "" {
								s.add(radiality + suffix)
							}
						}
					}
				}
			}
		}
	}
	return s
}
