// Package special holds the hand-curated placement override table and its
// directory-tree loader.
//
// 🚀 What is special?
//
//	Closed-form geometry places every arrow correctly for most frames,
//	but specific letter/turns/layer combinations were hand-tuned upstream
//	with small (dx, dy) corrections. This package stores those
//	corrections as an immutable four-level mapping
//
//	    grid mode → orientation group → letter → turns tuple → entry key
//
//	where the entry key is a color name ("blue"/"red") or, for letters
//	tuned per motion kind, a lowercase motion type name ("pro"/"anti"/…).
//
// ✨ Key properties:
//   - immutable after load: concurrent lookups need no synchronization
//   - an empty repository is a legal state — every lookup misses and the
//     engine falls back to pure geometry
//   - the loader merges every file in a group folder; on key collision
//     across files, last-loaded wins (lexical file order)
//
// ⚙️ Usage:
//
//	repo, keys, err := special.Load("placements")
//	off, ok := repo.Lookup(motion.Diamond, special.FromLayer1,
//	    "A", "(1, 0)", motion.Blue, motion.Pro)
//
// Load also derives the known-key set the placement key generator walks
// its fallback chain against; see KeySet.
package special
