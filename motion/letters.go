// SPDX-License-Identifier: MIT
// Package: pictograph/motion
//
// letters.go - canonical dash-family letter membership (data-only).
//
// Purpose:
//   - This file is the single source of truth for which letters belong to
//     the two dash families ("Type3" and "Type5"). Canonical spellings of
//     family members end with the dash character; the suffix affects
//     placement-key generation only, never geometry.
//   - Membership is a closed classification (a LetterFamily enum), not ad
//     hoc list checks at call sites.
//
// Contract (for consumers such as placement.GenerateKey):
//   - ClassifyLetter answers on the canonical dashed spelling; undashed or
//     unknown letters classify as FamilyOther.
//   - BaseLetter strips the single trailing dash, if present, and is the
//     spelling that participates in generated keys.
//
// Determinism:
//   - The family sets are fixed at compile time; do not mutate after review.
//   - Keep changes append-only: never move a letter between families.
package motion

import "strings"

// LetterFamily classifies a pictograph letter for key generation.
type LetterFamily int

const (
	// FamilyOther covers every letter outside the two dash families.
	FamilyOther LetterFamily = iota
	// FamilyType3 is the first dash family.
	FamilyType3
	// FamilyType5 is the second dash family.
	FamilyType5
)

// letterFamilies maps each dash-family member's canonical spelling to its
// family. The two sets are disjoint.
var letterFamilies = map[string]LetterFamily{
	"W-": FamilyType3,
	"X-": FamilyType3,
	"Y-": FamilyType3,
	"Z-": FamilyType3,
	"Σ-": FamilyType3,
	"Δ-": FamilyType3,
	"θ-": FamilyType3,
	"Ω-": FamilyType3,

	"Φ-": FamilyType5,
	"Ψ-": FamilyType5,
	"Λ-": FamilyType5,
}

// ClassifyLetter returns the dash family of letter, or FamilyOther.
// The empty letter classifies as FamilyOther.
func ClassifyLetter(letter string) LetterFamily {
	return letterFamilies[letter]
}

// IsDashFamily reports whether letter belongs to either dash family.
func IsDashFamily(letter string) bool {
	return ClassifyLetter(letter) != FamilyOther
}

// BaseLetter returns letter without its single trailing dash, if any.
func BaseLetter(letter string) string {
	return strings.TrimSuffix(letter, "-")
}

// LetterSuffix renders the letter component of a letter-bearing placement
// key: dash-family letters spell out as "_<base>_dash", every other letter
// as "_<letter>". The empty letter contributes nothing.
func LetterSuffix(letter string) string {
	if letter == "" {
		return ""
	}
	if IsDashFamily(letter) {
		return "_" + BaseLetter(letter) + "_dash"
	}
	return "_" + letter
}
