// Package special declares the Repository, OrientationGroup, Offset, and
// Entry types plus the loader's sentinel errors.
//
// Errors:
//
//	ErrMalformedTable - a placement file does not decode into the expected
//	                    letter → tuple → key → [dx, dy] shape.
//	ErrUnreadable     - a placement file or directory cannot be read.
package special

import (
	"errors"

	"github.com/glyphkit/pictograph/motion"
)

// Sentinel errors for repository loading.
var (
	// ErrMalformedTable indicates a placement file with the wrong shape.
	ErrMalformedTable = errors.New("special: malformed placement table")

	// ErrUnreadable indicates a placement file or directory that cannot be read.
	ErrUnreadable = errors.New("special: unreadable placement data")
)

// OrientationGroup partitions the override table by the end-orientation
// layers of the two motions: both radial, both nonradial, or the two
// hybrid arrangements.
type OrientationGroup int

const (
	// FromLayer1 covers frames whose motions both end radial.
	FromLayer1 OrientationGroup = iota
	// FromLayer2 covers frames whose motions both end nonradial.
	FromLayer2
	// FromLayer3Blue1Red2 covers hybrid frames with blue radial, red nonradial.
	FromLayer3Blue1Red2
	// FromLayer3Blue2Red1 covers hybrid frames with blue nonradial, red radial.
	FromLayer3Blue2Red1
)

// groupNames holds the canonical directory name of each group inside a
// grid mode's special/ subtree.
var groupNames = [...]string{
	"from_layer1",
	"from_layer2",
	"from_layer3_blue1_red2",
	"from_layer3_blue2_red1",
}

// String returns the group's canonical directory name.
func (g OrientationGroup) String() string {
	if g < FromLayer1 || g > FromLayer3Blue2Red1 {
		return "unknown"
	}
	return groupNames[g]
}

// Groups enumerates all four orientation groups in directory order.
func Groups() []OrientationGroup {
	return []OrientationGroup{FromLayer1, FromLayer2, FromLayer3Blue1Red2, FromLayer3Blue2Red1}
}

// Offset is a hand-curated (dx, dy) correction applied on top of the
// closed-form geometric position.
type Offset struct {
	X, Y float64
}

// Entry is one override record, addressed by its full table path. Used to
// build synthetic repositories in tests and by the loader internally.
type Entry struct {
	// Grid is the grid mode subtree the entry belongs to.
	Grid motion.GridMode
	// Group is the orientation-group folder.
	Group OrientationGroup
	// Letter is the frame letter in its canonical spelling.
	Letter string
	// Tuple is the canonical "(b, r)" turns-tuple string.
	Tuple string
	// Key is a color name ("blue"/"red") or a lowercase motion type name.
	Key string
	// Offset is the correction itself.
	Offset Offset
}
