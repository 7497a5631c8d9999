package placement

import "github.com/glyphkit/pictograph/motion"

// ResolveLocation derives the compass point a motion's arrow occupies.
//
// Static props do not travel, so their arrow sits at the start location.
// Every traveling type resolves to the end location — including a Dash
// with NoRotation, which is a straight traversal with no further
// disambiguation.
//
// Pure function; every Motion has a valid resolution.
// Complexity: O(1).
func ResolveLocation(m *motion.Motion) motion.Location {
	if m.Type == motion.Static {
		return m.Start
	}
	return m.End
}
