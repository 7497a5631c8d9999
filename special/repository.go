package special

import (
	"github.com/glyphkit/pictograph/motion"
)

// bucket maps an entry key ("blue", "red", or a lowercase motion type
// name) to its offset.
type bucket map[string]Offset

// letterTable maps turns-tuple strings to buckets for one letter.
type letterTable map[string]bucket

// groupTable maps letters to their tables for one orientation group.
type groupTable map[string]letterTable

// Repository is the immutable four-level override table. Build one with
// NewRepository or Load; never mutate it afterwards — concurrent lookups
// rely on it.
type Repository struct {
	tables map[motion.GridMode]map[OrientationGroup]groupTable
	size   int
}

// NewRepository builds a repository from explicit entries. On colliding
// table paths the later entry wins, mirroring the loader's last-loaded
// semantics. An empty entry list yields a legal, always-missing repository.
func NewRepository(entries ...Entry) *Repository {
	r := &Repository{tables: make(map[motion.GridMode]map[OrientationGroup]groupTable)}
	for _, e := range entries {
		r.put(e)
	}
	return r
}

// put inserts one entry, creating intermediate levels as needed.
// Only constructors call it; the repository is frozen afterwards.
func (r *Repository) put(e Entry) {
	grids, ok := r.tables[e.Grid]
	if !ok {
		grids = make(map[OrientationGroup]groupTable)
		r.tables[e.Grid] = grids
	}
	group, ok := grids[e.Group]
	if !ok {
		group = make(groupTable)
		grids[e.Group] = group
	}
	letter, ok := group[e.Letter]
	if !ok {
		letter = make(letterTable)
		group[e.Letter] = letter
	}
	b, ok := letter[e.Tuple]
	if !ok {
		b = make(bucket)
		letter[e.Tuple] = b
	}
	if _, exists := b[e.Key]; !exists {
		r.size++
	}
	b[e.Key] = e.Offset
}

// Lookup resolves an override for one arrow. Within the addressed bucket
// it tries, in order: the literal color name (the common case), then the
// lowercase motion type name (letters tuned per motion kind). A false
// second return means "no special offset — geometry stands as computed".
// Complexity: O(1), a handful of map probes.
func (r *Repository) Lookup(grid motion.GridMode, group OrientationGroup, letter, tuple string, color motion.Color, t motion.MotionType) (Offset, bool) {
	b := r.bucket(grid, group, letter, tuple)
	if b == nil {
		return Offset{}, false
	}
	if off, ok := b[color.String()]; ok {
		return off, true
	}
	if off, ok := b[t.String()]; ok {
		return off, true
	}
	return Offset{}, false
}

// bucket walks the four levels, returning nil on the first miss.
func (r *Repository) bucket(grid motion.GridMode, group OrientationGroup, letter, tuple string) bucket {
	grids, ok := r.tables[grid]
	if !ok {
		return nil
	}
	g, ok := grids[group]
	if !ok {
		return nil
	}
	l, ok := g[letter]
	if !ok {
		return nil
	}
	return l[tuple]
}

// Len returns the number of stored override records. Introspection only.
func (r *Repository) Len() int { return r.size }

// Letters returns the letters present under a grid mode and group, in
// unspecified order. Introspection only.
func (r *Repository) Letters(grid motion.GridMode, group OrientationGroup) []string {
	grids, ok := r.tables[grid]
	if !ok {
		return nil
	}
	g, ok := grids[group]
	if !ok {
		return nil
	}
	letters := make([]string, 0, len(g))
	for l := range g {
		letters = append(letters, l)
	}
	return letters
}
