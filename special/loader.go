package special

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/glyphkit/pictograph/motion"
)

// specialDir is the fixed subtree name holding override files inside each
// grid mode directory.
const specialDir = "special"

// fileTable is the on-disk shape of one placement file:
// letter → turns tuple → entry key → [dx, dy].
// Files are spelled in JSON; the YAML decoder accepts that spelling
// directly, so one decoder covers both.
type fileTable map[string]map[string]map[string][]float64

// Load reads the reference-data tree rooted at root and returns the merged
// repository plus its derived known-key set.
//
// Expected layout (missing directories are legal and contribute nothing):
//
//	root/
//	  diamond/special/from_layer1/*.json
//	  diamond/special/from_layer2/*.json
//	  diamond/special/from_layer3_blue1_red2/*.json
//	  diamond/special/from_layer3_blue2_red1/*.json
//	  box/special/...
//
// All files in a group folder merge into one table; on key collision
// across files, last-loaded wins (files are read in lexical name order).
// An entirely absent tree yields an empty repository, which is a legal,
// degraded-but-correct state: every lookup misses and geometry stands.
//
// Errors wrap ErrUnreadable for filesystem failures and ErrMalformedTable
// for files that do not decode into the expected shape.
func Load(root string) (*Repository, KeySet, error) {
	var entries []Entry
	for _, grid := range []motion.GridMode{motion.Diamond, motion.Box} {
		for _, group := range Groups() {
			dir := filepath.Join(root, grid.String(), specialDir, group.String())
			loaded, err := loadGroupDir(dir, grid, group)
			if err != nil {
				return nil, nil, err
			}
			entries = append(entries, loaded...)
		}
	}
	repo := NewRepository(entries...)
	return repo, repo.KeySet(), nil
}

// loadGroupDir reads every regular file in dir, in lexical name order, and
// flattens the decoded tables into entries. A missing dir yields nothing.
func loadGroupDir(dir string, grid motion.GridMode, group OrientationGroup) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("special: read dir %s: %w", dir, ErrUnreadable)
	}
	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		path := filepath.Join(dir, f.Name())
		loaded, err := loadFile(path, grid, group)
		if err != nil {
			return nil, err
		}
		entries = append(entries, loaded...)
	}
	return entries, nil
}

// loadFile decodes one placement file into entries.
func loadFile(path string, grid motion.GridMode, group OrientationGroup) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("special: read %s: %w", path, ErrUnreadable)
	}
	var table fileTable
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("special: decode %s: %w", path, ErrMalformedTable)
	}
	var entries []Entry
	for letter, tuples := range table {
		for tuple, keys := range tuples {
			for key, pair := range keys {
				if len(pair) != 2 {
					return nil, fmt.Errorf("special: %s: %q/%q/%q wants [dx, dy]: %w",
						path, letter, tuple, key, ErrMalformedTable)
				}
				entries = append(entries, Entry{
					Grid:   grid,
					Group:  group,
					Letter: letter,
					Tuple:  tuple,
					Key:    key,
					Offset: Offset{X: pair[0], Y: pair[1]},
				})
			}
		}
	}
	return entries, nil
}
