// Package thumbs picks a representative thumbnail image from a materialized
// game directory using location and filename heuristics.
package thumbs

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".bmp":  {},
}

// Filename hint substrings in rank order; earlier hints score higher.
var hintOrder = []string{"thumbnail", "cover", "title", "screenshot", "preview"}

const (
	rootBonus     = 100
	sizeBonus     = 10
	sizeThreshold = 1000
	hintBase      = 60
	hintStep      = 10
)

// Candidate is a scored thumbnail choice.
type Candidate struct {
	Path  string
	Score int
	Size  int64
}

// Select walks the destination recursively and returns the best-scoring
// image, or ok=false when the directory contains none. Unreadable files are
// skipped rather than failing the scan; callers treat an empty result as
// advisory and fall back to a default path.
func Select(root string) (Candidate, bool) {
	var best Candidate
	found := false

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if _, ok := imageExtensions[ext]; !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}

		candidate := Candidate{
			Path:  path,
			Score: score(root, path, d.Name(), info.Size()),
			Size:  info.Size(),
		}
		if !found || better(candidate, best) {
			best = candidate
			found = true
		}
		return nil
	})

	return best, found
}

func score(root, path, name string, size int64) int {
	total := 0
	if filepath.Dir(path) == filepath.Clean(root) {
		total += rootBonus
	}
	base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	for rank, hint := range hintOrder {
		if strings.Contains(base, hint) {
			total += hintBase - hintStep*rank
			break
		}
	}
	if size > sizeThreshold {
		total += sizeBonus
	}
	return total
}

// better prefers higher score, then larger file; traversal order breaks the
// remaining ties (first found wins).
func better(candidate, current Candidate) bool {
	if candidate.Score != current.Score {
		return candidate.Score > current.Score
	}
	return candidate.Size > current.Size
}
