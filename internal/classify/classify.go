// Package classify determines whether a planned package root holds
// buildable Ren'Py source, a compiled-only distribution, or a plain static
// bundle.
package classify

import (
	"path"
	"strings"

	"gamedock/internal/source"
)

// Classification is the project shape detected inside a package.
type Classification int

const (
	// StaticBundle is a package with no Ren'Py game directory; served as-is.
	StaticBundle Classification = iota
	// Buildable contains uncompiled .rpy source and can be built for web.
	Buildable
	// PrebuiltDistribution contains only compiled .rpyc artifacts.
	PrebuiltDistribution
)

const (
	gameDir        = "game"
	sourceSuffix   = ".rpy"
	compiledSuffix = ".rpyc"
)

func (c Classification) String() string {
	switch c {
	case Buildable:
		return "buildable"
	case PrebuiltDistribution:
		return "prebuilt-distribution"
	default:
		return "static-bundle"
	}
}

// Classify scans the package beneath root (the planned root prefix, "" for
// the package itself) for Ren'Py markers. A missing game directory is not
// an error; it simply means the package is a static bundle.
func Classify(acc source.Accessor, root string) (Classification, error) {
	prefix := gameDir
	if root != "" {
		prefix = path.Join(root, gameDir)
	}

	entries, err := acc.EntriesUnder(prefix)
	if err != nil {
		return StaticBundle, err
	}

	var sources, compiled int
	for _, entry := range entries {
		name := strings.ToLower(entry.Path)
		switch {
		case strings.HasSuffix(name, compiledSuffix):
			compiled++
		case strings.HasSuffix(name, sourceSuffix):
			sources++
		}
	}

	switch {
	case sources > 0:
		return Buildable, nil
	case compiled > 0:
		return PrebuiltDistribution, nil
	default:
		return StaticBundle, nil
	}
}
