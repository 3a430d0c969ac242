package ingest

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gamedock/internal/classify"
	"gamedock/internal/input"
	"gamedock/internal/services"
	"gamedock/internal/source"
)

const entryPointSuffix = ".html"

// listEntryPoints returns the web-document candidates directly at the
// destination root, sorted lexicographically for determinism.
func listEntryPoints(dest string) ([]string, error) {
	entries, err := os.ReadDir(dest)
	if err != nil {
		return nil, fmt.Errorf("list destination: %w", err)
	}
	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), entryPointSuffix) {
			candidates = append(candidates, entry.Name())
		}
	}
	sort.Strings(candidates)
	return candidates, nil
}

// resolveEntryPoint picks the launch page for the materialized destination.
// With no candidates it distinguishes a compiled-only distribution from a
// package with no playable content; with several it defers to the input
// provider, falling back to the first candidate on an unusable selection.
func resolveEntryPoint(dest string, provider input.Provider) (string, error) {
	candidates, err := listEntryPoints(dest)
	if err != nil {
		return "", services.Wrap(services.ErrStructure, "resolve", "entry point", "inspect destination", err)
	}

	switch len(candidates) {
	case 0:
		acc := source.OpenDir(dest)
		defer acc.Close()
		shape, err := classify.Classify(acc, "")
		if err == nil && shape == classify.PrebuiltDistribution {
			return "", services.Wrap(services.ErrStructure, "resolve", "entry point",
				"package is a compiled Ren'Py distribution, not buildable source; rebuild it for web from the original project or catalog it as download-only", nil)
		}
		return "", services.Wrap(services.ErrStructure, "resolve", "entry point",
			"no playable content found: destination has no root-level .html file", nil)
	case 1:
		return candidates[0], nil
	default:
		idx, err := provider.Choose(fmt.Sprintf("Multiple entry points found in %s", dest), candidates)
		if err != nil {
			return "", services.Wrap(services.ErrInput, "resolve", "entry point", "read selection", err)
		}
		if idx < 0 || idx >= len(candidates) {
			idx = 0
		}
		return candidates[idx], nil
	}
}
