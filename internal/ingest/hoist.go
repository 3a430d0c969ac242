package ingest

import (
	"fmt"
	"os"
	"path/filepath"

	"gamedock/internal/fileutil"
)

// hoistNestedRoot flattens build outputs that nest the web bundle one
// directory deeper than expected: when the destination root has no entry
// point and exactly one immediate subdirectory contains entry-point
// candidates, that subdirectory's contents are lifted to the root. Sibling
// entries stay where they are; on a name collision the lifted content
// wins. The shuffle goes through a staging sibling so a partial failure
// never leaves the destination half-moved.
func hoistNestedRoot(dest string) error {
	rootCandidates, err := listEntryPoints(dest)
	if err != nil || len(rootCandidates) > 0 {
		return err
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		return err
	}
	var withCandidates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		nestedCandidates, err := listEntryPoints(filepath.Join(dest, entry.Name()))
		if err != nil {
			return err
		}
		if len(nestedCandidates) > 0 {
			withCandidates = append(withCandidates, entry.Name())
		}
	}
	if len(withCandidates) != 1 {
		return nil
	}
	hoisted := withCandidates[0]

	staging := dest + ".hoist"
	if err := os.RemoveAll(staging); err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Name() == hoisted {
			continue
		}
		src := filepath.Join(dest, entry.Name())
		target := filepath.Join(staging, entry.Name())
		if entry.IsDir() {
			err = fileutil.CopyTree(src, target)
		} else {
			if err = os.MkdirAll(staging, 0o755); err == nil {
				err = fileutil.CopyFile(src, target)
			}
		}
		if err != nil {
			_ = os.RemoveAll(staging)
			return fmt.Errorf("stage sibling %s: %w", entry.Name(), err)
		}
	}
	if err := fileutil.CopyTree(filepath.Join(dest, hoisted), staging); err != nil {
		_ = os.RemoveAll(staging)
		return fmt.Errorf("stage hoisted content: %w", err)
	}

	// The staged copy is complete; only now touch the destination.
	if err := os.RemoveAll(dest); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}
	if err := os.Rename(staging, dest); err != nil {
		return fmt.Errorf("install hoisted content: %w", err)
	}
	return nil
}
