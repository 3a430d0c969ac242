package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EntryMeta describes one entry inside a package. Path is slash-separated
// and relative to the package root.
type EntryMeta struct {
	Path string
	Dir  bool
	Size int64
}

// Accessor is the uniform read-only view over a package. Implementations
// must behave identically whether backed by a zip codec or a filesystem
// walk; the classifier depends on that parity.
type Accessor interface {
	// TopLevelEntries lists the immediate children of the package root.
	TopLevelEntries() ([]EntryMeta, error)
	// EntriesUnder lists every file beneath the given slash-separated
	// prefix ("" for the whole package). Directory entries are omitted.
	EntriesUnder(prefix string) ([]EntryMeta, error)
	// ReadEntry returns the content of a file entry.
	ReadEntry(path string) ([]byte, error)
	// Exists reports whether a file or directory exists at the path.
	Exists(path string) bool
	// ExtractAll materializes the full package under dest.
	ExtractAll(dest string) error
	Close() error
}

// Open inspects the path and returns a zip-backed accessor for archives or
// a directory-backed accessor for folders.
func Open(path string) (Accessor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("inspect package: %w", err)
	}
	if info.IsDir() {
		return OpenDir(path), nil
	}
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return OpenZip(path)
	}
	return nil, errors.New("package must be a directory or a .zip archive")
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.ReplaceAll(prefix, "\\", "/"), "/")
	return prefix
}
