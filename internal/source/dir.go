package source

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

type dirAccessor struct {
	fs   afero.Fs
	root string
}

// OpenDir wraps a filesystem directory as an Accessor.
func OpenDir(root string) Accessor {
	return NewDirAccessor(afero.NewOsFs(), root)
}

// NewDirAccessor wraps a directory on the provided filesystem, which lets
// tests run against an in-memory fs.
func NewDirAccessor(filesystem afero.Fs, root string) Accessor {
	return &dirAccessor{fs: filesystem, root: root}
}

func (d *dirAccessor) TopLevelEntries() ([]EntryMeta, error) {
	infos, err := afero.ReadDir(d.fs, d.root)
	if err != nil {
		return nil, fmt.Errorf("list package root: %w", err)
	}
	entries := make([]EntryMeta, 0, len(infos))
	for _, info := range infos {
		entry := EntryMeta{Path: info.Name(), Dir: info.IsDir()}
		if !info.IsDir() {
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (d *dirAccessor) EntriesUnder(prefix string) ([]EntryMeta, error) {
	prefix = normalizePrefix(prefix)
	start := d.root
	if prefix != "" {
		start = filepath.Join(d.root, filepath.FromSlash(prefix))
	}
	if ok, err := afero.DirExists(d.fs, start); err != nil || !ok {
		return nil, err
	}

	var entries []EntryMeta
	err := afero.Walk(d.fs, start, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return err
		}
		entries = append(entries, EntryMeta{Path: filepath.ToSlash(rel), Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk package: %w", err)
	}
	return entries, nil
}

func (d *dirAccessor) ReadEntry(entryPath string) ([]byte, error) {
	return afero.ReadFile(d.fs, filepath.Join(d.root, filepath.FromSlash(normalizePrefix(entryPath))))
}

func (d *dirAccessor) Exists(entryPath string) bool {
	full := filepath.Join(d.root, filepath.FromSlash(normalizePrefix(entryPath)))
	ok, err := afero.Exists(d.fs, full)
	return err == nil && ok
}

func (d *dirAccessor) ExtractAll(dest string) error {
	return afero.Walk(d.fs, d.root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if info.IsDir() {
			return d.fs.MkdirAll(target, 0o755)
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		return d.copyFile(path, target)
	})
}

func (d *dirAccessor) Close() error {
	return nil
}

func (d *dirAccessor) copyFile(src, dst string) error {
	data, err := afero.ReadFile(d.fs, src)
	if err != nil {
		return err
	}
	if err := d.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(d.fs, dst, data, 0o644)
}
