package source

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

type zipAccessor struct {
	reader *zip.ReadCloser
	path   string
}

// OpenZip opens a zip archive as an Accessor.
func OpenZip(path string) (Accessor, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	return &zipAccessor{reader: reader, path: path}, nil
}

func (z *zipAccessor) TopLevelEntries() ([]EntryMeta, error) {
	type topInfo struct {
		dir  bool
		size int64
	}
	top := make(map[string]topInfo)
	for _, file := range z.reader.File {
		name := cleanZipName(file.Name)
		if name == "" {
			continue
		}
		segment, rest, hasRest := strings.Cut(name, "/")
		info := top[segment]
		if hasRest && rest != "" {
			info.dir = true
		} else if file.FileInfo().IsDir() {
			info.dir = true
		} else {
			info.size = int64(file.UncompressedSize64)
		}
		top[segment] = info
	}

	names := make([]string, 0, len(top))
	for name := range top {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]EntryMeta, 0, len(names))
	for _, name := range names {
		info := top[name]
		entries = append(entries, EntryMeta{Path: name, Dir: info.dir, Size: info.size})
	}
	return entries, nil
}

func (z *zipAccessor) EntriesUnder(prefix string) ([]EntryMeta, error) {
	prefix = normalizePrefix(prefix)
	var entries []EntryMeta
	for _, file := range z.reader.File {
		name := cleanZipName(file.Name)
		if name == "" || file.FileInfo().IsDir() {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(name, prefix+"/") {
				continue
			}
		}
		entries = append(entries, EntryMeta{Path: name, Size: int64(file.UncompressedSize64)})
	}
	return entries, nil
}

func (z *zipAccessor) ReadEntry(entryPath string) ([]byte, error) {
	entryPath = normalizePrefix(entryPath)
	for _, file := range z.reader.File {
		if cleanZipName(file.Name) != entryPath || file.FileInfo().IsDir() {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", entryPath, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("entry %s: %w", entryPath, os.ErrNotExist)
}

func (z *zipAccessor) Exists(entryPath string) bool {
	entryPath = normalizePrefix(entryPath)
	if entryPath == "" {
		return true
	}
	for _, file := range z.reader.File {
		name := cleanZipName(file.Name)
		if name == entryPath || strings.HasPrefix(name, entryPath+"/") {
			return true
		}
	}
	return false
}

func (z *zipAccessor) ExtractAll(dest string) error {
	for _, file := range z.reader.File {
		name := cleanZipName(file.Name)
		if name == "" {
			continue
		}
		target := filepath.Join(dest, filepath.FromSlash(name))
		// Guard against entries that escape the destination.
		if rel, err := filepath.Rel(dest, target); err != nil || strings.HasPrefix(rel, "..") {
			return fmt.Errorf("archive entry %q escapes destination", file.Name)
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := extractZipFile(file, target); err != nil {
			return fmt.Errorf("extract %s: %w", name, err)
		}
	}
	return nil
}

func (z *zipAccessor) Close() error {
	return z.reader.Close()
}

func extractZipFile(file *zip.File, target string) error {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return err
	}
	return out.Close()
}

func cleanZipName(name string) string {
	name = strings.TrimPrefix(path.Clean(strings.ReplaceAll(name, "\\", "/")), "./")
	name = strings.Trim(name, "/")
	if name == "." {
		return ""
	}
	return name
}
