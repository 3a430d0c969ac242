package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"gamedock/internal/services"
)

// Store persists the catalog document as a single JSON file. Every mutation
// is a whole-document read-modify-write; an advisory file lock is held
// across it so a concurrent invocation cannot interleave its read between
// our read and write.
type Store struct {
	path string
	lock *flock.Flock
}

// NewStore builds a store for the document at path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Load reads the current document. A missing file is an empty catalog, not
// an error.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Document{}, nil
		}
		return nil, services.Wrap(services.ErrCatalog, "catalog", "load", "read document", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, services.Wrap(services.ErrCatalog, "catalog", "load", "parse document", err)
	}
	return &doc, nil
}

// Update applies fn to a freshly-read document under the advisory lock and
// writes the result back atomically via a temp file rename.
func (s *Store) Update(fn func(*Document) error) error {
	if err := s.lock.Lock(); err != nil {
		return services.Wrap(services.ErrCatalog, "catalog", "update", "acquire lock", err)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	doc, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) write(doc *Document) error {
	if doc.Games == nil {
		doc.Games = []GameEntry{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return services.Wrap(services.ErrCatalog, "catalog", "save", "encode document", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return services.Wrap(services.ErrCatalog, "catalog", "save", "create directory", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return services.Wrap(services.ErrCatalog, "catalog", "save", "write document", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return services.Wrap(services.ErrCatalog, "catalog", "save", fmt.Sprintf("replace %s", filepath.Base(s.path)), err)
	}
	return nil
}
