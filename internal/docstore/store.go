package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNotExist indicates the backing document has never been written.
var ErrNotExist = errors.New("document does not exist")

// ErrCorrupt indicates the backing document is not well-formed JSON for the
// expected shape. Callers surface this as a server error, never a crash.
var ErrCorrupt = errors.New("corrupt document")

// Store reads and writes whole JSON documents under a base directory.
// There is no caching: every Load re-reads durable storage and every Save
// overwrites the document wholesale (last writer wins between processes).
type Store struct {
	fs  afero.Fs
	dir string
}

// New returns a Store rooted at dir on the given filesystem.
func New(fsys afero.Fs, dir string) *Store {
	return &Store{fs: fsys, dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads the named document into out.
func (s *Store) Load(name string, out any) error {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, ErrNotExist)
		}
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("load %s: %w: %v", name, ErrCorrupt, err)
	}
	return nil
}

// Save overwrites the named document with v.
func (s *Store) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// Ensure initializes the named document with def if it has never been written.
func (s *Store) Ensure(name string, def any) error {
	exists, err := afero.Exists(s.fs, s.path(name))
	if err != nil {
		return fmt.Errorf("stat %s: %w", name, err)
	}
	if exists {
		return nil
	}
	return s.Save(name, def)
}
