package folio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Persister loads and saves the whole ledger state at once.
type Persister interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

// StoreFile is the name of the storage file inside the data directory.
const StoreFile = "portfolio.toml"

// FileStore persists a Snapshot as a single TOML file in a directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store backed by <dir>/portfolio.toml.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the storage file path.
func (s *FileStore) Path() string { return filepath.Join(s.dir, StoreFile) }

// Load reads the storage file.
//
// The directory is created if needed, and a missing file is initialized
// with an empty snapshot.
func (s *FileStore) Load() (*Snapshot, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, newError(ErrPersistence, "", "", fmt.Errorf("could not create data directory %q: %w", s.dir, err))
	}

	f, err := os.Open(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		snap := NewSnapshot()
		if err := s.Save(snap); err != nil {
			return nil, err
		}
		slog.Info("created empty portfolio file", "path", s.Path())
		return snap, nil
	}
	if err != nil {
		return nil, newError(ErrPersistence, "", "", fmt.Errorf("could not open %q: %w", s.Path(), err))
	}
	defer f.Close()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		return nil, newError(ErrPersistence, "", "", fmt.Errorf("malformed %q: %w", s.Path(), err))
	}
	return snap, nil
}

// Save replaces the storage file with the snapshot content.
//
// The content is written to a temporary file first, then renamed, so the
// storage file is never left half written.
func (s *FileStore) Save(snap *Snapshot) error {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, snap); err != nil {
		return newError(ErrPersistence, "", "", err)
	}

	tmp, err := os.CreateTemp(s.dir, StoreFile+".*")
	if err != nil {
		return newError(ErrPersistence, "", "", fmt.Errorf("could not create temporary file: %w", err))
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return newError(ErrPersistence, "", "", fmt.Errorf("could not write %q: %w", tmp.Name(), err))
	}
	if err := tmp.Close(); err != nil {
		return newError(ErrPersistence, "", "", fmt.Errorf("could not write %q: %w", tmp.Name(), err))
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return newError(ErrPersistence, "", "", fmt.Errorf("could not replace %q: %w", s.Path(), err))
	}
	return nil
}
