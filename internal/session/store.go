package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// StateFileName is the file name used under the temp directory.
const StateFileName = "pomo-cli-state"

// DefaultPath returns the state file location when nothing overrides it.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), StateFileName)
}

// Store reads and writes one state file.
type Store struct {
	Path string
}

// NewStore returns a store for path, or for DefaultPath when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{Path: path}
}

// LockPath is the advisory lock file guarding Path.
func (s *Store) LockPath() string {
	return s.Path + ".lock"
}

// Lock takes the advisory lock for a load/modify/save sequence. It retries
// until ctx is done. The returned function releases the lock.
func (s *Store) Lock(ctx context.Context) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return nil, err
	}

	fl := flock.New(s.LockPath())
	locked, err := fl.TryLockContext(ctx, 25*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", s.LockPath(), err)
	}
	if !locked {
		return nil, fmt.Errorf("lock %s: not acquired", s.LockPath())
	}
	return fl.Unlock, nil
}

// Load reads the record. A missing file yields defaults and no error. An
// unreadable or corrupt file yields defaults together with an error
// wrapping ErrCorruptState, which callers should report as a warning.
func (s *Store) Load() (Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	r, err := Decode(data)
	if err != nil {
		return Default(), err
	}
	return r, nil
}

// Save writes the record atomically: temp file, then rename.
func (s *Store) Save(r Record) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
