// Package file stores each slot as one JSON file inside a directory. Writes go
// to a temp file that is renamed over the previous value, so a crash never
// leaves a half-written slot behind.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Slot is a directory-backed slot store.
type Slot struct {
	dir string
	mu  sync.Mutex
}

// New returns a Slot rooted at dir, creating the directory if needed.
func New(dir string) (*Slot, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create slot dir: %w", err)
	}
	return &Slot{dir: dir}, nil
}

// Path returns the file backing key.
func (s *Slot) Path(key string) string {
	return filepath.Join(s.dir, fileName(key))
}

// Get reads the file for key. A missing file reports ok=false.
func (s *Slot) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot file: %w", err)
	}
	return data, true, nil
}

// Set replaces the file for key atomically.
func (s *Slot) Set(_ context.Context, key string, value []byte) (retErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+fileName(key)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(key)); err != nil {
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}

// Ping checks that the directory is still there.
func (s *Slot) Ping(context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("stat slot dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("slot dir %s is not a directory", s.dir)
	}
	return nil
}

// Close is a no-op.
func (s *Slot) Close() error { return nil }

// fileName maps a key to a safe file name: anything outside [A-Za-z0-9._-]
// becomes '_'.
func fileName(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, key)
	if strings.Trim(safe, ".") == "" {
		safe = "_" + safe
	}
	return safe + ".json"
}
