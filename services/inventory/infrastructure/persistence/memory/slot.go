// Package memory keeps storage slots in process memory. Values are lost on restart.
package memory

import (
	"context"
	"sync"
)

// Slot is an in-memory slot store.
type Slot struct {
	mu     sync.RWMutex
	values map[string][]byte
	// failWith, when set, is returned by every Set. Lets tests exercise write failures.
	failWith error
}

// New returns an empty Slot.
func New() *Slot {
	return &Slot{values: make(map[string][]byte)}
}

// Get returns a copy of the stored value.
func (s *Slot) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores a copy of value under key.
func (s *Slot) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// FailWrites makes every later Set return err; pass nil to restore writes.
func (s *Slot) FailWrites(err error) {
	s.mu.Lock()
	s.failWith = err
	s.mu.Unlock()
}

// Ping always succeeds.
func (s *Slot) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Slot) Close() error { return nil }
