package store

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	data   map[entryKey][]byte
	closed bool
}

// NewMemoryStore creates a non-durable in-process store, used for development and tests
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[entryKey][]byte)}
}

func (s *memoryStore) read(class Class, key string) ([]byte, bool, error) {
	v, ok := s.data[entryKey{class, key}]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(v), true, nil
}

func (s *memoryStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	tx := newBufferedTx(s.read, false)
	if err := fn(tx); err != nil {
		return err
	}
	for _, e := range tx.entries() {
		s.data[e.entryKey] = e.value
	}
	return nil
}

func (s *memoryStore) View(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	return fn(newBufferedTx(s.read, true))
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
