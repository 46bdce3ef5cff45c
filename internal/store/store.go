package store

import (
	"context"
	"errors"
	"fmt"
)

// Class is the retention class of a stored key
type Class uint8

const (
	// ClassInstance holds short-lived deployment configuration and global scalars
	ClassInstance Class = 1
	// ClassPersistent holds long-lived per-item, per-token and per-owner records
	ClassPersistent Class = 2
)

// String returns the class name
func (c Class) String() string {
	switch c {
	case ClassInstance:
		return "instance"
	case ClassPersistent:
		return "persistent"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// Valid checks if the class is a known retention class
func (c Class) Valid() bool {
	return c == ClassInstance || c == ClassPersistent
}

var (
	// ErrInvalidClass is returned when a key is used with an unknown retention class
	ErrInvalidClass = errors.New("invalid retention class")
	// ErrEmptyKey is returned when an empty key is used
	ErrEmptyKey = errors.New("empty key")
	// ErrReadOnly is returned when Put is called inside View
	ErrReadOnly = errors.New("read-only transaction")
	// ErrClosed is returned when the store has been closed
	ErrClosed = errors.New("store closed")
)

// Tx is the view of the store available inside a single atomic operation.
// Reads observe the transaction's own pending writes.
type Tx interface {
	// Get returns the value stored under key and whether it exists
	Get(class Class, key string) ([]byte, bool, error)
	// Has reports whether key exists
	Has(class Class, key string) (bool, error)
	// Put stages value under key; it becomes visible to other operations only when the transaction commits
	Put(class Class, key string, value []byte) error
}

// Store is a durable key-value store with two retention classes.
// Every Update is applied atomically: all staged writes are committed together when fn returns nil,
// and none are when it returns an error. Updates on one store instance are serialized.
type Store interface {
	// Update runs fn inside a read-write transaction
	Update(ctx context.Context, fn func(tx Tx) error) error
	// View runs fn inside a read-only transaction
	View(ctx context.Context, fn func(tx Tx) error) error
	// Close releases the underlying resources
	Close() error
}

func validateKey(class Class, key string) error {
	if !class.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidClass, class)
	}
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
