package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

type levelDBStore struct {
	mu sync.Mutex
	db *leveldb.DB
}

// NewLevelDBStore creates or opens a LevelDB-backed store at path
func NewLevelDBStore(path string) (Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", path, err)
	}
	return &levelDBStore{db: db}, nil
}

// levelDBKey prefixes the key with its retention class so both classes share one keyspace
func levelDBKey(class Class, key string) []byte {
	out := make([]byte, 0, len(key)+2)
	out = append(out, byte(class), ':')
	return append(out, key...)
}

type levelDBReader interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
}

func readLevelDB(r levelDBReader) readFunc {
	return func(class Class, key string) ([]byte, bool, error) {
		v, err := r.Get(levelDBKey(class, key), nil)
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, false, nil
		}
		if err != nil {
			if errors.Is(err, leveldb.ErrClosed) {
				return nil, false, ErrClosed
			}
			return nil, false, fmt.Errorf("failed to read %s/%s: %w", class, key, err)
		}
		return v, true, nil
	}
}

func (s *levelDBStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newBufferedTx(readLevelDB(s.db), false)
	if err := fn(tx); err != nil {
		return err
	}

	entries := tx.entries()
	if len(entries) == 0 {
		return nil
	}

	batch := new(leveldb.Batch)
	for _, e := range entries {
		batch.Put(levelDBKey(e.class, e.key), e.value)
	}
	if err := s.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		if errors.Is(err, leveldb.ErrClosed) {
			return ErrClosed
		}
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

func (s *levelDBStore) View(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	snap, err := s.db.GetSnapshot()
	if err != nil {
		if errors.Is(err, leveldb.ErrClosed) {
			return ErrClosed
		}
		return fmt.Errorf("failed to acquire snapshot: %w", err)
	}
	defer snap.Release()

	return fn(newBufferedTx(readLevelDB(snap), true))
}

func (s *levelDBStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
