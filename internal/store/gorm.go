package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-tipping-ledger/internal/store/schema"
)

type gormStore struct {
	mu     sync.Mutex
	db     *gorm.DB
	closed bool
}

// NewGormStore creates a store on top of the key_value_store table
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// AutoMigrate creates the key_value_store table when it does not exist.
// PostgreSQL deployments use db/init_pg_db.sql instead.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schema.KeyValueStore{}); err != nil {
		return fmt.Errorf("failed to migrate key_value_store: %w", err)
	}
	return nil
}

// SQLiteDSN adds a busy timeout to a SQLite path so writers from other connections wait for the writer lock
func SQLiteDSN(path string) string {
	if strings.Contains(path, "busy_timeout") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)"
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// writerLockKey names the row every Update upserts before reading anything.
// The row lock it takes is held until commit, so writers on other processes sharing the database queue behind it.
const writerLockKey = "lock/writer"

// reader reads committed rows through db, which is either the pool or an open transaction
func reader(ctx context.Context, db *gorm.DB) readFunc {
	return func(class Class, key string) ([]byte, bool, error) {
		var kv schema.KeyValueStore
		err := db.WithContext(ctx).
			Where("retention = ? AND key = ?", int16(class), key).
			First(&kv).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, nil
			}
			return nil, false, fmt.Errorf("failed to read %s/%s: %w", class, key, err)
		}
		return []byte(kv.Value), true, nil
	}
}

func upsert(db *gorm.DB, class Class, key string, value []byte) error {
	kv := schema.KeyValueStore{
		Retention: int16(class),
		Key:       key,
		Value:     string(value),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "retention"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
}

func (s *gormStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	// reads, fn and writes share one database transaction
	return s.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		if err := upsert(db, ClassInstance, writerLockKey, []byte("1")); err != nil {
			return fmt.Errorf("failed to take writer lock: %w", err)
		}

		tx := newBufferedTx(reader(ctx, db), false)
		if err := fn(tx); err != nil {
			return err
		}

		for _, e := range tx.entries() {
			if err := upsert(db, e.class, e.key, e.value); err != nil {
				return fmt.Errorf("failed to write %s/%s: %w", e.class, e.key, err)
			}
		}
		return nil
	})
}

func (s *gormStore) View(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrClosed
	}

	return fn(newBufferedTx(reader(ctx, s.db), true))
}

// Close marks the store closed; the *gorm.DB is owned by the caller
func (s *gormStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
