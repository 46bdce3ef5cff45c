package schema

import "time"

// KeyValueStore stores ledger state keyed by retention class and key
type KeyValueStore struct {
	Retention int16     `gorm:"primaryKey;type:smallint;autoIncrement:false"`
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}
