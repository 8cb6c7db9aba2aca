package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry backs the Postgres store: one row per persisted document.
type KVEntry struct {
	Key       string         `gorm:"primaryKey;size:100" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
