// Package model holds the GORM-specific structs mapped to database tables.
package model

import "time"

// KVEntryModel is the GORM-specific struct for the 'kv_entries' table.
// Values are JSON documents; keys are namespaced as "{kind}:{id}".
type KVEntryModel struct {
	Key       string `gorm:"column:key;type:text;primaryKey"`
	Value     []byte `gorm:"column:value;type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KVEntryModel) TableName() string {
	return "kv_entries"
}
