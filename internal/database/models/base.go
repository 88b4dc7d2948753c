package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StateBlob stores one serialized AppState document under a key. It plays
// the role of a single local-storage slot.
type StateBlob struct {
	Key       string         `json:"key" gorm:"primaryKey;size:100"`
	Data      datatypes.JSON `json:"data" gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName returns the table name for StateBlob
func (StateBlob) TableName() string {
	return "app_states"
}

// BeforeSave stamps UpdatedAt even when the row is written through an upsert
func (b *StateBlob) BeforeSave(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return nil
}
