package models

import "time"

// Snapshot is one persisted JSON blob per logical collection key
// (orders, calls, menu, table layouts, staff settings).
type Snapshot struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
