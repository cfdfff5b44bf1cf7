package models

import "time"

// BaseModel is embedded by every persisted entity. Rows are deleted for
// real (no gorm soft-delete column) so that cascades and removals are
// observable through ordinary queries.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
