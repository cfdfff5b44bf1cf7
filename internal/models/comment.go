package models

import "time"

type Comment struct {
	BaseModel

	IssueID     uint      `gorm:"not null;index"`
	Description string    `gorm:"not null"`
	AuthorID    uint      `gorm:"not null;index"`
	CreatedTime time.Time `gorm:"not null"` // immutable, server-set

	// Relationships
	Issue  Issue `gorm:"foreignKey:IssueID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Author User  `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
