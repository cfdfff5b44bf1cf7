package models

import "time"

// Issue enumerations, stored and serialized as string labels.
const (
	IssueTagBug         = "Bug"
	IssueTagTask        = "Task"
	IssueTagImprovement = "Improvement"

	IssuePriorityLow    = "Low"
	IssuePriorityMedium = "Medium"
	IssuePriorityHigh   = "High"

	IssueStatusToDo    = "ToDo"
	IssueStatusOnGoing = "OnGoing"
	IssueStatusDone    = "Done"
)

type Issue struct {
	BaseModel

	ProjectID   uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Tag         string    `gorm:"not null"`              // "Bug", "Task", "Improvement"
	Priority    string    `gorm:"not null"`              // "Low", "Medium", "High"
	Status      string    `gorm:"not null;default:ToDo"` // "ToDo", "OnGoing", "Done"
	AuthorID    uint      `gorm:"not null;index"`        // the creating user, set server-side
	AssigneeID  uint      `gorm:"not null"`              // defaults to the author at creation
	CreatedTime time.Time `gorm:"not null"`              // immutable, server-set

	// Relationships
	Project  Project   `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Assignee User      `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:IssueID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
