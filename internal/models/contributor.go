package models

// Contributor roles. Every project has exactly one Author link, created
// in the same transaction as the project itself.
const (
	RoleAuthor      = "Author"
	RoleContributor = "Contributor"
)

// Contributor links a User to a Project. The unique index on
// (user, project) is the mechanism that prevents duplicate links under
// concurrent add attempts.
type Contributor struct {
	BaseModel

	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_project"`
	ProjectID uint   `gorm:"not null;uniqueIndex:idx_user_project"`
	Role      string `gorm:"not null"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
