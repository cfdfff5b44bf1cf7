package models

// Project types. Serialized as-is; the wire form and the stored form are
// the same string labels.
const (
	ProjectTypeBackend  = "Backend"
	ProjectTypeFrontend = "Frontend"
	ProjectTypeIOS      = "IOS"
	ProjectTypeAndroid  = "Android"
)

type Project struct {
	BaseModel

	Title       string `gorm:"not null"`
	Description string
	Type        string `gorm:"not null"` // "Backend", "Frontend", "IOS", "Android"

	// Relationships
	Contributors []Contributor `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Issues       []Issue       `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
