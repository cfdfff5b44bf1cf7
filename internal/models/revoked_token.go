package models

import "time"

// RevokedToken blacklists a token that was handed to /logout. The
// signature part of the JWT is enough to identify it; rows past
// ExpiresAt are dead weight the token would have expired anyway.
type RevokedToken struct {
	BaseModel

	Signature string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}
