// Package model defines database models
package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Verified     bool   `gorm:"default:false" json:"isEmailVerified"`

	// One-time tokens live inline on the user row. The verification token
	// has no expiry and is cleared once consumed. The reset token is only
	// valid while ResetExpiresAt is in the future, and both columns are
	// cleared together when it is consumed or replaced.
	VerificationToken *string    `gorm:"index" json:"-"`
	ResetToken        *string    `gorm:"index" json:"-"`
	ResetExpiresAt    *time.Time `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Notes []Note `gorm:"foreignKey:UserID" json:"-"`
}
