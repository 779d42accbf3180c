package entities

import "time"

// User represents a registered account. The password is only ever stored as
// a bcrypt hash and never serialized.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"not null;size:80" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null;size:120" json:"email"`
	PasswordHash   string    `gorm:"not null;size:255" json:"-"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Collections []Collection `gorm:"foreignKey:UserID" json:"-"`
	Shares      []Share      `gorm:"foreignKey:SharedWithUserID" json:"-"`
}
