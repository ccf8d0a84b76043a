package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never returned in JSON

	// Enabled flips to true once the email verification code is confirmed.
	Enabled               bool       `gorm:"default:false" json:"enabled"`
	VerificationCode      *string    `gorm:"size:16" json:"-"`
	VerificationExpiresAt *time.Time `json:"-"`

	Role Role `gorm:"type:varchar(16);default:'USER'" json:"role"`

	Reservations []Reservation `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
