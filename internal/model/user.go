package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole is the closed set of account roles.
type UserRole string

const (
	// RoleSeeker marks an account that searches for and requests services.
	RoleSeeker UserRole = "seeker"
	// RoleProvider marks an account that publishes services and resolves requests.
	RoleProvider UserRole = "provider"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleSeeker || r == RoleProvider
}

// User represents a seeker or provider account. Role is fixed at registration.
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string         `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         UserRole       `json:"role" gorm:"type:varchar(10);not null;index"`
	Location     string         `json:"location,omitempty" gorm:"size:255"`
	Phone        string         `json:"phone,omitempty" gorm:"size:15"`
	Bio          string         `json:"bio,omitempty" gorm:"type:text"`
	Active       bool           `json:"active" gorm:"default:true;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Services []Service `json:"services,omitempty" gorm:"foreignKey:ProviderID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
