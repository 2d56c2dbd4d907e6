package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchStatus is the lifecycle state of a match request.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
	// MatchStatusCompleted is part of the status vocabulary but no API
	// operation transitions into it; it is reserved for a future completion
	// flow.
	MatchStatusCompleted MatchStatus = "completed"
)

// TransitionTarget reports whether the status is a state a provider may move
// a pending request into.
func (s MatchStatus) TransitionTarget() bool {
	return s == MatchStatusAccepted || s == MatchStatusRejected
}

// MatchRequest is a seeker's proposal to engage a specific provider's
// service. The referenced service must belong to the referenced provider,
// and only one pending request may exist per (seeker, provider, service).
type MatchRequest struct {
	ID         uuid.UUID   `json:"id" gorm:"type:char(36);primaryKey"`
	SeekerID   uuid.UUID   `json:"seeker_id" gorm:"type:char(36);not null;index"`
	ProviderID uuid.UUID   `json:"provider_id" gorm:"type:char(36);not null;index"`
	ServiceID  uuid.UUID   `json:"service_id" gorm:"type:char(36);not null;index"`
	Status     MatchStatus `json:"status" gorm:"type:varchar(10);not null;default:'pending';index"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	// Relations
	Seeker   User    `json:"seeker,omitempty" gorm:"foreignKey:SeekerID"`
	Provider User    `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Service  Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

// BeforeCreate sets UUID before creating the record.
func (m *MatchRequest) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
