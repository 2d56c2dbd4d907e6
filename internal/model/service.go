package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Availability is how a service can be delivered.
type Availability string

const (
	AvailabilityOnline  Availability = "online"
	AvailabilityOffline Availability = "offline"
	AvailabilityBoth    Availability = "both"
)

// Valid reports whether the availability is one of the known modes.
func (a Availability) Valid() bool {
	return a == AvailabilityOnline || a == AvailabilityOffline || a == AvailabilityBoth
}

// Service is a priced offering published by a provider. Deactivation is done
// by flipping IsActive rather than deleting the row; deleting a category
// nulls CategoryID on dependent services.
type Service struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	ProviderID   uuid.UUID       `json:"provider_id" gorm:"type:char(36);not null;index"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty" gorm:"type:char(36);index"`
	Name         string          `json:"name" gorm:"size:200;not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Availability Availability    `json:"availability_type" gorm:"type:varchar(10);not null"`
	IsActive     bool            `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Provider User             `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Category *ServiceCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
