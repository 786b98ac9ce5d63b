package models

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a bookable location searchable by the directory.
type Venue struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name           string    `gorm:"column:name;not null"`
	VenueType      string    `gorm:"column:venue_type;not null;index"`
	Description    string    `gorm:"column:description"`
	Location       string    `gorm:"column:location"`
	Capacity       int       `gorm:"column:capacity;not null;default:0"`
	PricePerPerson float64   `gorm:"column:price_per_person;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
