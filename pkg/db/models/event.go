package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

// Event is the user-owned aggregate describing one celebration.
type Event struct {
	ID                 uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	OwnerID            uuid.UUID           `gorm:"column:owner_id;type:uuid;not null;index"`
	Name               string              `gorm:"column:name;not null"`
	EventType          string              `gorm:"column:event_type"`
	Date               time.Time           `gorm:"column:date;not null"`
	Budget             float64             `gorm:"column:budget;not null;default:0"`
	GuestCount         int                 `gorm:"column:guest_count;not null;default:0"`
	Location           string              `gorm:"column:location"`
	CulturalStyle      enums.CulturalStyle `gorm:"column:cultural_style;default:'none'"`
	PreferredVenueType string              `gorm:"column:preferred_venue_type"`
	ServicesNeeded     pq.StringArray      `gorm:"column:services_needed;type:text[]"`
	Status             enums.EventStatus   `gorm:"column:status;not null;default:'planning'"`
	CreatedAt          time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
