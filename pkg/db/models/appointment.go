package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

// Appointment is a scheduled consultation between a client and a vendor.
// Client-confirmed, vendor-approved appointments gate finalization.
type Appointment struct {
	ID              uuid.UUID               `gorm:"column:id;type:uuid;primaryKey"`
	ClientID        uuid.UUID               `gorm:"column:client_id;type:uuid;not null;index"`
	VendorID        uuid.UUID               `gorm:"column:vendor_id;type:uuid;not null;index"`
	EventID         *uuid.UUID              `gorm:"column:event_id;type:uuid;index"`
	AppointmentType enums.AppointmentType   `gorm:"column:appointment_type;not null"`
	Date            time.Time               `gorm:"column:date;not null"`
	DurationMinutes int                     `gorm:"column:duration_minutes;not null;default:60"`
	Status          enums.AppointmentStatus `gorm:"column:status;not null;default:'requested'"`
	VendorResponse  string                  `gorm:"column:vendor_response"`
	ClientConfirmed bool                    `gorm:"column:client_confirmed;not null;default:false"`
	Notes           string                  `gorm:"column:notes"`
	CreatedAt       time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
