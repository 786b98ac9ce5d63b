package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

// Payment records money applied against a vendor booking. The core does not
// cap the sum of payments at the booking cost.
type Payment struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	BookingID       uuid.UUID         `gorm:"column:booking_id;type:uuid;not null;index"`
	VendorID        uuid.UUID         `gorm:"column:vendor_id;type:uuid;not null"`
	EventID         uuid.UUID         `gorm:"column:event_id;type:uuid;not null;index"`
	Amount          float64           `gorm:"column:amount;not null"`
	PaymentType     enums.PaymentType `gorm:"column:payment_type;not null"`
	PaymentMethod   string            `gorm:"column:payment_method"`
	PaymentDate     time.Time         `gorm:"column:payment_date;not null"`
	ReferenceNumber string            `gorm:"column:reference_number"`
	Status          string            `gorm:"column:status;not null;default:'completed'"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
}
