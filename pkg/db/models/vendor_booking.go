package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

// VendorBooking is a confirmed, priced commitment with one vendor for one
// event. Key fields are immutable; only DepositPaid and Status mutate.
type VendorBooking struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	EventID         uuid.UUID           `gorm:"column:event_id;type:uuid;not null;index"`
	VendorID        uuid.UUID           `gorm:"column:vendor_id;type:uuid;not null;index"`
	VendorName      string              `gorm:"column:vendor_name;not null"`
	ServiceType     string              `gorm:"column:service_type;not null"`
	ServiceName     string              `gorm:"column:service_name"`
	Cost            float64             `gorm:"column:cost;not null"`
	DepositAmount   float64             `gorm:"column:deposit_amount;not null"`
	DepositPaid     bool                `gorm:"column:deposit_paid;not null;default:false"`
	FinalPaymentDue time.Time           `gorm:"column:final_payment_due;not null"`
	Status          enums.BookingStatus `gorm:"column:status;not null;default:'confirmed'"`
	InvoiceID       string              `gorm:"column:invoice_id;not null"`
	EventDate       time.Time           `gorm:"column:event_date;not null"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
