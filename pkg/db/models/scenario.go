package models

import (
	"time"

	"github.com/google/uuid"
)

// Scenario is a named, immutable snapshot of a cart kept for comparison.
type Scenario struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	EventID         uuid.UUID         `gorm:"column:event_id;type:uuid;not null;index"`
	Name            string            `gorm:"column:name;not null"`
	Description     string            `gorm:"column:description"`
	SelectedVendors map[string]string `gorm:"column:selected_vendors;type:jsonb;serializer:json"`
	TotalCost       float64           `gorm:"column:total_cost;not null;default:0"`
	SavedAt         time.Time         `gorm:"column:saved_at;autoCreateTime"`
}
