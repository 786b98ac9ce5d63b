package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CartItem is a candidate vendor selection inside a PlannerState. Items are
// owned exclusively by their state and persist as part of its row; the id is
// only unique within one state.
type CartItem struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	VendorName  string    `json:"vendor_name"`
	ServiceType string    `json:"service_type"`
	ServiceName string    `json:"service_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
	AddedAt     time.Time `json:"added_at"`
}

// BudgetTracking is the live budget view carried on a PlannerState.
// remaining may go negative; it is never clamped.
type BudgetTracking struct {
	SetBudget     float64 `json:"set_budget"`
	SelectedTotal float64 `json:"selected_total"`
	Remaining     float64 `json:"remaining"`
}

// PlannerState is the per-event mutable workspace edited while selecting
// vendors. One row per event, created lazily on first planner read.
type PlannerState struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	EventID        uuid.UUID      `gorm:"column:event_id;type:uuid;not null;uniqueIndex"`
	CurrentStep    int            `gorm:"column:current_step;not null;default:0"`
	CompletedSteps pq.Int64Array  `gorm:"column:completed_steps;type:integer[]"`
	CartItems      []CartItem     `gorm:"column:cart_items;type:jsonb;serializer:json"`
	StepData       map[string]any `gorm:"column:step_data;type:jsonb;serializer:json"`
	BudgetTracking BudgetTracking `gorm:"column:budget_tracking;type:jsonb;serializer:json"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
