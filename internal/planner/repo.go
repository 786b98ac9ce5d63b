package planner

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

// Repository exposes persistence operations for planner states.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a planner state repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) StateRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// FindByEventID loads the planner state for an event.
func (r *Repository) FindByEventID(ctx context.Context, eventID uuid.UUID) (*models.PlannerState, error) {
	var state models.PlannerState
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		First(&state).Error
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Create inserts a new planner state.
func (r *Repository) Create(ctx context.Context, state *models.PlannerState) (*models.PlannerState, error) {
	if state.ID == uuid.Nil {
		state.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(state).Error; err != nil {
		return nil, err
	}
	return state, nil
}

// Save persists the full planner state row.
func (r *Repository) Save(ctx context.Context, state *models.PlannerState) (*models.PlannerState, error) {
	if err := r.db.WithContext(ctx).Save(state).Error; err != nil {
		return nil, err
	}
	return state, nil
}
