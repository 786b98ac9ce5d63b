package planner

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

// StateRepository defines the persistence surface for planner states.
type StateRepository interface {
	WithTx(tx *gorm.DB) StateRepository
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*models.PlannerState, error)
	Create(ctx context.Context, state *models.PlannerState) (*models.PlannerState, error)
	Save(ctx context.Context, state *models.PlannerState) (*models.PlannerState, error)
}
