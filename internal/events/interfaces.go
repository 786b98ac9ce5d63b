package events

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

// EventRepository defines the persistence surface required by the event service.
type EventRepository interface {
	WithTx(tx *gorm.DB) EventRepository
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Event, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.EventStatus) error
}
