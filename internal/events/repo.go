package events

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

// Repository exposes persistence operations for events.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an event repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) EventRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts a new event.
func (r *Repository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Status == "" {
		event.Status = enums.EventStatusPlanning
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// FindByID loads an event by id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDAndOwner loads an event restricted to the provided owner.
func (r *Repository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListByOwner returns the owner's events, newest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Event, error) {
	var rows []models.Event
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus updates the status of an event.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.EventStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Update("status", status).Error
}
