package scenarios

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

// ScenarioRepository defines the persistence surface for saved scenarios.
type ScenarioRepository interface {
	Create(ctx context.Context, scenario *models.Scenario) (*models.Scenario, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Scenario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Scenario, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository exposes persistence operations for scenarios.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a scenario repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new scenario snapshot.
func (r *Repository) Create(ctx context.Context, scenario *models.Scenario) (*models.Scenario, error) {
	if scenario.ID == uuid.Nil {
		scenario.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(scenario).Error; err != nil {
		return nil, err
	}
	return scenario, nil
}

// ListByEvent returns the event's scenarios, newest first.
func (r *Repository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Scenario, error) {
	var rows []models.Scenario
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("saved_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads one scenario.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scenario).Error; err != nil {
		return nil, err
	}
	return &scenario, nil
}

// Delete removes one scenario.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Scenario{}).Error
}
