package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

// CalendarRepository defines the persistence surface for calendar entries.
type CalendarRepository interface {
	WithTx(tx *gorm.DB) CalendarRepository
	Create(ctx context.Context, entry *models.CalendarEvent) (*models.CalendarEvent, error)
	CreateBatch(ctx context.Context, entries []models.CalendarEvent) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CalendarEvent, error)
	ListDueUnsent(ctx context.Context, before time.Time) ([]models.CalendarEvent, error)
	MarkNotified(ctx context.Context, id uuid.UUID) error
}

// Repository exposes persistence operations for calendar events.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a calendar repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) CalendarRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts a single calendar entry.
func (r *Repository) Create(ctx context.Context, entry *models.CalendarEvent) (*models.CalendarEvent, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateBatch inserts the entries in one statement.
func (r *Repository) CreateBatch(ctx context.Context, entries []models.CalendarEvent) error {
	if len(entries) == 0 {
		return nil
	}
	for i := range entries {
		if entries[i].ID == uuid.Nil {
			entries[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

// ListByUser returns a user's calendar, soonest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CalendarEvent, error) {
	var rows []models.CalendarEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListDueUnsent returns entries dated at or before the cutoff whose
// notification has not been dispatched yet.
func (r *Repository) ListDueUnsent(ctx context.Context, before time.Time) ([]models.CalendarEvent, error) {
	var rows []models.CalendarEvent
	err := r.db.WithContext(ctx).
		Where("date <= ? AND notification_sent = ?", before, false).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkNotified flags one entry as dispatched.
func (r *Repository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.CalendarEvent{}).
		Where("id = ?", id).
		Update("notification_sent", true).Error
}
