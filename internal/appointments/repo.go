package appointments

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

// Repository exposes persistence operations for appointments.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an appointment repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) AppointmentRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts a new appointment.
func (r *Repository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	if appointment.Status == "" {
		appointment.Status = enums.AppointmentStatusRequested
	}
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return nil, err
	}
	return appointment, nil
}

// FindByID loads one appointment.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Save persists the full appointment row.
func (r *Repository) Save(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if err := r.db.WithContext(ctx).Save(appointment).Error; err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListForActor returns appointments where the actor is either party.
func (r *Repository) ListForActor(ctx context.Context, actorID uuid.UUID) ([]models.Appointment, error) {
	var rows []models.Appointment
	err := r.db.WithContext(ctx).
		Where("client_id = ? OR vendor_id = ?", actorID, actorID).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListConfirmedByEvent returns the event's client-confirmed, vendor-approved
// appointments.
func (r *Repository) ListConfirmedByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Appointment, error) {
	var rows []models.Appointment
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status = ? AND client_confirmed = ?", eventID, enums.AppointmentStatusConfirmed, true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
