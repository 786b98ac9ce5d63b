package appointments

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

// AppointmentRepository defines the persistence surface for appointments.
type AppointmentRepository interface {
	WithTx(tx *gorm.DB) AppointmentRepository
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	Save(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	ListForActor(ctx context.Context, actorID uuid.UUID) ([]models.Appointment, error)
	ListConfirmedByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Appointment, error)
}
