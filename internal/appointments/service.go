package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/internal/calendar"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/keylock"
)

type eventLoader interface {
	GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error)
}

// Service exposes the appointment ledger operations.
type Service interface {
	Create(ctx context.Context, actorID uuid.UUID, input CreateAppointmentInput) (*models.Appointment, error)
	Respond(ctx context.Context, actorID, appointmentID uuid.UUID, input RespondInput) (*models.Appointment, error)
	Confirm(ctx context.Context, actorID, appointmentID uuid.UUID) (*models.Appointment, error)
	ListForActor(ctx context.Context, actorID uuid.UUID) ([]models.Appointment, error)
}

type service struct {
	repo     AppointmentRepository
	calendar calendar.CalendarRepository
	events   eventLoader
	locks    *keylock.KeyLock
}

// NewService builds an appointment service.
func NewService(repo AppointmentRepository, cal calendar.CalendarRepository, events eventLoader, locks *keylock.KeyLock) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("appointment repository required")
	}
	if cal == nil {
		return nil, fmt.Errorf("calendar repository required")
	}
	if events == nil {
		return nil, fmt.Errorf("event loader required")
	}
	if locks == nil {
		return nil, fmt.Errorf("key lock required")
	}
	return &service{repo: repo, calendar: cal, events: events, locks: locks}, nil
}

// CreateAppointmentInput captures a client's consultation request.
type CreateAppointmentInput struct {
	VendorID        uuid.UUID
	EventID         *uuid.UUID
	AppointmentType string
	Date            time.Time
	DurationMinutes int
	Notes           string
}

// RespondInput captures a vendor's response to a requested appointment.
type RespondInput struct {
	Response string
	NewDate  *time.Time
}

// Create records a consultation request; the appointment starts in
// `requested` awaiting the vendor's response.
func (s *service) Create(ctx context.Context, actorID uuid.UUID, input CreateAppointmentInput) (*models.Appointment, error) {
	if actorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client id is required")
	}
	if input.VendorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	appointmentType, err := enums.ParseAppointmentType(input.AppointmentType)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid appointment type")
	}
	if input.Date.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "appointment date is required")
	}
	duration := input.DurationMinutes
	if duration == 0 {
		duration = 60
	}
	if duration < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "duration must be positive")
	}

	if input.EventID != nil && *input.EventID != uuid.Nil {
		if _, err := s.events.GetOwned(ctx, *input.EventID, actorID); err != nil {
			return nil, err
		}
	}

	appointment := &models.Appointment{
		ClientID:        actorID,
		VendorID:        input.VendorID,
		EventID:         input.EventID,
		AppointmentType: appointmentType,
		Date:            input.Date,
		DurationMinutes: duration,
		Status:          enums.AppointmentStatusRequested,
		Notes:           input.Notes,
	}
	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist appointment")
	}
	return created, nil
}

// Respond applies a vendor transition to a requested appointment:
// approved moves it to confirmed, rejected cancels it, rescheduled moves the
// date and awaits a fresh client confirmation. Transitions serialize on the
// appointment id, so only one response can leave the requested state.
func (s *service) Respond(ctx context.Context, actorID, appointmentID uuid.UUID, input RespondInput) (*models.Appointment, error) {
	response, err := enums.ParseVendorResponse(input.Response)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid response value")
	}
	if response == enums.VendorResponseRescheduled && (input.NewDate == nil || input.NewDate.IsZero()) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "new_date is required to reschedule")
	}

	var saved *models.Appointment
	err = s.locks.WithLock(appointmentID.String(), func() error {
		appointment, lockErr := s.load(ctx, appointmentID)
		if lockErr != nil {
			return lockErr
		}
		if appointment.VendorID != actorID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "only the vendor may respond")
		}
		if appointment.Status.IsTerminal() {
			return pkgerrors.New(pkgerrors.CodeValidation, "appointment accepts no further transitions")
		}
		if appointment.Status != enums.AppointmentStatusRequested {
			return pkgerrors.New(pkgerrors.CodeValidation, "invalid status transition")
		}

		appointment.VendorResponse = response.String()
		switch response {
		case enums.VendorResponseApproved:
			appointment.Status = enums.AppointmentStatusConfirmed
		case enums.VendorResponseRejected:
			appointment.Status = enums.AppointmentStatusCancelled
		case enums.VendorResponseRescheduled:
			appointment.Status = enums.AppointmentStatusRescheduled
			appointment.Date = *input.NewDate
		}

		saved, lockErr = s.repo.Save(ctx, appointment)
		if lockErr != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, lockErr, "save appointment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Confirm records the client's personal confirmation of a vendor-approved
// appointment and places the meeting on both calendars.
func (s *service) Confirm(ctx context.Context, actorID, appointmentID uuid.UUID) (*models.Appointment, error) {
	var saved *models.Appointment
	err := s.locks.WithLock(appointmentID.String(), func() error {
		appointment, lockErr := s.load(ctx, appointmentID)
		if lockErr != nil {
			return lockErr
		}
		if appointment.ClientID != actorID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "only the client may confirm")
		}
		if appointment.Status != enums.AppointmentStatusConfirmed {
			return pkgerrors.New(pkgerrors.CodePrecondition, "appointment must be approved by the vendor before confirming")
		}
		if appointment.ClientConfirmed {
			saved = appointment
			return nil
		}

		appointment.ClientConfirmed = true
		saved, lockErr = s.repo.Save(ctx, appointment)
		if lockErr != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, lockErr, "save appointment")
		}

		relatedID := saved.ID
		end := saved.Date.Add(time.Duration(saved.DurationMinutes) * time.Minute)
		entries := []models.CalendarEvent{
			{
				UserID:      saved.ClientID,
				Title:       "Vendor Appointment",
				Description: "Confirmed consultation",
				EventType:   enums.CalendarEventTypeAppointment,
				Date:        saved.Date,
				EndDate:     &end,
				RelatedID:   &relatedID,
			},
			{
				UserID:      saved.VendorID,
				Title:       "Client Appointment",
				Description: "Confirmed consultation",
				EventType:   enums.CalendarEventTypeAppointment,
				Date:        saved.Date,
				EndDate:     &end,
				RelatedID:   &relatedID,
			},
		}
		if lockErr := s.calendar.CreateBatch(ctx, entries); lockErr != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, lockErr, "schedule calendar entries")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ListForActor returns the actor's appointments, as client or vendor.
func (s *service) ListForActor(ctx context.Context, actorID uuid.UUID) ([]models.Appointment, error) {
	if actorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "actor id is required")
	}
	rows, err := s.repo.ListForActor(ctx, actorID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list appointments")
	}
	return rows, nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "appointment id is required")
	}
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "appointment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load appointment")
	}
	return appointment, nil
}
