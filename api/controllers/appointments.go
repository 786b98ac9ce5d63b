package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/urevent360-byte/urevent360app-sub000/api/responses"
	"github.com/urevent360-byte/urevent360app-sub000/api/validators"
	appointmentsvc "github.com/urevent360-byte/urevent360app-sub000/internal/appointments"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/logger"
)

type createAppointmentRequest struct {
	VendorID        uuid.UUID  `json:"vendor_id" validate:"required"`
	EventID         *uuid.UUID `json:"event_id,omitempty"`
	AppointmentType string     `json:"appointment_type" validate:"required"`
	Date            time.Time  `json:"date" validate:"required"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

type respondAppointmentRequest struct {
	Response string     `json:"response" validate:"required,oneof=approved rejected rescheduled"`
	NewDate  *time.Time `json:"new_date,omitempty"`
}

// CreateAppointment requests a consultation with a vendor.
func CreateAppointment(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "appointment service unavailable"))
			return
		}

		actorID, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload createAppointmentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		appointment, err := svc.Create(r.Context(), actorID, appointmentsvc.CreateAppointmentInput{
			VendorID:        payload.VendorID,
			EventID:         payload.EventID,
			AppointmentType: payload.AppointmentType,
			Date:            payload.Date,
			DurationMinutes: payload.DurationMinutes,
			Notes:           payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, appointment)
	}
}

// RespondAppointment records the vendor's answer to a requested appointment.
func RespondAppointment(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "appointment service unavailable"))
			return
		}

		actorID, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		appointmentID, err := parseUUIDParam(r, "appointmentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload respondAppointmentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		appointment, err := svc.Respond(r.Context(), actorID, appointmentID, appointmentsvc.RespondInput{
			Response: payload.Response,
			NewDate:  payload.NewDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, appointment)
	}
}

// ConfirmAppointment locks in a vendor-approved appointment for the client.
func ConfirmAppointment(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "appointment service unavailable"))
			return
		}

		actorID, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		appointmentID, err := parseUUIDParam(r, "appointmentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		appointment, err := svc.Confirm(r.Context(), actorID, appointmentID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, appointment)
	}
}

// ListAppointments returns appointments where the caller is either party.
func ListAppointments(svc appointmentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "appointment service unavailable"))
			return
		}

		actorID, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		appointments, err := svc.ListForActor(r.Context(), actorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, appointments)
	}
}
