package controllers

import (
	"net/http"

	"github.com/urevent360-byte/urevent360app-sub000/api/responses"
	"github.com/urevent360-byte/urevent360app-sub000/api/validators"
	bookingsvc "github.com/urevent360-byte/urevent360app-sub000/internal/bookings"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/logger"
)

type recordPaymentRequest struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	PaymentType     string  `json:"payment_type" validate:"required"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
}

// ListBookings returns the confirmed bookings of an event the caller owns.
func ListBookings(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		actorID, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		eventID, err := parseUUIDParam(r, "eventID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bookings, err := svc.ListForEvent(r.Context(), actorID, eventID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, bookings)
	}
}

// RecordPayment logs a payment against a booking.
func RecordPayment(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		actorID, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bookingID, err := parseUUIDParam(r, "bookingID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload recordPaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payment, err := svc.RecordPayment(r.Context(), actorID, bookingID, bookingsvc.RecordPaymentInput{
			Amount:          payload.Amount,
			PaymentType:     payload.PaymentType,
			PaymentMethod:   payload.PaymentMethod,
			ReferenceNumber: payload.ReferenceNumber,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, payment)
	}
}
