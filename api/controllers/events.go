package controllers

import (
	"net/http"
	"time"

	"github.com/urevent360-byte/urevent360app-sub000/api/responses"
	"github.com/urevent360-byte/urevent360app-sub000/api/validators"
	eventsvc "github.com/urevent360-byte/urevent360app-sub000/internal/events"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/logger"
)

type createEventRequest struct {
	Name               string    `json:"name" validate:"required,min=1,max=200"`
	EventType          string    `json:"event_type" validate:"required"`
	Date               time.Time `json:"date" validate:"required"`
	Budget             float64   `json:"budget" validate:"gte=0"`
	GuestCount         int       `json:"guest_count" validate:"gte=0"`
	Location           string    `json:"location,omitempty"`
	CulturalStyle      string    `json:"cultural_style,omitempty"`
	PreferredVenueType string    `json:"preferred_venue_type,omitempty"`
	ServicesNeeded     []string  `json:"services_needed,omitempty"`
}

func (p createEventRequest) toInput() eventsvc.CreateEventInput {
	return eventsvc.CreateEventInput{
		Name:               p.Name,
		EventType:          p.EventType,
		Date:               p.Date,
		Budget:             p.Budget,
		GuestCount:         p.GuestCount,
		Location:           p.Location,
		CulturalStyle:      p.CulturalStyle,
		PreferredVenueType: p.PreferredVenueType,
		ServicesNeeded:     p.ServicesNeeded,
	}
}

// CreateEvent registers a new planning event owned by the caller.
func CreateEvent(svc eventsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "event service unavailable"))
			return
		}

		actorID, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload createEventRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, err := svc.Create(r.Context(), actorID, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, event)
	}
}

// ListEvents returns the caller's events.
func ListEvents(svc eventsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "event service unavailable"))
			return
		}

		actorID, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		events, err := svc.ListOwn(r.Context(), actorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, events)
	}
}

// GetEvent returns a single event the caller owns.
func GetEvent(svc eventsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "event service unavailable"))
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

		event, err := svc.GetOwned(r.Context(), eventID, actorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, event)
	}
}
