package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/urevent360-byte/urevent360app-sub000/api/responses"
	directorysvc "github.com/urevent360-byte/urevent360app-sub000/internal/directory"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/logger"
)

// SearchVenues filters the venue directory by the query parameters.
func SearchVenues(svc directorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "directory service unavailable"))
			return
		}

		q := r.URL.Query()
		filter := directorysvc.VenueFilter{
			ZipCode:            strings.TrimSpace(q.Get("zip_code")),
			City:               strings.TrimSpace(q.Get("city")),
			Radius:             strings.TrimSpace(q.Get("radius")),
			VenueType:          strings.TrimSpace(q.Get("venue_type")),
			PreferredVenueType: strings.TrimSpace(q.Get("preferred_venue_type")),
		}

		var err error
		if filter.CapacityMin, err = queryIntPtr(r, "capacity_min"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if filter.CapacityMax, err = queryIntPtr(r, "capacity_max"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if filter.BudgetMin, err = queryFloatPtr(r, "budget_min"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if filter.BudgetMax, err = queryFloatPtr(r, "budget_max"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		venues, err := svc.SearchVenues(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, venues)
	}
}

// SearchVendors filters the vendor directory, optionally seeded from an event.
func SearchVendors(svc directorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "directory service unavailable"))
			return
		}

		actorID, err := actorFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		q := r.URL.Query()
		input := directorysvc.VendorSearchInput{
			ServiceType:   strings.TrimSpace(q.Get("service_type")),
			CulturalStyle: strings.TrimSpace(q.Get("cultural_style")),
			Location:      strings.TrimSpace(q.Get("location")),
			ZipCode:       strings.TrimSpace(q.Get("zip_code")),
		}
		if needed := strings.TrimSpace(q.Get("services_needed")); needed != "" {
			for _, s := range strings.Split(needed, ",") {
				if s = strings.TrimSpace(s); s != "" {
					input.ServicesNeeded = append(input.ServicesNeeded, s)
				}
			}
		}
		if raw := strings.TrimSpace(q.Get("event_id")); raw != "" {
			eventID, parseErr := uuid.Parse(raw)
			if parseErr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid event_id"))
				return
			}
			input.EventID = &eventID
		}
		if input.BudgetMin, err = queryFloatPtr(r, "budget_min"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.BudgetMax, err = queryFloatPtr(r, "budget_max"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vendors, err := svc.SearchVendors(r.Context(), actorID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, vendors)
	}
}

// VendorsForStep lists vendors matching a planner step's service type.
func VendorsForStep(svc directorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "directory service unavailable"))
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

		serviceType := strings.TrimSpace(chi.URLParam(r, "serviceType"))
		if serviceType == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "service type is required"))
			return
		}

		vendors, err := svc.VendorsForStep(r.Context(), actorID, eventID, serviceType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, vendors)
	}
}
