package controllers

import (
	"net/http"

	"github.com/urevent360-byte/urevent360app-sub000/api/responses"
	budgetsvc "github.com/urevent360-byte/urevent360app-sub000/internal/budget"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/logger"
)

// BudgetOverview reports booked spend, payments made, and remaining balance.
func BudgetOverview(svc budgetsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "budget service unavailable"))
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

		overview, err := svc.Overview(r.Context(), actorID, eventID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, overview)
	}
}
