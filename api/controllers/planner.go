package controllers

import (
	"net/http"

	"github.com/urevent360-byte/urevent360app-sub000/api/responses"
	"github.com/urevent360-byte/urevent360app-sub000/api/validators"
	plannersvc "github.com/urevent360-byte/urevent360app-sub000/internal/planner"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/logger"
)

type plannerPatchRequest struct {
	CurrentStep    *int           `json:"current_step,omitempty"`
	CompletedSteps []int64        `json:"completed_steps,omitempty"`
	StepData       map[string]any `json:"step_data,omitempty"`
	SetBudget      *float64       `json:"set_budget,omitempty"`
}

type plannerSaveRequest struct {
	CurrentStep    int            `json:"current_step" validate:"gte=0"`
	CompletedSteps []int64        `json:"completed_steps"`
	StepData       map[string]any `json:"step_data"`
}

// GetPlannerState returns the planner state for an event, creating it lazily.
func GetPlannerState(svc plannersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "planner service unavailable"))
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

		state, err := svc.GetOrCreate(r.Context(), actorID, eventID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, state)
	}
}

// WritePlannerState applies a partial update to the planner state.
func WritePlannerState(svc plannersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "planner service unavailable"))
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

		var payload plannerPatchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.Write(r.Context(), actorID, eventID, plannersvc.StatePatch{
			CurrentStep:    payload.CurrentStep,
			CompletedSteps: payload.CompletedSteps,
			StepData:       payload.StepData,
			SetBudget:      payload.SetBudget,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, state)
	}
}

// SavePlannerState replaces the navigational fields wholesale.
func SavePlannerState(svc plannersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "planner service unavailable"))
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

		var payload plannerSaveRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.SaveState(r.Context(), actorID, eventID, plannersvc.SaveStateInput{
			CurrentStep:    payload.CurrentStep,
			CompletedSteps: payload.CompletedSteps,
			StepData:       payload.StepData,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, state)
	}
}

// ListPlannerSteps returns the step catalog filtered to the event's needs.
func ListPlannerSteps(svc plannersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "planner service unavailable"))
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

		steps, err := svc.Steps(r.Context(), actorID, eventID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, steps)
	}
}
