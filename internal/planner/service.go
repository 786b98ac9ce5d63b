package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/keylock"
)

type eventLoader interface {
	GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error)
}

// Service exposes planner state and step catalog operations.
type Service interface {
	GetOrCreate(ctx context.Context, actorID, eventID uuid.UUID) (*models.PlannerState, error)
	Write(ctx context.Context, actorID, eventID uuid.UUID, patch StatePatch) (*models.PlannerState, error)
	SaveState(ctx context.Context, actorID, eventID uuid.UUID, input SaveStateInput) (*models.PlannerState, error)
	Steps(ctx context.Context, actorID, eventID uuid.UUID) ([]Step, error)
}

type service struct {
	repo   StateRepository
	events eventLoader
	locks  *keylock.KeyLock
}

// NewService builds a planner service.
func NewService(repo StateRepository, events eventLoader, locks *keylock.KeyLock) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("planner state repository required")
	}
	if events == nil {
		return nil, fmt.Errorf("event loader required")
	}
	if locks == nil {
		return nil, fmt.Errorf("key lock required")
	}
	return &service{repo: repo, events: events, locks: locks}, nil
}

// StatePatch is a merge-write over the planner state. Nil fields are left
// untouched; step_data entries are merged per key. set_budget moves only on
// an explicit write.
type StatePatch struct {
	CurrentStep    *int
	CompletedSteps []int64
	StepData       map[string]any
	SetBudget      *float64
}

// SaveStateInput replaces the navigational fields wholesale. Saving the same
// input twice yields the same state.
type SaveStateInput struct {
	CurrentStep    int
	CompletedSteps []int64
	StepData       map[string]any
}

// GetOrCreate returns the planner state for the event, creating it lazily on
// first read with the event's budget as set_budget.
func (s *service) GetOrCreate(ctx context.Context, actorID, eventID uuid.UUID) (*models.PlannerState, error) {
	event, err := s.events.GetOwned(ctx, eventID, actorID)
	if err != nil {
		return nil, err
	}

	var state *models.PlannerState
	err = s.locks.WithLock(eventID.String(), func() error {
		var lockErr error
		state, lockErr = s.loadOrCreate(ctx, event)
		return lockErr
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Write merges the patch into the planner state, creating it when absent.
func (s *service) Write(ctx context.Context, actorID, eventID uuid.UUID, patch StatePatch) (*models.PlannerState, error) {
	if patch.CurrentStep != nil && *patch.CurrentStep < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "current step must be non-negative")
	}
	if patch.SetBudget != nil && *patch.SetBudget < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "budget must be non-negative")
	}

	event, err := s.events.GetOwned(ctx, eventID, actorID)
	if err != nil {
		return nil, err
	}

	var state *models.PlannerState
	err = s.locks.WithLock(eventID.String(), func() error {
		current, lockErr := s.loadOrCreate(ctx, event)
		if lockErr != nil {
			return lockErr
		}

		if patch.CurrentStep != nil {
			current.CurrentStep = *patch.CurrentStep
		}
		if patch.CompletedSteps != nil {
			current.CompletedSteps = pq.Int64Array(patch.CompletedSteps)
		}
		if len(patch.StepData) > 0 {
			if current.StepData == nil {
				current.StepData = make(map[string]any, len(patch.StepData))
			}
			for key, value := range patch.StepData {
				current.StepData[key] = value
			}
		}
		if patch.SetBudget != nil {
			current.BudgetTracking.SetBudget = *patch.SetBudget
		}
		RecomputeBudget(current)

		saved, lockErr := s.repo.Save(ctx, current)
		if lockErr != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, lockErr, "save planner state")
		}
		state = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// SaveState upserts the full navigational state for the event.
func (s *service) SaveState(ctx context.Context, actorID, eventID uuid.UUID, input SaveStateInput) (*models.PlannerState, error) {
	if input.CurrentStep < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "current step must be non-negative")
	}

	event, err := s.events.GetOwned(ctx, eventID, actorID)
	if err != nil {
		return nil, err
	}

	var state *models.PlannerState
	err = s.locks.WithLock(eventID.String(), func() error {
		current, lockErr := s.loadOrCreate(ctx, event)
		if lockErr != nil {
			return lockErr
		}

		current.CurrentStep = input.CurrentStep
		current.CompletedSteps = pq.Int64Array(input.CompletedSteps)
		current.StepData = input.StepData
		RecomputeBudget(current)

		saved, lockErr := s.repo.Save(ctx, current)
		if lockErr != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, lockErr, "save planner state")
		}
		state = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Steps returns the step catalog filtered by the event's declared services.
func (s *service) Steps(ctx context.Context, actorID, eventID uuid.UUID) ([]Step, error) {
	event, err := s.events.GetOwned(ctx, eventID, actorID)
	if err != nil {
		return nil, err
	}
	return StepsForEvent(event), nil
}

func (s *service) loadOrCreate(ctx context.Context, event *models.Event) (*models.PlannerState, error) {
	state, err := s.repo.FindByEventID(ctx, event.ID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load planner state")
	}

	created, err := s.repo.Create(ctx, NewState(event))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create planner state")
	}
	return created, nil
}

// NewState builds the fresh planner state seeded from the event's budget.
func NewState(event *models.Event) *models.PlannerState {
	return &models.PlannerState{
		EventID:        event.ID,
		CurrentStep:    0,
		CompletedSteps: pq.Int64Array{},
		CartItems:      []models.CartItem{},
		StepData:       map[string]any{},
		BudgetTracking: models.BudgetTracking{
			SetBudget:     event.Budget,
			SelectedTotal: 0,
			Remaining:     event.Budget,
		},
	}
}
