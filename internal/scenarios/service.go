package scenarios

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/keylock"
)

type eventLoader interface {
	GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error)
}

// Service exposes the scenario snapshot operations. Scenarios are immutable
// after creation and append-only per event.
type Service interface {
	Save(ctx context.Context, actorID, eventID uuid.UUID, input SaveScenarioInput) (*models.Scenario, error)
	List(ctx context.Context, actorID, eventID uuid.UUID) ([]models.Scenario, error)
	Delete(ctx context.Context, actorID, eventID, scenarioID uuid.UUID) error
}

type service struct {
	repo   ScenarioRepository
	events eventLoader
	locks  *keylock.KeyLock
}

// NewService builds a scenario service.
func NewService(repo ScenarioRepository, events eventLoader, locks *keylock.KeyLock) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("scenario repository required")
	}
	if events == nil {
		return nil, fmt.Errorf("event loader required")
	}
	if locks == nil {
		return nil, fmt.Errorf("key lock required")
	}
	return &service{repo: repo, events: events, locks: locks}, nil
}

// SaveScenarioInput captures the snapshot payload.
type SaveScenarioInput struct {
	Name            string
	Description     string
	SelectedVendors map[string]string
	TotalCost       float64
}

// Save persists a named snapshot for later comparison.
func (s *service) Save(ctx context.Context, actorID, eventID uuid.UUID, input SaveScenarioInput) (*models.Scenario, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "scenario name is required")
	}
	if input.TotalCost < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "total cost must be non-negative")
	}

	if _, err := s.events.GetOwned(ctx, eventID, actorID); err != nil {
		return nil, err
	}

	var saved *models.Scenario
	err := s.locks.WithLock(eventID.String(), func() error {
		scenario := &models.Scenario{
			EventID:         eventID,
			Name:            name,
			Description:     strings.TrimSpace(input.Description),
			SelectedVendors: input.SelectedVendors,
			TotalCost:       input.TotalCost,
		}
		created, lockErr := s.repo.Create(ctx, scenario)
		if lockErr != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, lockErr, "persist scenario")
		}
		saved = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// List returns the event's saved scenarios.
func (s *service) List(ctx context.Context, actorID, eventID uuid.UUID) ([]models.Scenario, error) {
	if _, err := s.events.GetOwned(ctx, eventID, actorID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list scenarios")
	}
	return rows, nil
}

// Delete removes a scenario owned through the event; the scenario must
// belong to the given event.
func (s *service) Delete(ctx context.Context, actorID, eventID, scenarioID uuid.UUID) error {
	if scenarioID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "scenario id is required")
	}

	if _, err := s.events.GetOwned(ctx, eventID, actorID); err != nil {
		return err
	}

	return s.locks.WithLock(eventID.String(), func() error {
		scenario, err := s.repo.FindByID(ctx, scenarioID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "scenario not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load scenario")
		}
		if scenario.EventID != eventID {
			return pkgerrors.New(pkgerrors.CodeNotFound, "scenario not found")
		}
		if err := s.repo.Delete(ctx, scenarioID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete scenario")
		}
		return nil
	})
}
