package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/internal/planner"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/keylock"
)

type stateRepository interface {
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*models.PlannerState, error)
	Create(ctx context.Context, state *models.PlannerState) (*models.PlannerState, error)
	Save(ctx context.Context, state *models.PlannerState) (*models.PlannerState, error)
}

type eventLoader interface {
	GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error)
}

// Service exposes the cart operations over the planner state.
type Service interface {
	Add(ctx context.Context, actorID, eventID uuid.UUID, input AddItemInput) (*models.PlannerState, error)
	Remove(ctx context.Context, actorID, eventID, itemID uuid.UUID) (*models.PlannerState, error)
	Clear(ctx context.Context, actorID, eventID uuid.UUID) (*models.PlannerState, error)
	List(ctx context.Context, actorID, eventID uuid.UUID) ([]models.CartItem, error)
}

type service struct {
	states stateRepository
	events eventLoader
	locks  *keylock.KeyLock
	now    func() time.Time
}

// NewService builds a cart service.
func NewService(states stateRepository, events eventLoader, locks *keylock.KeyLock) (Service, error) {
	if states == nil {
		return nil, fmt.Errorf("planner state repository required")
	}
	if events == nil {
		return nil, fmt.Errorf("event loader required")
	}
	if locks == nil {
		return nil, fmt.Errorf("key lock required")
	}
	return &service{states: states, events: events, locks: locks, now: time.Now}, nil
}

// AddItemInput captures the fields of a new cart item. Quantity defaults
// to 1.
type AddItemInput struct {
	VendorID    uuid.UUID
	VendorName  string
	ServiceType string
	ServiceName string
	Price       float64
	Quantity    int
	Notes       string
}

// Add appends a new item to the cart and recomputes the budget view. The
// same vendor may appear multiple times; no de-duplication is applied.
func (s *service) Add(ctx context.Context, actorID, eventID uuid.UUID, input AddItemInput) (*models.PlannerState, error) {
	if input.VendorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	if strings.TrimSpace(input.VendorName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor name is required")
	}
	if strings.TrimSpace(input.ServiceType) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "service type is required")
	}
	if input.Price < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	return s.mutate(ctx, actorID, eventID, func(state *models.PlannerState) error {
		state.CartItems = append(state.CartItems, models.CartItem{
			ID:          uuid.New(),
			VendorID:    input.VendorID,
			VendorName:  strings.TrimSpace(input.VendorName),
			ServiceType: strings.TrimSpace(input.ServiceType),
			ServiceName: strings.TrimSpace(input.ServiceName),
			Price:       input.Price,
			Quantity:    quantity,
			Notes:       input.Notes,
			AddedAt:     s.now().UTC(),
		})
		return nil
	})
}

// Remove drops the item with the given id and recomputes the budget view.
func (s *service) Remove(ctx context.Context, actorID, eventID, itemID uuid.UUID) (*models.PlannerState, error) {
	if itemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}

	return s.mutate(ctx, actorID, eventID, func(state *models.PlannerState) error {
		kept := state.CartItems[:0]
		found := false
		for _, item := range state.CartItems {
			if item.ID == itemID {
				found = true
				continue
			}
			kept = append(kept, item)
		}
		if !found {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		state.CartItems = kept
		return nil
	})
}

// Clear empties the cart and resets the selection totals.
func (s *service) Clear(ctx context.Context, actorID, eventID uuid.UUID) (*models.PlannerState, error) {
	return s.mutate(ctx, actorID, eventID, func(state *models.PlannerState) error {
		state.CartItems = []models.CartItem{}
		return nil
	})
}

// List returns the current cart in insertion order.
func (s *service) List(ctx context.Context, actorID, eventID uuid.UUID) ([]models.CartItem, error) {
	if _, err := s.events.GetOwned(ctx, eventID, actorID); err != nil {
		return nil, err
	}

	state, err := s.states.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.CartItem{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load planner state")
	}
	return state.CartItems, nil
}

func (s *service) mutate(ctx context.Context, actorID, eventID uuid.UUID, apply func(*models.PlannerState) error) (*models.PlannerState, error) {
	event, err := s.events.GetOwned(ctx, eventID, actorID)
	if err != nil {
		return nil, err
	}

	var result *models.PlannerState
	err = s.locks.WithLock(eventID.String(), func() error {
		state, lockErr := s.states.FindByEventID(ctx, eventID)
		if lockErr != nil {
			if !errors.Is(lockErr, gorm.ErrRecordNotFound) {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, lockErr, "load planner state")
			}
			state, lockErr = s.states.Create(ctx, planner.NewState(event))
			if lockErr != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, lockErr, "create planner state")
			}
		}

		if applyErr := apply(state); applyErr != nil {
			return applyErr
		}
		planner.RecomputeBudget(state)

		saved, lockErr := s.states.Save(ctx, state)
		if lockErr != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, lockErr, "save planner state")
		}
		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
