package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
)

// Service exposes event aggregate operations.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateEventInput) (*models.Event, error)
	GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error)
	ListOwn(ctx context.Context, ownerID uuid.UUID) ([]models.Event, error)
}

type service struct {
	repo EventRepository
}

// NewService builds an event service backed by the provided repository.
func NewService(repo EventRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("event repository required")
	}
	return &service{repo: repo}, nil
}

// CreateEventInput captures the payload required to create an event.
type CreateEventInput struct {
	Name               string
	EventType          string
	Date               time.Time
	Budget             float64
	GuestCount         int
	Location           string
	CulturalStyle      string
	PreferredVenueType string
	ServicesNeeded     []string
}

// Create validates the input and persists a new planning event.
func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input CreateEventInput) (*models.Event, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event name is required")
	}
	if input.Date.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event date is required")
	}
	if input.Budget < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "budget must be non-negative")
	}
	if input.GuestCount < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "guest count must be non-negative")
	}

	style := enums.CulturalStyleNone
	if trimmed := strings.TrimSpace(input.CulturalStyle); trimmed != "" {
		parsed, err := enums.ParseCulturalStyle(trimmed)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cultural style")
		}
		style = parsed
	}

	event := &models.Event{
		OwnerID:            ownerID,
		Name:               name,
		EventType:          strings.TrimSpace(input.EventType),
		Date:               input.Date,
		Budget:             input.Budget,
		GuestCount:         input.GuestCount,
		Location:           strings.TrimSpace(input.Location),
		CulturalStyle:      style,
		PreferredVenueType: strings.TrimSpace(input.PreferredVenueType),
		ServicesNeeded:     pq.StringArray(input.ServicesNeeded),
		Status:             enums.EventStatusPlanning,
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist event")
	}
	return created, nil
}

// GetOwned loads an event and enforces ownership. Missing and foreign events
// are indistinguishable to the caller.
func (s *service) GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error) {
	if eventID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event id is required")
	}
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id is required")
	}
	event, err := s.repo.FindByIDAndOwner(ctx, eventID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "event not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load event")
	}
	return event, nil
}

// ListOwn returns every event owned by the actor.
func (s *service) ListOwn(ctx context.Context, ownerID uuid.UUID) ([]models.Event, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id is required")
	}
	rows, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list events")
	}
	return rows, nil
}
