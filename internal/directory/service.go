package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	pkgerrors "github.com/urevent360-byte/urevent360app-sub000/pkg/errors"
)

// Candidate lists are capped; the core defines no pagination.
const maxCandidates = 1000

type eventLoader interface {
	GetOwned(ctx context.Context, eventID, ownerID uuid.UUID) (*models.Event, error)
}

// VendorSearchInput carries the raw vendor search parameters before event
// context resolution.
type VendorSearchInput struct {
	EventID        *uuid.UUID
	ServiceType    string
	ServicesNeeded []string
	CulturalStyle  string
	Location       string
	ZipCode        string
	BudgetMin      *float64
	BudgetMax      *float64
}

// Service exposes the directory search operations.
type Service interface {
	SearchVenues(ctx context.Context, filter VenueFilter) ([]models.Venue, error)
	SearchVendors(ctx context.Context, actorID uuid.UUID, input VendorSearchInput) ([]models.Vendor, error)
	VendorsForStep(ctx context.Context, actorID, eventID uuid.UUID, serviceType string) ([]models.Vendor, error)
}

type service struct {
	repo   DirectoryRepository
	events eventLoader
}

// NewService builds a directory search service.
func NewService(repo DirectoryRepository, events eventLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("directory repository required")
	}
	if events == nil {
		return nil, fmt.Errorf("event loader required")
	}
	return &service{repo: repo, events: events}, nil
}

// SearchVenues resolves the filter and returns matching venues. Sentinel
// venue preferences short-circuit to an empty list without touching storage.
func (s *service) SearchVenues(ctx context.Context, filter VenueFilter) ([]models.Venue, error) {
	matcher := ResolveVenueFilter(filter)
	if matcher.Empty() {
		return []models.Venue{}, nil
	}

	candidates, err := s.repo.ListVenues(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list venues")
	}

	results := make([]models.Venue, 0, len(candidates))
	for _, venue := range candidates {
		if matcher.Matches(venue) {
			results = append(results, venue)
			if len(results) == maxCandidates {
				break
			}
		}
	}
	return results, nil
}

// SearchVendors resolves the filter, pulling service tags, cultural style,
// and location from the referenced event when the request omits them, then
// returns matching vendors.
func (s *service) SearchVendors(ctx context.Context, actorID uuid.UUID, input VendorSearchInput) ([]models.Vendor, error) {
	filter := VendorFilter{
		ServiceType:    input.ServiceType,
		ServicesNeeded: input.ServicesNeeded,
		CulturalStyle:  input.CulturalStyle,
		Location:       input.Location,
		ZipCode:        input.ZipCode,
		BudgetMin:      input.BudgetMin,
		BudgetMax:      input.BudgetMax,
	}

	if input.EventID != nil && *input.EventID != uuid.Nil {
		event, err := s.events.GetOwned(ctx, *input.EventID, actorID)
		if err != nil {
			return nil, err
		}
		if len(filter.ServicesNeeded) == 0 && len(event.ServicesNeeded) > 0 {
			filter.ServicesNeeded = event.ServicesNeeded
		}
		if strings.TrimSpace(filter.CulturalStyle) == "" {
			filter.CulturalStyle = event.CulturalStyle.String()
		}
		// event location is only a fallback
		if strings.TrimSpace(filter.Location) == "" && strings.TrimSpace(filter.ZipCode) == "" {
			filter.Location = event.Location
		}
	}

	return s.matchVendors(ctx, ResolveVendorFilter(filter))
}

// VendorsForStep returns vendors for one planner step, budget-bounded by the
// event's budget.
func (s *service) VendorsForStep(ctx context.Context, actorID, eventID uuid.UUID, serviceType string) ([]models.Vendor, error) {
	if strings.TrimSpace(serviceType) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "service type is required")
	}

	event, err := s.events.GetOwned(ctx, eventID, actorID)
	if err != nil {
		return nil, err
	}

	filter := VendorFilter{
		ServiceType:   serviceType,
		CulturalStyle: event.CulturalStyle.String(),
	}
	if event.Budget > 0 {
		budget := event.Budget
		filter.BudgetMax = &budget
	}

	return s.matchVendors(ctx, ResolveVendorFilter(filter))
}

func (s *service) matchVendors(ctx context.Context, matcher VendorMatcher) ([]models.Vendor, error) {
	candidates, err := s.repo.ListVendors(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vendors")
	}

	results := make([]models.Vendor, 0, len(candidates))
	for _, vendor := range candidates {
		if matcher.Matches(vendor) {
			results = append(results, vendor)
			if len(results) == maxCandidates {
				break
			}
		}
	}
	return results, nil
}
