package directory

import (
	"strings"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
)

// VenueFilter carries the raw venue search parameters. Radius is accepted for
// client compatibility but not enforced geometrically.
type VenueFilter struct {
	ZipCode            string
	City               string
	Radius             string
	VenueType          string
	PreferredVenueType string
	CapacityMin        *int
	CapacityMax        *int
	BudgetMin          *float64
	BudgetMax          *float64
}

// VenueMatcher is the resolved, pure predicate over venues.
type VenueMatcher struct {
	empty         bool
	venueTypes    map[string]struct{}
	locationTerms []string
	capacityMin   *int
	capacityMax   *int
	budgetMin     *float64
	budgetMax     *float64
}

// ResolveVenueFilter translates the raw parameters into a predicate.
func ResolveVenueFilter(f VenueFilter) VenueMatcher {
	if IsVenueSentinel(f.PreferredVenueType) {
		return VenueMatcher{empty: true}
	}

	m := VenueMatcher{
		capacityMin: f.CapacityMin,
		capacityMax: f.CapacityMax,
		budgetMin:   f.BudgetMin,
		budgetMax:   f.BudgetMax,
	}

	// preferred_venue_type supersedes venue_type
	typeKey := f.PreferredVenueType
	if strings.TrimSpace(typeKey) == "" {
		typeKey = f.VenueType
	}
	if strings.TrimSpace(typeKey) != "" {
		m.venueTypes = expandVenueType(typeKey)
	}

	if strings.TrimSpace(f.ZipCode) != "" {
		m.locationTerms = expandZip(f.ZipCode)
	} else if city := strings.ToLower(strings.TrimSpace(f.City)); city != "" {
		m.locationTerms = []string{city}
	}

	return m
}

// Empty reports whether the filter short-circuits to no results.
func (m VenueMatcher) Empty() bool {
	return m.empty
}

// Matches applies the predicate to one venue.
func (m VenueMatcher) Matches(venue models.Venue) bool {
	if m.empty {
		return false
	}
	if m.venueTypes != nil {
		if _, ok := m.venueTypes[strings.ToLower(venue.VenueType)]; !ok {
			return false
		}
	}
	if !matchesLocation(venue.Location, m.locationTerms) {
		return false
	}
	if m.capacityMin != nil && venue.Capacity < *m.capacityMin {
		return false
	}
	if m.capacityMax != nil && venue.Capacity > *m.capacityMax {
		return false
	}
	if m.budgetMin != nil && venue.PricePerPerson < *m.budgetMin {
		return false
	}
	if m.budgetMax != nil && venue.PricePerPerson > *m.budgetMax {
		return false
	}
	return true
}

// VendorFilter carries vendor search parameters after event-context
// resolution: services, cultural style, and location fallbacks have already
// been applied by the caller.
type VendorFilter struct {
	ServiceType    string
	ServicesNeeded []string
	CulturalStyle  string
	Location       string
	ZipCode        string
	BudgetMin      *float64
	BudgetMax      *float64
}

// VendorMatcher is the resolved, pure predicate over vendors.
type VendorMatcher struct {
	serviceTypes  map[string]struct{}
	style         enums.CulturalStyle
	locationTerms []string
	budgetMin     *float64
	budgetMax     *float64
}

// ResolveVendorFilter translates the raw parameters into a predicate.
// services_needed takes precedence over service_type when both are present.
func ResolveVendorFilter(f VendorFilter) VendorMatcher {
	m := VendorMatcher{
		budgetMin: f.BudgetMin,
		budgetMax: f.BudgetMax,
	}

	tags := f.ServicesNeeded
	if len(tags) == 0 && strings.TrimSpace(f.ServiceType) != "" {
		tags = []string{f.ServiceType}
	}
	if len(tags) > 0 {
		m.serviceTypes = make(map[string]struct{})
		for _, tag := range tags {
			for member := range expandServiceTag(tag) {
				m.serviceTypes[member] = struct{}{}
			}
		}
	}

	if style, err := enums.ParseCulturalStyle(strings.TrimSpace(f.CulturalStyle)); err == nil {
		m.style = style
	}

	if strings.TrimSpace(f.ZipCode) != "" {
		m.locationTerms = expandZip(f.ZipCode)
	} else if loc := strings.ToLower(strings.TrimSpace(f.Location)); loc != "" {
		m.locationTerms = []string{loc}
	}

	return m
}

// Matches applies the predicate to one vendor.
func (m VendorMatcher) Matches(vendor models.Vendor) bool {
	if m.serviceTypes != nil {
		if _, ok := m.serviceTypes[strings.ToLower(vendor.ServiceType)]; !ok {
			return false
		}
	}
	if m.budgetMin != nil || m.budgetMax != nil {
		if !inBudget(vendor.PricePerPerson, m.budgetMin, m.budgetMax) &&
			!inBudget(vendor.BasePrice, m.budgetMin, m.budgetMax) {
			return false
		}
	}
	if m.style.Filters() {
		if !containsFold(vendor.CulturalSpecializations, m.style.String()) {
			return false
		}
	}
	if !matchesLocation(vendor.Location, m.locationTerms) {
		return false
	}
	return true
}

func inBudget(price float64, min, max *float64) bool {
	if min != nil && price < *min {
		return false
	}
	if max != nil && price > *max {
		return false
	}
	return true
}

func matchesLocation(location string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	haystack := strings.ToLower(location)
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}
