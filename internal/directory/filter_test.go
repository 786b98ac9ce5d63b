package directory

import (
	"testing"

	"github.com/lib/pq"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

func TestResolveVenueFilterSentinelShortCircuits(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []string{VenueSentinelOwnSpace, VenueSentinelHasVenue, "my own private space"} {
		matcher := ResolveVenueFilter(VenueFilter{
			PreferredVenueType: sentinel,
			ZipCode:            "10001",
		})
		if !matcher.Empty() {
			t.Fatalf("expected empty matcher for sentinel %q", sentinel)
		}
		if matcher.Matches(models.Venue{VenueType: "Hotel", Location: "Manhattan"}) {
			t.Fatalf("sentinel matcher should match nothing")
		}
	}
}

func TestVenueMatcherZipExpansion(t *testing.T) {
	t.Parallel()

	manhattan := models.Venue{VenueType: "Hotel", Location: "Manhattan, New York"}
	beverlyHills := models.Venue{VenueType: "Hotel", Location: "Beverly Hills"}

	matcher := ResolveVenueFilter(VenueFilter{ZipCode: "10001"})
	if !matcher.Matches(manhattan) {
		t.Fatal("expected Manhattan venue to match zip 10001")
	}
	if matcher.Matches(beverlyHills) {
		t.Fatal("Beverly Hills venue should not match zip 10001")
	}

	// unknown zip matches only itself
	matcher = ResolveVenueFilter(VenueFilter{ZipCode: "99999"})
	if matcher.Matches(manhattan) {
		t.Fatal("unknown zip should not match by city name")
	}
	if !matcher.Matches(models.Venue{VenueType: "Barn", Location: "Route 9, 99999"}) {
		t.Fatal("unknown zip should still match a literal occurrence")
	}
}

func TestVenueMatcherTypeSynonyms(t *testing.T) {
	t.Parallel()

	matcher := ResolveVenueFilter(VenueFilter{PreferredVenueType: "Hotel/Banquet Hall"})
	if !matcher.Matches(models.Venue{VenueType: "hotel"}) {
		t.Fatal("expected hotel to match synonym family")
	}
	if !matcher.Matches(models.Venue{VenueType: "Banquet Hall"}) {
		t.Fatal("expected banquet hall to match synonym family")
	}
	if matcher.Matches(models.Venue{VenueType: "Barn"}) {
		t.Fatal("barn should not match hotel family")
	}

	// preferred_venue_type supersedes venue_type
	matcher = ResolveVenueFilter(VenueFilter{VenueType: "Barn", PreferredVenueType: "Outdoor/Garden"})
	if matcher.Matches(models.Venue{VenueType: "Barn"}) {
		t.Fatal("venue_type should be superseded by preferred_venue_type")
	}
	if !matcher.Matches(models.Venue{VenueType: "Garden"}) {
		t.Fatal("expected garden to match outdoor family")
	}
}

func TestVenueMatcherRanges(t *testing.T) {
	t.Parallel()

	capMin, capMax := 100, 300
	budMin, budMax := 50.0, 120.0
	matcher := ResolveVenueFilter(VenueFilter{
		CapacityMin: &capMin,
		CapacityMax: &capMax,
		BudgetMin:   &budMin,
		BudgetMax:   &budMax,
	})

	if !matcher.Matches(models.Venue{Capacity: 100, PricePerPerson: 120}) {
		t.Fatal("bounds are inclusive")
	}
	if matcher.Matches(models.Venue{Capacity: 99, PricePerPerson: 80}) {
		t.Fatal("capacity below minimum should not match")
	}
	if matcher.Matches(models.Venue{Capacity: 150, PricePerPerson: 120.01}) {
		t.Fatal("price above maximum should not match")
	}
}

func TestVendorMatcherServiceSynonyms(t *testing.T) {
	t.Parallel()

	matcher := ResolveVendorFilter(VendorFilter{ServicesNeeded: []string{"Catering", "Music/DJ"}})

	for _, serviceType := range []string{"food", "Cuisine", "catering", "DJ", "sound"} {
		if !matcher.Matches(models.Vendor{ServiceType: serviceType}) {
			t.Fatalf("expected service type %q to match", serviceType)
		}
	}
	if matcher.Matches(models.Vendor{ServiceType: "photography"}) {
		t.Fatal("photography should not match catering or music")
	}
}

func TestVendorMatcherServicesNeededPrecedence(t *testing.T) {
	t.Parallel()

	matcher := ResolveVendorFilter(VendorFilter{
		ServiceType:    "photography",
		ServicesNeeded: []string{"catering"},
	})
	if matcher.Matches(models.Vendor{ServiceType: "photo"}) {
		t.Fatal("services_needed should take precedence over service_type")
	}
	if !matcher.Matches(models.Vendor{ServiceType: "food"}) {
		t.Fatal("expected catering synonym to match")
	}
}

func TestVendorMatcherCulturalStyle(t *testing.T) {
	t.Parallel()

	v1 := models.Vendor{ServiceType: "catering", CulturalSpecializations: pq.StringArray{"indian", "american"}}
	v2 := models.Vendor{ServiceType: "catering", CulturalSpecializations: pq.StringArray{"american"}}

	matcher := ResolveVendorFilter(VendorFilter{CulturalStyle: "indian"})
	if !matcher.Matches(v1) {
		t.Fatal("expected indian specialization to match")
	}
	if matcher.Matches(v2) {
		t.Fatal("vendor without the style should not match")
	}

	for _, style := range []string{"other", "", "not-a-style"} {
		matcher = ResolveVendorFilter(VendorFilter{CulturalStyle: style})
		if !matcher.Matches(v1) || !matcher.Matches(v2) {
			t.Fatalf("style %q should apply no cultural filter", style)
		}
	}
}

func TestVendorMatcherBudgetEitherPrice(t *testing.T) {
	t.Parallel()

	min, max := 100.0, 500.0
	matcher := ResolveVendorFilter(VendorFilter{BudgetMin: &min, BudgetMax: &max})

	if !matcher.Matches(models.Vendor{PricePerPerson: 200, BasePrice: 9000}) {
		t.Fatal("price_per_person in range should match")
	}
	if !matcher.Matches(models.Vendor{PricePerPerson: 9000, BasePrice: 450}) {
		t.Fatal("base_price in range should match")
	}
	if matcher.Matches(models.Vendor{PricePerPerson: 50, BasePrice: 5000}) {
		t.Fatal("neither price in range should not match")
	}
}

func TestServiceTagsMatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want bool
	}{
		{"Catering", "catering", true},
		{"Catering", "food", true},
		{"Music/DJ", "dj", true},
		{"dj", "sound", true},
		{"catering", "dj", false},
		{"", "catering", false},
		{"staffing", "staffing", true},
	}
	for _, tc := range cases {
		if got := ServiceTagsMatch(tc.a, tc.b); got != tc.want {
			t.Errorf("ServiceTagsMatch(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestResolveVendorFilterIsPure(t *testing.T) {
	t.Parallel()

	filter := VendorFilter{ServicesNeeded: []string{"catering"}, CulturalStyle: "indian", ZipCode: "60601"}
	vendor := models.Vendor{ServiceType: "food", CulturalSpecializations: pq.StringArray{"indian"}, Location: "Downtown Chicago"}

	first := ResolveVendorFilter(filter).Matches(vendor)
	second := ResolveVendorFilter(filter).Matches(vendor)
	if first != second || !first {
		t.Fatalf("expected stable pure result, got %v then %v", first, second)
	}
}
