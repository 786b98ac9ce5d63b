package directory

import "strings"

// The synonym and ZIP tables are authoritative inputs, intentionally small.
// Keys are matched case-insensitively; unknown keys expand to themselves.

var venueTypeSynonyms = map[string][]string{
	"hotel/banquet hall":     {"Hotel", "Banquet Hall"},
	"restaurant":             {"Restaurant"},
	"outdoor/garden":         {"Garden", "Outdoor"},
	"community center":       {"Community Center"},
	"beach/waterfront":       {"Beach", "Waterfront"},
	"private residence":      {"Private", "Residence"},
	"church/religious venue": {"Church", "Religious"},
	"conference center":      {"Conference Center"},
	"barn":                   {"Barn"},
}

var serviceSynonyms = map[string][]string{
	"catering":       {"food", "cuisine"},
	"decoration":     {"decor", "floral"},
	"photography":    {"photo", "photographer"},
	"videography":    {"video", "videographer"},
	"music/dj":       {"music", "dj", "audio", "sound"},
	"entertainment":  {"performer", "artist"},
	"transportation": {"transport", "limo"},
	"security":       {"guard"},
	"cleaning":       {"cleanup"},
	"lighting":       {"light"},
}

var zipExpansions = map[string][]string{
	"10001": {"New York", "NYC", "Manhattan"},
	"90210": {"Beverly Hills", "Los Angeles", "LA"},
	"60601": {"Chicago", "Downtown Chicago"},
	"33101": {"Miami", "Miami Beach"},
	"30301": {"Atlanta", "Downtown Atlanta"},
}

// Sentinel venue preferences meaning the client does not need a venue search.
const (
	VenueSentinelOwnSpace = "My Own Private Space"
	VenueSentinelHasVenue = "I Already Have a Venue"
)

// IsVenueSentinel reports whether the preferred venue type short-circuits
// venue search to an empty result.
func IsVenueSentinel(preferred string) bool {
	switch strings.ToLower(strings.TrimSpace(preferred)) {
	case strings.ToLower(VenueSentinelOwnSpace), strings.ToLower(VenueSentinelHasVenue):
		return true
	}
	return false
}

// serviceFamilies maps every lowercased member of a service synonym family
// (canonical key included) to the full family set.
var serviceFamilies = buildServiceFamilies()

func buildServiceFamilies() map[string]map[string]struct{} {
	families := make(map[string]map[string]struct{})
	for key, synonyms := range serviceSynonyms {
		family := make(map[string]struct{}, len(synonyms)+1)
		family[key] = struct{}{}
		for _, syn := range synonyms {
			family[strings.ToLower(syn)] = struct{}{}
		}
		for member := range family {
			families[member] = family
		}
	}
	return families
}

// expandServiceTag returns the lowercased set of service types matching the
// given tag. Tags outside every synonym family match only themselves.
func expandServiceTag(tag string) map[string]struct{} {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if normalized == "" {
		return nil
	}
	if family, ok := serviceFamilies[normalized]; ok {
		return family
	}
	return map[string]struct{}{normalized: {}}
}

// ServiceTagsMatch reports whether two service tags refer to the same
// service, directly or through the synonym table.
func ServiceTagsMatch(a, b string) bool {
	left := strings.ToLower(strings.TrimSpace(a))
	right := strings.ToLower(strings.TrimSpace(b))
	if left == "" || right == "" {
		return false
	}
	if left == right {
		return true
	}
	if family, ok := serviceFamilies[left]; ok {
		if _, member := family[right]; member {
			return true
		}
	}
	return false
}

// expandVenueType returns the lowercased set of venue types matching the
// given key.
func expandVenueType(key string) map[string]struct{} {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if normalized == "" {
		return nil
	}
	allowed := map[string]struct{}{normalized: {}}
	for _, syn := range venueTypeSynonyms[normalized] {
		allowed[strings.ToLower(syn)] = struct{}{}
	}
	return allowed
}

// expandZip returns the ZIP itself plus its city expansions, lowercased for
// substring matching. Unknown ZIPs expand to themselves only.
func expandZip(zip string) []string {
	normalized := strings.TrimSpace(zip)
	if normalized == "" {
		return nil
	}
	terms := []string{strings.ToLower(normalized)}
	for _, city := range zipExpansions[normalized] {
		terms = append(terms, strings.ToLower(city))
	}
	return terms
}
