package enums

import (
	"fmt"
	"strings"
)

// CulturalStyle is the fixed enumeration influencing vendor matching.
type CulturalStyle string

const (
	CulturalStyleIndian        CulturalStyle = "indian"
	CulturalStyleHispanic      CulturalStyle = "hispanic"
	CulturalStyleAmerican      CulturalStyle = "american"
	CulturalStyleJewish        CulturalStyle = "jewish"
	CulturalStyleAfrican       CulturalStyle = "african"
	CulturalStyleAsian         CulturalStyle = "asian"
	CulturalStyleMiddleEastern CulturalStyle = "middle_eastern"
	CulturalStyleOther         CulturalStyle = "other"
	CulturalStyleNone          CulturalStyle = "none"
)

var validCulturalStyles = []CulturalStyle{
	CulturalStyleIndian,
	CulturalStyleHispanic,
	CulturalStyleAmerican,
	CulturalStyleJewish,
	CulturalStyleAfrican,
	CulturalStyleAsian,
	CulturalStyleMiddleEastern,
	CulturalStyleOther,
	CulturalStyleNone,
}

// String implements fmt.Stringer.
func (c CulturalStyle) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CulturalStyle.
func (c CulturalStyle) IsValid() bool {
	for _, candidate := range validCulturalStyles {
		if candidate == c {
			return true
		}
	}
	return false
}

// Filters reports whether the style constrains vendor matching. The
// "other" value and the empty/none values apply no cultural filter.
func (c CulturalStyle) Filters() bool {
	switch c {
	case "", CulturalStyleOther, CulturalStyleNone:
		return false
	}
	return true
}

// ParseCulturalStyle converts raw input into a CulturalStyle.
func ParseCulturalStyle(value string) (CulturalStyle, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validCulturalStyles {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cultural style %q", value)
}
