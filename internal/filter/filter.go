// Package filter decides which properties pass the active pill selection.
package filter

import (
	"strings"

	"property_listing/internal/domain"
)

// TopRatedMin is the rating a property needs to pass the Top Villa pill.
const TopRatedMin = 4.85

// Passes reports whether p satisfies every label in active.
// An empty set passes everything.
func Passes(p domain.Property, active domain.FilterSet) bool {
	if active.Len() == 0 {
		return true
	}
	for _, label := range active.Labels() {
		if !matches(p, label) {
			return false
		}
	}
	return true
}

// Apply returns the properties that pass, in input order. in is not modified.
func Apply(in []domain.Property, active domain.FilterSet) []domain.Property {
	out := make([]domain.Property, 0, len(in))
	for _, p := range in {
		if Passes(p, active) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Property, label domain.FilterLabel) bool {
	if label == domain.TopVilla {
		return p.Rating >= TopRatedMin
	}
	// loose on purpose: "villa" matches "Pool Villa"
	lc := strings.ToLower(label)
	for _, c := range p.Categories {
		if strings.Contains(strings.ToLower(c), lc) {
			return true
		}
	}
	return false
}
