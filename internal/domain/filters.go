package domain

import (
	"net/url"
	"sort"
	"strings"
)

type FilterLabel = string

// TopVilla is the one preset that filters on rating instead of categories.
const TopVilla FilterLabel = "Top Villa"

// PresetFilters is the ordered list of pills shown on the listing page.
var PresetFilters = []FilterLabel{
	TopVilla,
	"Self Checkin",
	"Free Reschedule",
	"Beachfront",
	"Mountain View",
	"Pool",
	"Pet Friendly",
	"Free Parking",
	"Cabin",
	"Luxury",
	"Apartment",
	"Villa",
}

// FilterSet is an immutable set of active filter labels. The zero value is
// the empty set.
type FilterSet struct {
	m map[FilterLabel]struct{}
}

// NewFilterSet keeps labels verbatim; only empty strings and duplicates are dropped.
func NewFilterSet(labels ...FilterLabel) FilterSet {
	m := make(map[FilterLabel]struct{}, len(labels))
	for _, l := range labels {
		if l != "" {
			m[l] = struct{}{}
		}
	}
	return FilterSet{m: m}
}

// ParseFilterSet reads repeated `filter` params and comma separated `filters`.
// Whitespace around each query value is trimmed here and nowhere else.
func ParseFilterSet(q url.Values) FilterSet {
	var labels []FilterLabel
	for _, v := range q["filter"] {
		labels = append(labels, strings.TrimSpace(v))
	}
	for _, v := range q["filters"] {
		for _, part := range strings.Split(v, ",") {
			labels = append(labels, strings.TrimSpace(part))
		}
	}
	return NewFilterSet(labels...)
}

func (s FilterSet) Len() int { return len(s.m) }

func (s FilterSet) Has(l FilterLabel) bool {
	_, ok := s.m[l]
	return ok
}

// Toggle returns a new set with l added if absent or removed if present.
func (s FilterSet) Toggle(l FilterLabel) FilterSet {
	next := make(map[FilterLabel]struct{}, len(s.m)+1)
	for k := range s.m {
		next[k] = struct{}{}
	}
	if _, ok := next[l]; ok {
		delete(next, l)
	} else if l != "" {
		next[l] = struct{}{}
	}
	return FilterSet{m: next}
}

// Labels returns the members sorted, so output is stable across calls.
func (s FilterSet) Labels() []FilterLabel {
	out := make([]FilterLabel, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (s FilterSet) Equal(o FilterSet) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for k := range s.m {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

// Query encodes the set as repeated `filter` params.
func (s FilterSet) Query() string {
	v := url.Values{}
	for _, l := range s.Labels() {
		v.Add("filter", l)
	}
	return v.Encode()
}

func (s FilterSet) String() string { return strings.Join(s.Labels(), ",") }
