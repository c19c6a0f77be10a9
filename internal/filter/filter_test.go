package filter_test

import (
	"reflect"
	"strings"
	"testing"

	"property_listing/internal/domain"
	"property_listing/internal/filter"
	"property_listing/internal/storage/memory"
)

func rec(rating float64, cats ...string) domain.Property {
	return domain.Property{Name: "p", Rating: rating, Categories: cats}
}

func TestPasses_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		p      domain.Property
		labels []string
		want   bool
	}{
		{"top villa passes on rating", rec(4.9, "Pool Villa"), []string{"Top Villa"}, true},
		{"conjunction fails on second label", rec(4.9, "Pool Villa"), []string{"Top Villa", "Beachfront"}, false},
		{"substring case-insensitive", rec(4.5, "Mountain Cabin"), []string{"Cabin"}, true},
		{"lowercase label matches", rec(4.5, "Pool Villa"), []string{"villa"}, true},
		{"threshold inclusive", rec(4.85, "x"), []string{"Top Villa"}, true},
		{"just below threshold", rec(4.849, "x"), []string{"Top Villa"}, false},
		{"nil categories fail", rec(5), []string{"Pool"}, false},
		{"nil categories still pass top villa", rec(5), []string{"Top Villa"}, true},
		{"empty set passes", rec(0), nil, true},
		{"top villa is not a substring match", rec(4.0, "Top Villa Deluxe"), []string{"Top Villa"}, false},
		{"leading space is part of the label", rec(4.5, "Pool Villa"), []string{" villa"}, true},
		{"trailing space is part of the label", rec(4.5, "Pool Villa"), []string{"villa "}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := filter.Passes(tc.p, domain.NewFilterSet(tc.labels...))
			if got != tc.want {
				t.Fatalf("Passes(%+v, %v) = %v, want %v", tc.p, tc.labels, got, tc.want)
			}
		})
	}
}

func TestPasses_Laws(t *testing.T) {
	records := memory.Sample()
	records = append(records, rec(4.9, "Pool Villa"), rec(4.5, "Mountain Cabin"), rec(3))
	labels := append([]string{"villa", "CABIN", "nothing-matches"}, domain.PresetFilters...)

	for _, r := range records {
		if !filter.Passes(r, domain.FilterSet{}) {
			t.Fatalf("empty set must pass %q", r.Name)
		}
		for _, l := range labels {
			single := filter.Passes(r, domain.NewFilterSet(l))
			var want bool
			if l == domain.TopVilla {
				want = r.Rating >= 4.85
			} else {
				for _, c := range r.Categories {
					if strings.Contains(strings.ToLower(c), strings.ToLower(l)) {
						want = true
					}
				}
			}
			if single != want {
				t.Fatalf("%q with %q: got %v, want %v", r.Name, l, single, want)
			}
			for _, l2 := range labels {
				both := filter.Passes(r, domain.NewFilterSet(l, l2))
				if both != (single && filter.Passes(r, domain.NewFilterSet(l2))) {
					t.Fatalf("conjunction law broken for %q with %q,%q", r.Name, l, l2)
				}
			}
		}
	}
}

func TestApply_PreservesOrderAndInput(t *testing.T) {
	in := []domain.Property{
		{Name: "a", Rating: 4.9, Categories: []string{"Beachfront"}},
		{Name: "b", Rating: 4.1, Categories: []string{"Beachfront Villa"}},
		{Name: "c", Rating: 4.7, Categories: []string{"Cabin"}},
		{Name: "d", Rating: 4.95, Categories: []string{"beachfront"}},
	}
	snapshot := make([]domain.Property, len(in))
	copy(snapshot, in)

	got := filter.Apply(in, domain.NewFilterSet("Beachfront"))
	var names []string
	for _, p := range got {
		names = append(names, p.Name)
	}
	if want := []string{"a", "b", "d"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	if !reflect.DeepEqual(in, snapshot) {
		t.Fatalf("input mutated")
	}
	if n := len(filter.Apply(in, domain.FilterSet{})); n != len(in) {
		t.Fatalf("empty set kept %d of %d", n, len(in))
	}
	if out := filter.Apply(nil, domain.NewFilterSet("Pool")); out == nil || len(out) != 0 {
		t.Fatalf("nil input should yield empty non-nil slice, got %#v", out)
	}
}
