package memory_test

import (
	"context"
	"errors"
	"testing"

	"property_listing/internal/domain"
	"property_listing/internal/storage/memory"
)

func TestCatalog_ListReturnsCopies(t *testing.T) {
	c := memory.New()
	ctx := context.Background()

	first, err := c.ListProperties(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) == 0 {
		t.Fatalf("sample should not be empty")
	}
	first[0].Name = "mutated"
	first[0].Categories[0] = "mutated"

	second, _ := c.ListProperties(ctx)
	if second[0].Name == "mutated" || second[0].Categories[0] == "mutated" {
		t.Fatalf("catalog leaked internal state: %+v", second[0])
	}
}

func TestCatalog_GetProperty(t *testing.T) {
	c := memory.New(domain.Property{ID: "a", Name: "A"})

	p, err := c.GetProperty(context.Background(), "a")
	if err != nil || p.Name != "A" {
		t.Fatalf("get a: %+v, %v", p, err)
	}
	if _, err := c.GetProperty(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSample_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range memory.Sample() {
		if p.ID == "" || seen[p.ID] {
			t.Fatalf("bad or duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}
}
