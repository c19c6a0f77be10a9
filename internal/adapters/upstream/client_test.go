package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"property_listing/internal/adapters/upstream"
	"property_listing/internal/domain"
)

func TestClient_ListProperties_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("missing api key header")
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode([]map[string]any{{"name": "Villa", "rating": 4.9}})
		}
	}))
	defer ts.Close()

	cl, err := upstream.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	got, err := cl.ListProperties(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "Villa" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_ListProperties_Envelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"name":"A"},{"name":"B"}]}`))
	}))
	defer ts.Close()

	cl, _ := upstream.New(ts.URL, "", 100)
	got, err := cl.ListProperties(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[1]["name"] != "B" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_ListProperties_FallsBackToLegacyPath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/listings", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"legacy"}]`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	cl, _ := upstream.New(ts.URL+"/", "", 100)
	got, err := cl.ListProperties(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "legacy" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_ListProperties_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := upstream.New(ts.URL, "", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.ListProperties(ctx)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_ListProperties_Forbidden(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	cl, _ := upstream.New(ts.URL, "", 100)
	if _, err := cl.ListProperties(context.Background()); !errors.Is(err, upstream.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestNew_RequiresBase(t *testing.T) {
	if _, err := upstream.New("  ", "", 1); err == nil {
		t.Fatalf("expected error for empty base")
	}
}
