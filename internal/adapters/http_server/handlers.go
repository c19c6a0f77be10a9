package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"property_listing/internal/adapters/observability"
	"property_listing/internal/adapters/web"
	"property_listing/internal/app"
	"property_listing/internal/domain"
)

type Handlers struct {
	Q    *app.QueryService
	Page *web.Renderer
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	if h.Page != nil {
		s.mux.Get("/", h.listingPage)
	}
	s.mux.Group(func(r chi.Router) {
		r.Use(s.cors.Handler)
		r.Get("/v1/properties", h.listProperties)
		r.Get("/v1/properties/{id}", h.getProperty)
		r.Get("/v1/filters", h.listFilters)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any, what string) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msgf("failed to write %s body", what)
	}
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	active := domain.ParseFilterSet(r.URL.Query())
	out, err := h.Q.ListProperties(r.Context(), active)
	if err != nil {
		log.Error().Err(err).Str("err_type", observability.LabelErr(err)).Msg("list properties failed")
		writeProblem(w, http.StatusBadGateway, "Bad Gateway", "property source unavailable")
		return
	}
	writeJSON(w, r, out, "listProperties")
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.Q.GetProperty(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "property not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("get property failed")
		writeProblem(w, http.StatusBadGateway, "Bad Gateway", "property source unavailable")
		return
	}
	writeJSON(w, r, p, "getProperty")
}

func (h *Handlers) listFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]any{"filters": domain.PresetFilters}, "listFilters")
}

func (h *Handlers) listingPage(w http.ResponseWriter, r *http.Request) {
	active := domain.ParseFilterSet(r.URL.Query())
	out, err := h.Q.ListProperties(r.Context(), active)
	if err != nil {
		log.Error().Err(err).Msg("listing page failed")
		http.Error(w, "properties are unavailable right now", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Page.Render(w, web.BuildPage(out, active, r.URL.Path)); err != nil {
		log.Error().Err(err).Msg("render listing page failed")
	}
}
