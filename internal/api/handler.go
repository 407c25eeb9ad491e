package api

import (
	"encoding/json"
	"net/http"

	"gitea.jw6.us/james/officesched/internal/catalog"
	"gitea.jw6.us/james/officesched/internal/config"
	"gitea.jw6.us/james/officesched/internal/store"
)

// Handler serves the scheduling JSON API.
type Handler struct {
	cfg     *config.Config
	store   *store.EventStore
	catalog *catalog.Catalog
}

// NewHandler wires the API handler to the shared store and catalog.
func NewHandler(cfg *config.Config, st *store.EventStore, cat *catalog.Catalog) *Handler {
	return &Handler{cfg: cfg, store: st, catalog: cat}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// filterParams reads the office and search filters from the query string.
// A missing office means "All Offices".
func filterParams(r *http.Request) (office, search string) {
	q := r.URL.Query()
	office = q.Get("office")
	if office == "" {
		office = store.AllOffices
	}
	return office, q.Get("q")
}
