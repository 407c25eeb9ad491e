package api

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	httperrors "gitea.jw6.us/james/officesched/internal/http/errors"
	"gitea.jw6.us/james/officesched/internal/schedule"
)

// Calendar returns the 42-cell month grid. The month query parameter is
// YYYY-MM; it defaults to the current month.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	reference := now
	if month := r.URL.Query().Get("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			httperrors.BadRequest(w, r, err, fmt.Sprintf("invalid month %q, want YYYY-MM", month))
			return
		}
		reference = parsed
	}

	events := slices.Collect(h.store.All())
	grid := schedule.GenerateGrid(reference, events, now)

	h.respondJSON(w, http.StatusOK, map[string]any{
		"month": reference.Format("2006-01"),
		"days":  grid,
	})
}

// Agenda returns the top-5 upcoming bookings for the active filters, with
// 12-hour display labels attached for rendering.
func (h *Handler) Agenda(w http.ResponseWriter, r *http.Request) {
	office, search := filterParams(r)
	events := slices.Collect(h.store.Query(office, search))
	summary := schedule.Summarize(events, h.cfg.AgendaLimit)

	type agendaItem struct {
		ID           string `json:"id"`
		Title        string `json:"title"`
		Date         string `json:"date"`
		Start        string `json:"start"`
		End          string `json:"end"`
		StartDisplay string `json:"startDisplay"`
		ResourceID   string `json:"resourceId"`
		ResourceName string `json:"resourceName,omitempty"`
		Office       string `json:"office"`
		Badge        string `json:"badge,omitempty"`
	}

	items := make([]agendaItem, 0, len(summary))
	for _, ev := range summary {
		item := agendaItem{
			ID:           ev.ID,
			Title:        ev.Title,
			Date:         ev.Date,
			Start:        ev.Start,
			End:          ev.End,
			StartDisplay: schedule.FormatForDisplay(ev.Start),
			ResourceID:   ev.ResourceID,
			Office:       ev.Office,
			Badge:        ev.Badge,
		}
		if res, err := h.catalog.ByID(ev.ResourceID); err == nil {
			item.ResourceName = res.Name
		}
		items = append(items, item)
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"items": items})
}
