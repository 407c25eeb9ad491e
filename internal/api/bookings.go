package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"gitea.jw6.us/james/officesched/internal/catalog"
	httperrors "gitea.jw6.us/james/officesched/internal/http/errors"
	"gitea.jw6.us/james/officesched/internal/ics"
	"gitea.jw6.us/james/officesched/internal/metrics"
	"gitea.jw6.us/james/officesched/internal/schedule"
)

// bookingRequest is the POST /api/bookings payload. QuickSlot selects the
// same-day quick-book path: date defaults to today and the office to the
// resource's owning office (unless officeFilter is a concrete office).
type bookingRequest struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Office       string `json:"office"`
	OfficeFilter string `json:"officeFilter"`
	ResourceID   string `json:"resourceId"`
	Badge        string `json:"badge"`
	QuickSlot    bool   `json:"quickSlot"`
}

// Events returns the bookings matching the office/search filters.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	office, search := filterParams(r)
	events := slices.Collect(h.store.Query(office, search))
	h.respondJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"total":  len(events),
	})
}

// Resources returns the bookable-resource catalog with quick-book slots.
func (h *Handler) Resources(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"resources": h.catalog.List(),
	})
}

// CreateBooking drives the orchestrator through one booking: slot
// selection, draft edits, commit.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.BadRequest(w, r, err, "invalid JSON body")
		return
	}

	orch := schedule.NewOrchestrator(h.store, h.catalog, h.cfg.BookingDurationMinutes)
	orch.SetOfficeFilter(req.OfficeFilter)

	var err error
	if req.QuickSlot {
		err = orch.SelectQuickSlot(req.ResourceID, req.Start)
	} else {
		err = orch.SelectDay(req.Date)
	}
	if err != nil {
		h.rejectBooking(w, r, err)
		return
	}

	if err := orch.UpdateDraft(schedule.Draft{
		Title:      req.Title,
		Start:      req.Start,
		End:        req.End,
		Office:     req.Office,
		ResourceID: req.ResourceID,
		Badge:      req.Badge,
	}); err != nil {
		h.rejectBooking(w, r, err)
		return
	}

	ev, err := orch.Commit()
	if err != nil {
		h.rejectBooking(w, r, err)
		return
	}

	metrics.BookingCreated()
	h.respondJSON(w, http.StatusCreated, ev)
}

// DeleteBooking removes a booking by id.
func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.store.Delete(id) {
		httperrors.JSON(w, http.StatusNotFound, "booking not found", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BookingsFeed renders the filtered bookings as an iCalendar feed.
func (h *Handler) BookingsFeed(w http.ResponseWriter, r *http.Request) {
	office, search := filterParams(r)
	events := slices.Collect(h.store.Query(office, search))
	body := ics.Feed(events, h.catalog, time.Now())

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.ics"`)
	_, _ = w.Write([]byte(body))
}

func (h *Handler) rejectBooking(w http.ResponseWriter, r *http.Request, err error) {
	var verr *schedule.ValidationError
	switch {
	case errors.As(err, &verr):
		metrics.BookingRejected(string(verr.Reason))
		httperrors.JSON(w, http.StatusUnprocessableEntity, verr.Error(), string(verr.Reason))
	case errors.Is(err, catalog.ErrNotFound):
		httperrors.JSON(w, http.StatusNotFound, "resource not found", "")
	case errors.Is(err, schedule.ErrInvalidTimeFormat):
		httperrors.BadRequest(w, r, err, "invalid time format, want HH:MM")
	default:
		httperrors.BadRequest(w, r, err, err.Error())
	}
}
