package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gitea.jw6.us/james/officesched/internal/catalog"
	"gitea.jw6.us/james/officesched/internal/config"
	httpserver "gitea.jw6.us/james/officesched/internal/http"
	"gitea.jw6.us/james/officesched/internal/model"
	"gitea.jw6.us/james/officesched/internal/store"
)

func newTestServer(t *testing.T, seed bool) (http.Handler, *store.EventStore) {
	t.Helper()
	cfg := &config.Config{
		ListenAddr:             ":8080",
		BookingDurationMinutes: 60,
		AgendaLimit:            5,
	}
	cat := catalog.Default()
	var st *store.EventStore
	if seed {
		st = store.Seeded(cat)
	} else {
		st = store.New(cat)
	}
	return httpserver.NewRouter(cfg, st, cat), st
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	h, _ := newTestServer(t, false)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := doJSON(t, h, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestCalendarEndpoint(t *testing.T) {
	h, _ := newTestServer(t, true)

	rec := doJSON(t, h, http.MethodGet, "/api/calendar?month=2025-07", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Month string              `json:"month"`
		Days  []model.CalendarDay `json:"days"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Month != "2025-07" {
		t.Errorf("month = %s, want 2025-07", resp.Month)
	}
	if len(resp.Days) != 42 {
		t.Fatalf("grid has %d cells, want 42", len(resp.Days))
	}

	attached := 0
	for _, day := range resp.Days {
		if day.Date == "2025-07-22" {
			attached = len(day.Events)
		}
	}
	if attached != 1 {
		t.Errorf("2025-07-22 has %d events, want 1", attached)
	}
}

func TestCalendarEndpointRejectsBadMonth(t *testing.T) {
	h, _ := newTestServer(t, false)
	rec := doJSON(t, h, http.MethodGet, "/api/calendar?month=July", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEventsEndpointFilters(t *testing.T) {
	h, _ := newTestServer(t, true)

	rec := doJSON(t, h, http.MethodGet, "/api/events?office=New+York&q=sync", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Events []model.Event `json:"events"`
		Total  int           `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || len(resp.Events) != 1 {
		t.Fatalf("total = %d, want 1 matching event", resp.Total)
	}
	if resp.Events[0].Title != "NY - Team Sync" {
		t.Errorf("matched %q, want NY - Team Sync", resp.Events[0].Title)
	}
}

func TestAgendaEndpointOrdering(t *testing.T) {
	h, st := newTestServer(t, true)
	st.Append(model.Event{
		ID: "early", Title: "Early call", Date: "2025-07-22",
		Start: "09:00", End: "09:30", ResourceID: "conf-room-a", Office: "New York",
		Status: model.StatusScheduled,
	})

	rec := doJSON(t, h, http.MethodGet, "/api/agenda", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Items []struct {
			ID           string `json:"id"`
			Start        string `json:"start"`
			StartDisplay string `json:"startDisplay"`
			ResourceName string `json:"resourceName"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Fatalf("agenda has %d items, want 3", len(resp.Items))
	}
	if resp.Items[0].ID != "early" {
		t.Errorf("first agenda item = %s, want the 09:00 booking", resp.Items[0].ID)
	}
	if resp.Items[0].StartDisplay != "9:00 AM" {
		t.Errorf("startDisplay = %q, want 9:00 AM", resp.Items[0].StartDisplay)
	}
	if resp.Items[0].ResourceName != "Conference Room A" {
		t.Errorf("resourceName = %q, want Conference Room A", resp.Items[0].ResourceName)
	}
}

func TestCreateBookingQuickSlot(t *testing.T) {
	h, st := newTestServer(t, true)

	body := `{"title":"Printer Maintenance","resourceId":"printer-3","start":"09:00","quickSlot":true}`
	rec := doJSON(t, h, http.MethodPost, "/api/bookings", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var ev model.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.ResourceID != "printer-3" {
		t.Errorf("resourceId = %s, want printer-3", ev.ResourceID)
	}
	if ev.Start != "09:00" || ev.End != "10:00" {
		t.Errorf("times = %s-%s, want 09:00-10:00", ev.Start, ev.End)
	}
	if ev.Status != model.StatusScheduled || ev.Badge != "New" {
		t.Errorf("status/badge = %s/%s, want Scheduled/New", ev.Status, ev.Badge)
	}
	if ev.Office != "New York" {
		t.Errorf("office = %s, want the resource's New York", ev.Office)
	}

	if st.Len() != 3 {
		t.Errorf("store has %d events, want 3", st.Len())
	}
}

func TestCreateBookingValidation(t *testing.T) {
	h, st := newTestServer(t, false)

	body := `{"title":"   ","date":"2025-07-28","start":"09:00"}`
	rec := doJSON(t, h, http.MethodPost, "/api/bookings", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reason != "empty_title" {
		t.Errorf("reason = %q, want empty_title", resp.Reason)
	}
	if st.Len() != 0 {
		t.Errorf("store has %d events after rejected booking, want 0", st.Len())
	}
}

func TestCreateBookingUnknownResource(t *testing.T) {
	h, _ := newTestServer(t, false)

	body := `{"title":"Ghost","resourceId":"no-such","start":"09:00","quickSlot":true}`
	rec := doJSON(t, h, http.MethodPost, "/api/bookings", body)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteBooking(t *testing.T) {
	h, _ := newTestServer(t, true)

	rec := doJSON(t, h, http.MethodDelete, "/api/bookings/evt-seed-1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/bookings/evt-seed-1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestBookingsFeed(t *testing.T) {
	h, _ := newTestServer(t, true)

	rec := doJSON(t, h, http.MethodGet, "/api/bookings.ics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("Content-Type = %q, want text/calendar", ct)
	}
	if got := strings.Count(rec.Body.String(), "BEGIN:VEVENT"); got != 2 {
		t.Errorf("feed has %d VEVENTs, want 2", got)
	}
}

func TestResourcesEndpoint(t *testing.T) {
	h, _ := newTestServer(t, false)

	rec := doJSON(t, h, http.MethodGet, "/api/resources", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Resources []model.Resource `json:"resources"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Resources) == 0 {
		t.Fatal("catalog came back empty")
	}
	if resp.Resources[0].ID != "conf-room-a" {
		t.Errorf("first resource = %s, want conf-room-a", resp.Resources[0].ID)
	}
}
