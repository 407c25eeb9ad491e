package store

import (
	"iter"
	"strings"
	"sync"

	"gitea.jw6.us/james/officesched/internal/catalog"
	"gitea.jw6.us/james/officesched/internal/model"
)

// AllOffices is the office filter value that matches every event.
const AllOffices = "All Offices"

// EventStore is the single source of truth for bookings. It is an
// in-memory, insertion-ordered collection guarded by a mutex: appends are
// serialized so concurrent commits cannot lose updates. The store does not
// re-validate events; the booking orchestrator is the only writer and
// guarantees invariants before calling Append.
type EventStore struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	events  []model.Event
}

// New creates an empty store. The catalog is used to resolve resource
// display names during search filtering.
func New(cat *catalog.Catalog) *EventStore {
	return &EventStore{catalog: cat}
}

// Seeded creates a store pre-populated with the demo bookings.
func Seeded(cat *catalog.Catalog) *EventStore {
	s := New(cat)
	s.Append(model.Event{
		ID:         "evt-seed-1",
		Title:      "NY - Team Sync",
		Date:       "2025-07-22",
		Start:      "13:00",
		End:        "14:00",
		ResourceID: "conf-room-a",
		Office:     "New York",
		Status:     model.StatusScheduled,
	})
	s.Append(model.Event{
		ID:         "evt-seed-2",
		Title:      "NY - Interview",
		Date:       "2025-07-24",
		Start:      "10:00",
		End:        "11:00",
		ResourceID: "conf-room-a",
		Office:     "New York",
		Status:     model.StatusConfirmed,
	})
	return s
}

// Append adds a booking to the end of the store.
func (s *EventStore) Append(ev model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// Delete removes the booking with the given id, preserving the insertion
// order of the remainder. It reports whether anything was removed.
func (s *EventStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ev := range s.events {
		if ev.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the current number of bookings.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// All returns a restartable sequence over every booking in insertion
// order. Each range takes a fresh snapshot, so re-ranging reflects
// appends and deletes made since the previous pass.
func (s *EventStore) All() iter.Seq[model.Event] {
	return func(yield func(model.Event) bool) {
		for _, ev := range s.snapshot() {
			if !yield(ev) {
				return
			}
		}
	}
}

// Query returns a restartable sequence of bookings matching the office
// filter and free-text search. An office of AllOffices (or "") matches
// everything; a non-empty search matches case-insensitively against the
// title or the resolved resource display name.
func (s *EventStore) Query(office, search string) iter.Seq[model.Event] {
	return func(yield func(model.Event) bool) {
		needle := strings.ToLower(strings.TrimSpace(search))
		for _, ev := range s.snapshot() {
			if !s.matches(ev, office, needle) {
				continue
			}
			if !yield(ev) {
				return
			}
		}
	}
}

func (s *EventStore) matches(ev model.Event, office, needle string) bool {
	if office != "" && office != AllOffices && ev.Office != office {
		return false
	}
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(ev.Title), needle) {
		return true
	}
	if res, err := s.catalog.ByID(ev.ResourceID); err == nil {
		return strings.Contains(strings.ToLower(res.Name), needle)
	}
	return false
}

func (s *EventStore) snapshot() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}
