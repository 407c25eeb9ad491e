package schedule

import (
	"sort"

	"gitea.jw6.us/james/officesched/internal/model"
)

// DefaultAgendaLimit caps the agenda summary at the five chronologically
// earliest bookings.
const DefaultAgendaLimit = 5

// Summarize returns at most limit events ordered ascending by (date, start
// time). The sort is stable: bookings sharing a date and start time keep
// their store insertion order. The summary is a read-only projection for
// at-a-glance conflict review; it does not detect interval overlap between
// bookings on the same resource.
func Summarize(events []model.Event, limit int) []model.Event {
	if limit <= 0 {
		limit = DefaultAgendaLimit
	}
	out := make([]model.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return Compare(out[i].Start, out[j].Start) < 0
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
