package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"gitea.jw6.us/james/officesched/internal/catalog"
	"gitea.jw6.us/james/officesched/internal/model"
)

// Feed renders bookings as a VCALENDAR so operators can subscribe to the
// office schedule from a desktop calendar client. Resource display names
// are resolved through the catalog into each event's location; bookings
// with malformed dates are skipped rather than failing the whole feed.
func Feed(events []model.Event, cat *catalog.Catalog, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//officesched//scheduling feed//EN")

	for _, ev := range events {
		start, err := combine(ev.Date, ev.Start)
		if err != nil {
			continue
		}
		end, err := combine(ev.Date, ev.End)
		if err != nil {
			continue
		}

		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		ve.SetEndAt(end)
		ve.SetSummary(ev.Title)
		ve.SetStatus(objectStatus(ev.Status))

		location := ev.Office
		if res, err := cat.ByID(ev.ResourceID); err == nil {
			location = fmt.Sprintf("%s - %s", res.Name, res.Office)
		}
		if location != "" {
			ve.SetLocation(location)
		}
	}

	return cal.Serialize()
}

func objectStatus(s model.Status) ical.ObjectStatus {
	switch s {
	case model.StatusCancelled:
		return ical.ObjectStatusCancelled
	case model.StatusPending:
		return ical.ObjectStatusTentative
	default:
		return ical.ObjectStatusConfirmed
	}
}

func combine(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.UTC)
}
