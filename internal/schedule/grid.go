package schedule

import (
	"time"

	"gitea.jw6.us/james/officesched/internal/model"
)

// GridCells is the fixed size of the month grid: 6 rows of 7 weekday
// columns. The fixed size keeps the layout from reflowing no matter which
// weekday the month starts on or how many weeks it spans.
const GridCells = 42

const isoDate = "2006-01-02"

// GenerateGrid builds the 42-cell calendar grid for the month containing
// reference. The grid left-pads with trailing days of the previous month so
// the 1st lands on its weekday column (weeks start on Sunday), covers every
// day of the reference month, and fills the remainder with leading days of
// the next month. Events are attached to the cell whose ISO date equals
// their date, in the order given; the generator never sorts within a day.
//
// GenerateGrid is pure: it reads nothing but its arguments and is safe to
// call repeatedly.
func GenerateGrid(reference time.Time, events []model.Event, today time.Time) []model.CalendarDay {
	first := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)
	startWeekday := int(first.Weekday())
	todayISO := today.Format(isoDate)

	byDate := make(map[string][]model.Event, len(events))
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	cells := make([]model.CalendarDay, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		date := first.AddDate(0, 0, i-startWeekday)
		iso := date.Format(isoDate)
		cells = append(cells, model.CalendarDay{
			Date:    iso,
			Day:     date.Day(),
			InMonth: date.Month() == first.Month() && date.Year() == first.Year(),
			IsToday: iso == todayISO,
			Events:  byDate[iso],
		})
	}
	return cells
}
