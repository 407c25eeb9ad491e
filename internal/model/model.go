package model

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusConfirmed Status = "Confirmed"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

// Category classifies a bookable resource.
type Category string

const (
	CategoryRoom      Category = "room"
	CategoryLicense   Category = "license"
	CategoryEquipment Category = "equipment"
	CategoryStaff     Category = "staff"
)

// Resource is a bookable entity with an owning office. Resources are
// immutable reference data; the catalog is the only place they live.
type Resource struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Office   string   `json:"office"`
	Category Category `json:"category"`
	// Slots are the offerable start times for same-day quick booking,
	// canonical zero-padded HH:MM, in display order.
	Slots []string `json:"slots"`
}

// Event is a booked time slot against a resource. Dates are ISO-8601
// calendar dates, times canonical zero-padded 24-hour HH:MM.
type Event struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
	ResourceID string `json:"resourceId"`
	Office     string `json:"office"`
	Status     Status `json:"status"`
	Badge      string `json:"badge,omitempty"`
}

// CalendarDay is one cell of the 6x7 month grid. It is derived view data,
// rebuilt on every generation and never stored.
type CalendarDay struct {
	Date    string  `json:"date"`
	Day     int     `json:"day"`
	InMonth bool    `json:"inMonth"`
	IsToday bool    `json:"isToday"`
	Events  []Event `json:"events"`
}
