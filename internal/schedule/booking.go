package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gitea.jw6.us/james/officesched/internal/catalog"
	"gitea.jw6.us/james/officesched/internal/model"
	"gitea.jw6.us/james/officesched/internal/store"
)

// State is the booking orchestrator's position in its lifecycle.
type State string

const (
	StateIdle         State = "Idle"
	StateSlotSelected State = "SlotSelected"
	StateFormEditing  State = "FormEditing"
	StateValidated    State = "Validated"
	StateCommitted    State = "Committed"
)

// ValidationReason identifies which invariant a draft violated.
type ValidationReason string

const (
	ReasonEmptyTitle  ValidationReason = "empty_title"
	ReasonMissingSlot ValidationReason = "missing_slot"
)

// ValidationError reports a correctable draft problem. The orchestrator
// stays in FormEditing with the draft intact so the caller can fix and
// resubmit.
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonEmptyTitle:
		return "booking title must not be empty"
	case ReasonMissingSlot:
		return "booking has no date selected"
	}
	return fmt.Sprintf("invalid booking draft: %s", e.Reason)
}

// ErrNoSelection is returned by Commit when no slot or day was selected.
var ErrNoSelection = errors.New("no slot selected")

// Draft is an in-progress, uncommitted booking.
type Draft struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Office     string `json:"office"`
	ResourceID string `json:"resourceId"`
	Badge      string `json:"badge"`
}

// Orchestrator drives one booking through
// Idle -> SlotSelected -> FormEditing -> Validated -> Committed, with
// Cancel available from any non-Committed state. It is the only writer to
// the event store and the only place bookings are constructed. One
// orchestrator serves one booking attempt; it is not safe for concurrent
// use.
type Orchestrator struct {
	store    *store.EventStore
	catalog  *catalog.Catalog
	duration int

	state        State
	draft        Draft
	slotResource string
	officeFilter string
	now          func() time.Time
}

// NewOrchestrator creates an idle orchestrator. durationMinutes is the
// default booking length applied when the draft sets no explicit end time.
func NewOrchestrator(st *store.EventStore, cat *catalog.Catalog, durationMinutes int) *Orchestrator {
	if durationMinutes <= 0 {
		durationMinutes = 60
	}
	return &Orchestrator{
		store:    st,
		catalog:  cat,
		duration: durationMinutes,
		state:    StateIdle,
		now:      time.Now,
	}
}

// State reports the current lifecycle state.
func (o *Orchestrator) State() State { return o.state }

// Draft returns a copy of the current draft.
func (o *Orchestrator) Draft() Draft { return o.draft }

// SetOfficeFilter records the view's active office filter. A concrete
// filter takes precedence over the resource's owning office when a quick
// slot pre-fills the draft.
func (o *Orchestrator) SetOfficeFilter(office string) {
	o.officeFilter = office
}

// SelectDay stages a draft for the given ISO calendar date.
func (o *Orchestrator) SelectDay(date string) error {
	if o.state == StateCommitted {
		return fmt.Errorf("booking already committed")
	}
	if _, err := time.Parse(isoDate, date); err != nil {
		return fmt.Errorf("invalid booking date %q: %w", date, err)
	}
	o.draft = Draft{Date: date}
	o.slotResource = ""
	o.state = StateSlotSelected
	return nil
}

// SelectQuickSlot stages a same-day draft from a resource's offered slot.
// The draft's office defaults to the resource's owning office unless a
// concrete office filter is active.
func (o *Orchestrator) SelectQuickSlot(resourceID, start string) error {
	if o.state == StateCommitted {
		return fmt.Errorf("booking already committed")
	}
	res, err := o.catalog.ByID(resourceID)
	if err != nil {
		return err
	}
	canonical, err := Normalize(start)
	if err != nil {
		return err
	}
	office := res.Office
	if o.officeFilter != "" && o.officeFilter != store.AllOffices {
		office = o.officeFilter
	}
	o.draft = Draft{
		Date:       o.now().Format(isoDate),
		Start:      canonical,
		Office:     office,
		ResourceID: res.ID,
	}
	o.slotResource = res.ID
	o.state = StateSlotSelected
	return nil
}

// UpdateDraft merges the non-empty fields of d into the draft. No
// validation happens until Commit.
func (o *Orchestrator) UpdateDraft(d Draft) error {
	switch o.state {
	case StateSlotSelected, StateFormEditing:
	default:
		return ErrNoSelection
	}
	if d.Title != "" {
		o.draft.Title = d.Title
	}
	if d.Date != "" {
		o.draft.Date = d.Date
	}
	if d.Start != "" {
		o.draft.Start = d.Start
	}
	if d.End != "" {
		o.draft.End = d.End
	}
	if d.Office != "" {
		o.draft.Office = d.Office
	}
	if d.ResourceID != "" {
		o.draft.ResourceID = d.ResourceID
	}
	if d.Badge != "" {
		o.draft.Badge = d.Badge
	}
	o.state = StateFormEditing
	return nil
}

// Cancel discards the draft and returns to Idle. It is a no-op after
// Commit succeeded.
func (o *Orchestrator) Cancel() {
	if o.state == StateCommitted {
		return
	}
	o.draft = Draft{}
	o.slotResource = ""
	o.state = StateIdle
}

// Commit validates the draft and, on success, appends the finished booking
// to the event store and resets to Idle. Validation failures leave the
// orchestrator in FormEditing with the draft untouched.
func (o *Orchestrator) Commit() (model.Event, error) {
	switch o.state {
	case StateSlotSelected, StateFormEditing:
	default:
		return model.Event{}, ErrNoSelection
	}

	if strings.TrimSpace(o.draft.Title) == "" {
		o.state = StateFormEditing
		return model.Event{}, &ValidationError{Reason: ReasonEmptyTitle}
	}
	if o.draft.Date == "" {
		o.state = StateFormEditing
		return model.Event{}, &ValidationError{Reason: ReasonMissingSlot}
	}
	o.state = StateValidated

	res, err := ResolveResource(o.catalog, o.draft.ResourceID, o.slotResource)
	if err != nil {
		o.state = StateFormEditing
		return model.Event{}, err
	}

	start, err := Normalize(o.draft.Start)
	if err != nil {
		o.state = StateFormEditing
		return model.Event{}, err
	}

	end := o.draft.End
	if end == "" {
		if end, err = AddMinutes(start, o.duration); err != nil {
			o.state = StateFormEditing
			return model.Event{}, err
		}
	} else if end, err = Normalize(end); err != nil {
		o.state = StateFormEditing
		return model.Event{}, err
	}

	badge := o.draft.Badge
	if badge == "" {
		badge = "New"
	}

	ev := model.Event{
		ID:         GenerateEventID(),
		Title:      strings.TrimSpace(o.draft.Title),
		Date:       o.draft.Date,
		Start:      start,
		End:        end,
		ResourceID: res.ID,
		Office:     ResolveOffice(o.draft.Office, res),
		Status:     model.StatusScheduled,
		Badge:      badge,
	}

	o.store.Append(ev)
	o.state = StateCommitted

	o.draft = Draft{}
	o.slotResource = ""
	o.state = StateIdle
	return ev, nil
}
