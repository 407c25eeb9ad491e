package catalog

import (
	"errors"

	"gitea.jw6.us/james/officesched/internal/model"
)

// ErrNotFound is returned when a resource id does not resolve.
var ErrNotFound = errors.New("resource not found")

// Catalog is a read-only registry of bookable resources. Order is
// significant: First is the documented last-resort booking default.
type Catalog struct {
	resources []model.Resource
	byID      map[string]int
}

// New builds a catalog from an ordered resource list.
func New(resources []model.Resource) *Catalog {
	c := &Catalog{
		resources: make([]model.Resource, len(resources)),
		byID:      make(map[string]int, len(resources)),
	}
	copy(c.resources, resources)
	for i, res := range c.resources {
		c.byID[res.ID] = i
	}
	return c
}

// ByID resolves a resource id.
func (c *Catalog) ByID(id string) (model.Resource, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Resource{}, ErrNotFound
	}
	return c.resources[i], nil
}

// First returns the catalog's first resource, the fallback used when a
// booking names no resource and no slot was selected.
func (c *Catalog) First() (model.Resource, bool) {
	if len(c.resources) == 0 {
		return model.Resource{}, false
	}
	return c.resources[0], true
}

// List returns all resources in catalog order.
func (c *Catalog) List() []model.Resource {
	out := make([]model.Resource, len(c.resources))
	copy(out, c.resources)
	return out
}

// Len reports the number of resources.
func (c *Catalog) Len() int { return len(c.resources) }

// Default returns the built-in office catalog.
func Default() *Catalog {
	return New([]model.Resource{
		{
			ID:       "conf-room-a",
			Name:     "Conference Room A",
			Office:   "New York",
			Category: model.CategoryRoom,
			Slots:    []string{"09:00", "10:00", "11:00", "14:00", "15:00"},
		},
		{
			ID:       "conf-room-b",
			Name:     "Conference Room B",
			Office:   "Chicago",
			Category: model.CategoryRoom,
			Slots:    []string{"09:00", "11:00", "13:00", "16:00"},
		},
		{
			ID:       "printer-3",
			Name:     "Large Format Printer 3",
			Office:   "New York",
			Category: model.CategoryEquipment,
			Slots:    []string{"09:00", "13:00"},
		},
		{
			ID:       "westlaw-seat-1",
			Name:     "Westlaw Research Seat",
			Office:   "Chicago",
			Category: model.CategoryLicense,
			Slots:    []string{"08:00", "10:00", "12:00", "14:00", "16:00"},
		},
		{
			ID:       "notary-desk",
			Name:     "Notary Desk",
			Office:   "New York",
			Category: model.CategoryStaff,
			Slots:    []string{"10:00", "15:00"},
		},
	})
}
