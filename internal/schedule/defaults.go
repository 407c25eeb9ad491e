package schedule

import (
	"gitea.jw6.us/james/officesched/internal/catalog"
	"gitea.jw6.us/james/officesched/internal/model"
	"gitea.jw6.us/james/officesched/internal/store"
)

// ResolveResource applies the booking default chain for the resource:
// the explicit form choice wins, then the resource of the originally
// selected quick slot, then the catalog's first entry as a last resort.
func ResolveResource(cat *catalog.Catalog, explicitID, slotResourceID string) (model.Resource, error) {
	if explicitID != "" {
		return cat.ByID(explicitID)
	}
	if slotResourceID != "" {
		return cat.ByID(slotResourceID)
	}
	res, ok := cat.First()
	if !ok {
		return model.Resource{}, catalog.ErrNotFound
	}
	return res, nil
}

// ResolveOffice applies the office default chain: the explicit choice wins
// unless it is empty or still "All Offices", in which case the booking
// falls back to the resource's owning office.
func ResolveOffice(explicit string, resource model.Resource) string {
	if explicit != "" && explicit != store.AllOffices {
		return explicit
	}
	return resource.Office
}
