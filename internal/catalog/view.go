package catalog

import (
	"time"

	"github.com/farellandr/eventportal/internal/models"
)

// ViewConfig parameterizes the listing pipeline for one surface.
type ViewConfig struct {
	Name              string
	PageSize          int
	KeywordInLocation bool
	DefaultSort       SortKey
}

var (
	// BrowseView is the public event catalog.
	BrowseView = ViewConfig{Name: "browse", PageSize: DefaultPageSize}
	// ManageView is the organizer's event management table.
	ManageView = ViewConfig{Name: "manage", PageSize: 8, KeywordInLocation: true, DefaultSort: SortByDate}
)

// Listing is one computed page of events.
type Listing struct {
	Events     []models.Event
	Pagination Pagination
	Matched    []models.Event
}

// Run filters, sorts and paginates events for the view. An empty sort key uses
// the view default; no default keeps input order.
func (v ViewConfig) Run(events []models.Event, c Criteria, key SortKey, page int, now time.Time) Listing {
	matched := Matcher{Criteria: c, KeywordInLocation: v.KeywordInLocation, Now: now}.Apply(events)

	if key == "" {
		key = v.DefaultSort
	}
	if key != "" {
		matched = Sort(matched, key)
	}

	items, pagination := Paginate(matched, page, v.PageSize)
	return Listing{Events: items, Pagination: pagination, Matched: matched}
}
