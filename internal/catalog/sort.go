package catalog

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/farellandr/eventportal/internal/models"
)

type SortKey string

const (
	SortByDate         SortKey = "date"
	SortByTitle        SortKey = "title"
	SortByParticipants SortKey = "participants"
	SortByRevenue      SortKey = "revenue"
)

// ParseSortKey accepts a sort key case-insensitively. Unknown keys report false.
func ParseSortKey(s string) (SortKey, bool) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortByDate, SortByTitle, SortByParticipants, SortByRevenue:
		return key, true
	}
	return "", false
}

// Revenue is currentParticipants x price.
func Revenue(event models.Event) decimal.Decimal {
	return event.Price.Mul(decimal.NewFromInt(int64(event.CurrentParticipants)))
}

// Compare returns the ordering for key:
// date ascending, title ascending (French collation), participants descending,
// revenue descending. Unknown keys compare everything as equal.
//
// The returned function is not safe for concurrent use.
func Compare(key SortKey) func(a, b models.Event) int {
	switch key {
	case SortByDate:
		return func(a, b models.Event) int {
			return a.Date.Compare(b.Date.Time)
		}
	case SortByTitle:
		collator := collate.New(language.French)
		return func(a, b models.Event) int {
			return collator.CompareString(a.Title, b.Title)
		}
	case SortByParticipants:
		return func(a, b models.Event) int {
			return b.CurrentParticipants - a.CurrentParticipants
		}
	case SortByRevenue:
		return func(a, b models.Event) int {
			return Revenue(b).Cmp(Revenue(a))
		}
	}
	return func(a, b models.Event) int { return 0 }
}

// Sort returns a stably sorted copy of events. Events with equal keys keep
// their input order.
func Sort(events []models.Event, key SortKey) []models.Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, Compare(key))
	return sorted
}
