package catalog

import (
	"strings"
	"time"

	"github.com/farellandr/eventportal/internal/models"
)

// AllValues is the sentinel accepted by category and status criteria to mean
// "no constraint".
const AllValues = "all"

// Criteria holds the user-facing listing constraints. An empty field places no
// constraint on the result.
type Criteria struct {
	Keyword  string `json:"keyword,omitempty"`
	Category string `json:"category,omitempty"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Normalize trims free-text fields and folds the "all" sentinel to empty.
func (c Criteria) Normalize() Criteria {
	c.Keyword = strings.TrimSpace(c.Keyword)
	c.Location = strings.TrimSpace(c.Location)
	c.Category = strings.TrimSpace(c.Category)
	c.Status = strings.TrimSpace(c.Status)
	if strings.EqualFold(c.Category, AllValues) {
		c.Category = ""
	}
	if strings.EqualFold(c.Status, AllValues) {
		c.Status = ""
	}
	return c
}

func (c Criteria) IsZero() bool {
	return c.Normalize() == Criteria{}
}

// ActiveCount reports how many constraints are set.
func (c Criteria) ActiveCount() int {
	c = c.Normalize()
	count := 0
	for _, v := range []string{c.Keyword, c.Category, c.Location, c.Status} {
		if v != "" {
			count++
		}
	}
	return count
}

// Matcher evaluates Criteria against events for one view.
type Matcher struct {
	Criteria Criteria
	// KeywordInLocation extends keyword matching to the location field.
	KeywordInLocation bool
	// Now is the reference time for status classification.
	Now time.Time
}

func (m Matcher) Match(event models.Event) bool {
	c := m.Criteria.Normalize()
	return m.matchKeyword(event, c.Keyword) &&
		matchCategory(event, c.Category) &&
		containsFold(event.Location, c.Location) &&
		m.matchStatus(event, c.Status)
}

// Apply returns the events satisfying every constraint, in input order.
func (m Matcher) Apply(events []models.Event) []models.Event {
	filtered := make([]models.Event, 0, len(events))
	for _, event := range events {
		if m.Match(event) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

func (m Matcher) matchKeyword(event models.Event, keyword string) bool {
	if keyword == "" {
		return true
	}
	if containsFold(event.Title, keyword) || containsFold(event.Description, keyword) {
		return true
	}
	return m.KeywordInLocation && containsFold(event.Location, keyword)
}

func (m Matcher) matchStatus(event models.Event, status string) bool {
	if status == "" {
		return true
	}
	now := m.Now
	if now.IsZero() {
		now = time.Now()
	}
	return Canonical(Classify(event, now)) == Canonical(status)
}

func matchCategory(event models.Event, category string) bool {
	return category == "" || event.Category == category
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Filter applies the keyword, category, location and status constraints of c to
// events. Keywords are matched against title and description.
func Filter(events []models.Event, c Criteria) []models.Event {
	return Matcher{Criteria: c, Now: time.Now()}.Apply(events)
}
