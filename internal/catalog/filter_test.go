package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/farellandr/eventportal/internal/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(days int) models.Timestamp {
	return models.NewTimestamp(testNow.AddDate(0, 0, days))
}

func sampleEvents() []models.Event {
	return []models.Event{
		{ID: 1, Title: "Tech Conf", Description: "Go and cloud", Category: models.CategoryConference, Location: "Paris", Date: at(10), MaxParticipants: 100, CurrentParticipants: 100},
		{ID: 2, Title: "Jazz Night", Description: "Live music", Category: models.CategoryConcert, Location: "Lyon", Date: at(5), MaxParticipants: 50, CurrentParticipants: 10},
		{ID: 3, Title: "Go Workshop", Description: "Hands-on TECH session", Category: models.CategoryWorkshop, Location: "Paris 11e", Date: at(-3), MaxParticipants: 20, CurrentParticipants: 20},
		{ID: 4, Title: "Run", Description: "Morning run", Category: models.CategorySport, Location: "Marseille", Date: at(2), MaxParticipants: 30, IsActive: models.BoolPtr(false)},
	}
}

func ids(events []models.Event) []int64 {
	out := make([]int64, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	events := sampleEvents()
	assert.Equal(t, events, Filter(events, Criteria{}))
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, Criteria{Keyword: "x"}))
	assert.Empty(t, Filter([]models.Event{}, Criteria{}))
}

func TestFilter_Keyword(t *testing.T) {
	events := sampleEvents()

	assert.Equal(t, []int64{1, 3}, ids(Filter(events, Criteria{Keyword: "tech"})))
	assert.Equal(t, []int64{2}, ids(Filter(events, Criteria{Keyword: "  MUSIC "})))
	// location is not searched by the browse keyword
	assert.Empty(t, Filter(events, Criteria{Keyword: "marseille"}))
}

func TestFilter_Category(t *testing.T) {
	events := sampleEvents()

	assert.Equal(t, []int64{1}, ids(Filter(events, Criteria{Category: models.CategoryConference})))
	assert.Equal(t, ids(events), ids(Filter(events, Criteria{Category: "all"})))
	assert.Equal(t, ids(events), ids(Filter(events, Criteria{Category: "ALL"})))
	assert.Empty(t, Filter(events, Criteria{Category: "conference"}), "category match is exact")
}

func TestFilter_Location(t *testing.T) {
	events := sampleEvents()
	assert.Equal(t, []int64{1, 3}, ids(Filter(events, Criteria{Location: "paris"})))
}

func TestFilter_CombinedIsConjunction(t *testing.T) {
	events := sampleEvents()
	c := Criteria{Keyword: "go", Location: "paris", Category: models.CategoryWorkshop}

	got := Filter(events, c)

	assert.Equal(t, []int64{3}, ids(got))
}

func TestFilter_ResultIsSubsetSatisfyingPredicates(t *testing.T) {
	events := sampleEvents()
	criteria := []Criteria{
		{Keyword: "o"},
		{Location: "a"},
		{Keyword: "n", Location: "paris"},
		{Category: models.CategorySport, Keyword: "run"},
	}

	for _, c := range criteria {
		got := Filter(events, c)
		m := Matcher{Criteria: c, Now: testNow}
		for _, e := range got {
			assert.Contains(t, events, e)
			assert.True(t, m.Match(e))
		}
	}
}

func TestMatcher_KeywordInLocation(t *testing.T) {
	m := Matcher{Criteria: Criteria{Keyword: "marseille"}, KeywordInLocation: true, Now: testNow}
	assert.Equal(t, []int64{4}, ids(m.Apply(sampleEvents())))
}

func TestMatcher_Status(t *testing.T) {
	events := sampleEvents()
	events = append(events, models.Event{ID: 5, Title: "Draft", Status: "brouillon", Date: at(20)})

	tests := []struct {
		status string
		want   []int64
	}{
		{"published", []int64{1, 2}},
		{"COMPLETED", []int64{3}},
		{"cancelled", []int64{4}},
		{"draft", []int64{5}},
		{"all", []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			m := Matcher{Criteria: Criteria{Status: tt.status}, Now: testNow}
			assert.Equal(t, tt.want, ids(m.Apply(events)))
		})
	}
}

func TestCriteria_ActiveCount(t *testing.T) {
	assert.Equal(t, 0, Criteria{Category: "all", Keyword: "  "}.ActiveCount())
	assert.Equal(t, 2, Criteria{Keyword: "jazz", Location: "Lyon"}.ActiveCount())
	assert.True(t, Criteria{Status: "ALL"}.IsZero())
	assert.False(t, Criteria{Location: "Lyon"}.IsZero())
}
