package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/farellandr/eventportal/internal/models"
)

func TestComputeStats(t *testing.T) {
	events := []models.Event{
		{Date: at(3), MaxParticipants: 100, CurrentParticipants: 50, Price: decimal.NewFromInt(10)},
		{Date: at(-3), MaxParticipants: 10, CurrentParticipants: 10, Price: decimal.RequireFromString("2.5")},
		{Date: at(1), MaxParticipants: 0, CurrentParticipants: 0, Status: "DRAFT"},
	}

	stats := ComputeStats(events, testNow)

	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 2, stats.UpcomingEvents)
	assert.Equal(t, 1, stats.PastEvents)
	assert.Equal(t, 60, stats.TotalParticipants)
	assert.True(t, decimal.RequireFromString("525").Equal(stats.TotalRevenue))
	assert.Equal(t, 75, stats.AverageAttendance)
	assert.Equal(t, 1, stats.StatusCounts[StatusPublished])
	assert.Equal(t, 1, stats.StatusCounts[StatusCompleted])
	assert.Equal(t, 1, stats.StatusCounts[StatusDraft])
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, testNow)
	assert.Zero(t, stats.TotalEvents)
	assert.Zero(t, stats.AverageAttendance)
	assert.True(t, stats.TotalRevenue.IsZero())
}
