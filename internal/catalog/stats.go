package catalog

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/farellandr/eventportal/internal/models"
)

// OrganizerStats aggregates an organizer's events.
type OrganizerStats struct {
	TotalEvents       int             `json:"totalEvents"`
	UpcomingEvents    int             `json:"upcomingEvents"`
	PastEvents        int             `json:"pastEvents"`
	TotalParticipants int             `json:"totalParticipants"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageAttendance int             `json:"averageAttendance"`
	StatusCounts      map[Status]int  `json:"statusCounts"`
}

// ComputeStats aggregates events at now. Average attendance only considers
// events with a positive capacity.
func ComputeStats(events []models.Event, now time.Time) OrganizerStats {
	stats := OrganizerStats{
		TotalEvents:  len(events),
		TotalRevenue: decimal.Zero,
		StatusCounts: map[Status]int{
			StatusPublished: 0,
			StatusDraft:     0,
			StatusCancelled: 0,
			StatusCompleted: 0,
		},
	}

	var attendanceSum float64
	var withCapacity int
	for _, e := range events {
		if e.Date.After(now) {
			stats.UpcomingEvents++
		}
		stats.TotalParticipants += e.CurrentParticipants
		stats.TotalRevenue = stats.TotalRevenue.Add(Revenue(e))
		stats.StatusCounts[Canonical(Classify(e, now))]++

		if e.MaxParticipants > 0 {
			attendanceSum += float64(e.CurrentParticipants) / float64(e.MaxParticipants) * 100
			withCapacity++
		}
	}
	stats.PastEvents = stats.TotalEvents - stats.UpcomingEvents
	if withCapacity > 0 {
		stats.AverageAttendance = int(math.Round(attendanceSum / float64(withCapacity)))
	}
	return stats
}
