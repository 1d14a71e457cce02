package browse

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/farellandr/eventportal/internal/catalog"
	"github.com/farellandr/eventportal/internal/models"
)

// summaryLength is the description length shown on listing cards.
const summaryLength = 100

// EventCard is an event with everything a listing needs to render it.
type EventCard struct {
	models.Event
	Summary             string                      `json:"summary"`
	StatusInfo          catalog.StatusMeta          `json:"statusInfo"`
	CategoryInfo        catalog.Category            `json:"categoryInfo"`
	AvailableSpots      int                         `json:"availableSpots"`
	IsFull              bool                        `json:"isFull"`
	OccupancyPercentage int                         `json:"occupancyPercentage"`
	PriceDisplay        string                      `json:"priceDisplay"`
	Image               string                      `json:"image"`
	IsUpcoming          bool                        `json:"isUpcoming"`
	Registration        *catalog.RegistrationStatus `json:"registration,omitempty"`
}

func NewEventCard(e models.Event, now time.Time) EventCard {
	return EventCard{
		Event:               e,
		Summary:             catalog.Truncate(e.Description, summaryLength),
		StatusInfo:          catalog.StatusInfo(catalog.Classify(e, now)),
		CategoryInfo:        catalog.CategoryInfo(e.Category),
		AvailableSpots:      catalog.AvailableSpots(e),
		IsFull:              catalog.IsFull(e),
		OccupancyPercentage: catalog.OccupancyPercentage(e),
		PriceDisplay:        catalog.PriceDisplay(e.Price),
		Image:               catalog.EventImage(e),
		IsUpcoming:          catalog.IsUpcoming(e, now),
	}
}

// ManageRow is an event as shown in the organizer's management table.
type ManageRow struct {
	EventCard
	Revenue          decimal.Decimal `json:"revenue"`
	RegistrationRate int             `json:"registrationRate"`
	DaysUntil        int             `json:"daysUntil"`
}

func NewManageRow(e models.Event, now time.Time) ManageRow {
	return ManageRow{
		EventCard:        NewEventCard(e, now),
		Revenue:          catalog.Revenue(e),
		RegistrationRate: catalog.RegistrationRate(e),
		DaysUntil:        catalog.DaysUntil(e, now),
	}
}

// EventDetail is the single-event page.
type EventDetail struct {
	EventCard
	CanRegister bool   `json:"canRegister"`
	Reason      string `json:"reason,omitempty"`
	DaysUntil   int    `json:"daysUntil"`
	ShortDate   string `json:"shortDate"`
	Time        string `json:"time"`
}

// RegistrationRow is a registration with display metadata.
type RegistrationRow struct {
	models.Registration
	StatusInfo catalog.RegistrationStatusMeta `json:"statusInfo"`
}

func newRegistrationRows(regs []models.Registration) []RegistrationRow {
	rows := make([]RegistrationRow, 0, len(regs))
	for _, r := range regs {
		rows = append(rows, RegistrationRow{Registration: r, StatusInfo: catalog.RegistrationStatusInfo(r.Status)})
	}
	return rows
}
