package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The backend reads prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	CategoryConference = "CONFERENCE"
	CategoryFormation  = "FORMATION"
	CategoryConcert    = "CONCERT"
	CategorySport      = "SPORT"
	CategoryNetworking = "NETWORKING"
	CategoryWorkshop   = "WORKSHOP"
	CategoryExposition = "EXPOSITION"
	CategoryFestival   = "FESTIVAL"
	CategorySeminaire  = "SEMINAIRE"
	CategoryOther      = "AUTRE"
)

// Event is an event record as served by the event service.
//
// CurrentParticipants <= MaxParticipants is owned by the backend and is not
// checked here.
type Event struct {
	ID                  int64           `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Date                Timestamp       `json:"date"`
	Location            string          `json:"location"`
	Category            string          `json:"category"`
	MediaURLs           []string        `json:"mediaUrls,omitempty"`
	ImageURL            string          `json:"imageUrl,omitempty"`
	MaxParticipants     int             `json:"maxParticipants"`
	CurrentParticipants int             `json:"currentParticipants"`
	AvailablePlaces     *int            `json:"availablePlaces,omitempty"`
	Price               decimal.Decimal `json:"price"`
	OrganizerID         int64           `json:"organizerId"`
	Status              string          `json:"status,omitempty"`
	IsActive            *bool           `json:"isActive,omitempty"`
	CreatedAt           *Timestamp      `json:"createdAt,omitempty"`
	UpdatedAt           *Timestamp      `json:"updatedAt,omitempty"`
}

// EventInput is the body sent to the event service on create and update.
type EventInput struct {
	Title           string          `json:"title" binding:"required,min=3"`
	Description     string          `json:"description"`
	Date            Timestamp       `json:"date"`
	Location        string          `json:"location" binding:"required"`
	Category        string          `json:"category" binding:"required"`
	MediaURLs       []string        `json:"mediaUrls,omitempty"`
	MaxParticipants int             `json:"maxParticipants" binding:"required,min=1"`
	Price           decimal.Decimal `json:"price"`
	OrganizerID     int64           `json:"organizerId"`
	Status          string          `json:"status,omitempty"`
	IsActive        *bool           `json:"isActive,omitempty"`
}

func BoolPtr(b bool) *bool {
	return &b
}

// Input copies the writable fields of e.
func (e Event) Input() EventInput {
	return EventInput{
		Title:           e.Title,
		Description:     e.Description,
		Date:            e.Date,
		Location:        e.Location,
		Category:        e.Category,
		MediaURLs:       e.MediaURLs,
		MaxParticipants: e.MaxParticipants,
		Price:           e.Price,
		OrganizerID:     e.OrganizerID,
		Status:          e.Status,
		IsActive:        e.IsActive,
	}
}
