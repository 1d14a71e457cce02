package catalog

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/farellandr/eventportal/internal/models"
)

const DefaultEventImage = "https://images.unsplash.com/photo-1511578314322-379afb476865?w=800&h=500&fit=crop"

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var categories = []Category{
	{Value: models.CategoryConference, Label: "Conférence", Icon: "🎤", Color: "#3B82F6"},
	{Value: models.CategoryFormation, Label: "Formation", Icon: "🎓", Color: "#10B981"},
	{Value: models.CategoryConcert, Label: "Concert", Icon: "🎵", Color: "#8B5CF6"},
	{Value: models.CategorySport, Label: "Sport", Icon: "⚽", Color: "#EF4444"},
	{Value: models.CategoryNetworking, Label: "Networking", Icon: "🤝", Color: "#F59E0B"},
	{Value: models.CategoryWorkshop, Label: "Atelier", Icon: "🔧", Color: "#EC4899"},
	{Value: models.CategoryExposition, Label: "Exposition", Icon: "🎨", Color: "#6366F1"},
	{Value: models.CategoryFestival, Label: "Festival", Icon: "🎉", Color: "#F97316"},
	{Value: models.CategorySeminaire, Label: "Séminaire", Icon: "📊", Color: "#06B6D4"},
	{Value: models.CategoryOther, Label: "Autre", Icon: "🌟", Color: "#6B7280"},
}

// Categories returns the known categories in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// CategoryInfo returns display metadata for value. Unknown categories keep
// their raw value as label; an absent category is labelled "Non catégorisé".
func CategoryInfo(value string) Category {
	for _, c := range categories {
		if c.Value == value {
			return c
		}
	}
	if strings.TrimSpace(value) == "" {
		return Category{Value: "uncategorized", Label: "Non catégorisé", Icon: "📅", Color: "#6B7280"}
	}
	return Category{Value: value, Label: value, Icon: "📅", Color: "#6B7280"}
}

// AvailableSpots prefers the backend-computed count and falls back to
// max - current. It never goes below zero.
func AvailableSpots(event models.Event) int {
	if event.AvailablePlaces != nil && *event.AvailablePlaces > 0 {
		return *event.AvailablePlaces
	}
	return max(event.MaxParticipants-event.CurrentParticipants, 0)
}

func IsFull(event models.Event) bool {
	return AvailableSpots(event) <= 0
}

// OccupancyPercentage is the rounded share of taken seats.
func OccupancyPercentage(event models.Event) int {
	if event.MaxParticipants <= 0 {
		return 0
	}
	occupied := event.MaxParticipants - AvailableSpots(event)
	return int(math.Round(float64(occupied) / float64(event.MaxParticipants) * 100))
}

// RegistrationRate is the rounded share of currentParticipants over capacity.
func RegistrationRate(event models.Event) int {
	if event.MaxParticipants <= 0 {
		return 0
	}
	return int(math.Round(float64(event.CurrentParticipants) / float64(event.MaxParticipants) * 100))
}

// DaysUntil is the number of days from now to the event, rounded up.
func DaysUntil(event models.Event, now time.Time) int {
	return int(math.Ceil(event.Date.Sub(now).Hours() / 24))
}

// PriceDisplay renders a price for display; zero is "Gratuit".
func PriceDisplay(price decimal.Decimal) string {
	if price.IsZero() {
		return "Gratuit"
	}
	return price.StringFixed(2) + " €"
}

func FormatShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// EventImage returns the first media URL, then the image URL, then a default.
func EventImage(event models.Event) string {
	if len(event.MediaURLs) > 0 && event.MediaURLs[0] != "" {
		return event.MediaURLs[0]
	}
	if event.ImageURL != "" {
		return event.ImageURL
	}
	return DefaultEventImage
}

// Truncate shortens text to maxLength runes, appending "..." when cut. A
// negative maxLength is treated as zero.
func Truncate(text string, maxLength int) string {
	maxLength = max(maxLength, 0)
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxLength]) + "..."
}
