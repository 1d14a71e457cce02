package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/farellandr/eventportal/internal/models"
)

// Status is the canonical display state of an event.
type Status string

const (
	StatusPublished Status = "PUBLISHED"
	StatusDraft     Status = "DRAFT"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// statusAliases is the canonical normalization table. Every spelling the event
// service or older clients have used for a status maps to exactly one value.
var statusAliases = map[Status][]string{
	StatusPublished: {"PUBLISHED", "ACTIVE", "ACTIF"},
	StatusDraft:     {"DRAFT", "BROUILLON"},
	StatusCancelled: {"CANCELLED", "CANCELED", "ANNULLE", "ANNULE"},
	StatusCompleted: {"COMPLETED", "TERMINE", "FINISHED"},
}

var aliasIndex = func() map[string]Status {
	index := make(map[string]Status)
	for canonical, aliases := range statusAliases {
		for _, alias := range aliases {
			index[alias] = canonical
		}
	}
	return index
}()

// Canonical resolves s through the alias table. Values outside the table are
// returned upper-cased.
func Canonical(s string) Status {
	key := strings.ToUpper(strings.TrimSpace(s))
	if canonical, ok := aliasIndex[key]; ok {
		return canonical
	}
	return Status(key)
}

// IsKnown reports whether s resolves to one of the four canonical statuses.
func IsKnown(s string) bool {
	_, ok := aliasIndex[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}

// Classify returns the explicit status of the event when set. Otherwise it
// derives one: past events are COMPLETED, events explicitly marked inactive are
// CANCELLED, the rest are PUBLISHED.
func Classify(event models.Event, now time.Time) string {
	if strings.TrimSpace(event.Status) != "" {
		return event.Status
	}
	if event.Date.Before(now) {
		return string(StatusCompleted)
	}
	if event.IsActive != nil && !*event.IsActive {
		return string(StatusCancelled)
	}
	return string(StatusPublished)
}

type StatusMeta struct {
	Status Status `json:"status"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Icon   string `json:"icon"`
}

var statusMeta = map[Status]StatusMeta{
	StatusPublished: {Status: StatusPublished, Label: "Publié", Color: "#10B981", Icon: "✅"},
	StatusDraft:     {Status: StatusDraft, Label: "Brouillon", Color: "#F59E0B", Icon: "📝"},
	StatusCancelled: {Status: StatusCancelled, Label: "Annulé", Color: "#EF4444", Icon: "❌"},
	StatusCompleted: {Status: StatusCompleted, Label: "Terminé", Color: "#6B7280", Icon: "🏁"},
}

// StatusInfo returns display metadata for s. Unknown statuses get a neutral
// color and icon and a capitalized label.
func StatusInfo(s string) StatusMeta {
	canonical := Canonical(s)
	if meta, ok := statusMeta[canonical]; ok {
		return meta
	}
	label := string(canonical)
	if r, n := utf8.DecodeRuneInString(label); n > 0 {
		label = string(r) + strings.ToLower(label[n:])
	}
	return StatusMeta{Status: canonical, Label: label, Color: "#3B82F6", Icon: "📅"}
}

// IsUpcoming reports whether the event still lies ahead and has not been
// cancelled or completed.
func IsUpcoming(event models.Event, now time.Time) bool {
	switch Canonical(Classify(event, now)) {
	case StatusCancelled, StatusCompleted:
		return false
	}
	return event.Date.After(now)
}

// ParseStatusChange maps an organizer's requested status to the value stored on
// the event. It returns false for values outside the alias table.
func ParseStatusChange(requested string) (Status, bool) {
	if !IsKnown(requested) {
		return "", false
	}
	return Canonical(requested), true
}
