package catalog

import (
	"strings"
	"time"

	"github.com/farellandr/eventportal/internal/models"
)

// RegistrationStatus tells whether a user holds a live registration for an
// event.
type RegistrationStatus struct {
	IsRegistered     bool              `json:"isRegistered"`
	RegistrationID   int64             `json:"registrationId,omitempty"`
	Status           string            `json:"status,omitempty"`
	RegistrationDate *models.Timestamp `json:"registrationDate,omitempty"`
}

func isCancelled(r models.Registration) bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), models.RegistrationCancelled)
}

// ResolveRegistration returns the first non-cancelled registration for eventID,
// in input order. At most one such registration is expected per user and
// event; duplicates are not reported.
func ResolveRegistration(regs []models.Registration, eventID int64) RegistrationStatus {
	for _, r := range regs {
		if r.EventID != eventID || isCancelled(r) {
			continue
		}
		date := r.RegistrationDate
		return RegistrationStatus{
			IsRegistered:     true,
			RegistrationID:   r.ID,
			Status:           r.Status,
			RegistrationDate: &date,
		}
	}
	return RegistrationStatus{}
}

// FilterRegistrations keeps registrations with the given status. "ALL" or an
// empty status keeps everything.
func FilterRegistrations(regs []models.Registration, status string) []models.Registration {
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, AllValues) {
		return append([]models.Registration(nil), regs...)
	}
	filtered := make([]models.Registration, 0, len(regs))
	for _, r := range regs {
		if strings.EqualFold(r.Status, status) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// CountByStatus counts registrations per status. Every known status is present
// in the result, zero when absent.
func CountByStatus(regs []models.Registration) map[string]int {
	counts := make(map[string]int, len(models.RegistrationStatuses))
	for _, s := range models.RegistrationStatuses {
		counts[s] = 0
	}
	for _, r := range regs {
		counts[strings.ToUpper(r.Status)]++
	}
	return counts
}

// Reasons returned by CanRegister.
const (
	ReasonInactive          = "event_inactive"
	ReasonPast              = "event_past"
	ReasonAlreadyRegistered = "already_registered"
	ReasonFull              = "event_full"
)

// CanRegister decides whether a user with the given registration status may
// register for event at now. The reason is empty when registration is allowed.
func CanRegister(event models.Event, status RegistrationStatus, now time.Time) (bool, string) {
	switch {
	case event.IsActive != nil && !*event.IsActive:
		return false, ReasonInactive
	case event.Date.Before(now):
		return false, ReasonPast
	case status.IsRegistered:
		return false, ReasonAlreadyRegistered
	case IsFull(event):
		return false, ReasonFull
	}
	return true, ""
}

type RegistrationStatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var registrationMeta = map[string]RegistrationStatusMeta{
	models.RegistrationConfirmed:   {Label: "Confirmée", Color: "#10B981", Icon: "✅"},
	models.RegistrationPending:     {Label: "En attente", Color: "#F59E0B", Icon: "⏳"},
	models.RegistrationCancelled:   {Label: "Annulée", Color: "#EF4444", Icon: "❌"},
	models.RegistrationWaitingList: {Label: "Liste d'attente", Color: "#3B82F6", Icon: "📋"},
}

// RegistrationStatusInfo returns display metadata for a registration status.
func RegistrationStatusInfo(status string) RegistrationStatusMeta {
	if meta, ok := registrationMeta[strings.ToUpper(status)]; ok {
		return meta
	}
	return RegistrationStatusMeta{Label: status, Color: "#6B7280", Icon: "📅"}
}

// IsRegistrationStatus reports whether s is one of the registration statuses.
func IsRegistrationStatus(s string) bool {
	_, ok := registrationMeta[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}
