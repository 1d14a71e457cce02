package models

const (
	RegistrationPending     = "PENDING"
	RegistrationConfirmed   = "CONFIRMED"
	RegistrationCancelled   = "CANCELLED"
	RegistrationWaitingList = "WAITING_LIST"
)

// RegistrationStatuses lists every registration status in display order.
var RegistrationStatuses = []string{
	RegistrationConfirmed,
	RegistrationPending,
	RegistrationCancelled,
	RegistrationWaitingList,
}

// Registration is a participant's claim on one seat of an event, as served by
// the registration service.
type Registration struct {
	ID               int64     `json:"id"`
	EventID          int64     `json:"eventId"`
	UserID           int64     `json:"userId"`
	ParticipantName  string    `json:"participantName"`
	ParticipantEmail string    `json:"participantEmail"`
	ParticipantPhone string    `json:"participantPhone,omitempty"`
	RegistrationDate Timestamp `json:"registrationDate"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	EventTitle       string    `json:"eventTitle,omitempty"`
	EventDate        string    `json:"eventDate,omitempty"`
	EventLocation    string    `json:"eventLocation,omitempty"`
	EventCategory    string    `json:"eventCategory,omitempty"`
}

type RegistrationRequest struct {
	UserID           int64  `json:"userId"`
	ParticipantName  string `json:"participantName" binding:"required,min=2"`
	ParticipantEmail string `json:"participantEmail" binding:"required,email"`
	ParticipantPhone string `json:"participantPhone,omitempty"`
	Notes            string `json:"notes,omitempty"`
	AcceptTerms      bool   `json:"acceptTerms"`
}
