package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/farellandr/eventportal/internal/catalog"
	"github.com/farellandr/eventportal/internal/gateway"
	"github.com/farellandr/eventportal/internal/models"
	"github.com/farellandr/eventportal/internal/session"
)

// EventDetail loads one event. With a session it also resolves the user's
// registration and whether they may register.
func (s *Service) EventDetail(ctx context.Context, sess *session.Session, id int64) (*EventDetail, error) {
	event, err := s.events.GetEvent(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	detail := &EventDetail{
		EventCard: NewEventCard(*event, now),
		DaysUntil: catalog.DaysUntil(*event, now),
		ShortDate: catalog.FormatShortDate(event.Date.Time),
		Time:      catalog.FormatTime(event.Date.Time),
	}

	var status catalog.RegistrationStatus
	if sess != nil {
		regs, err := s.registrations.ListUserRegistrations(ctx, sess, sess.UserID)
		if err != nil {
			return nil, fmt.Errorf("resolve registration: %w", err)
		}
		status = catalog.ResolveRegistration(regs, id)
		detail.Registration = &status
	}
	detail.CanRegister, detail.Reason = catalog.CanRegister(*event, status, now)
	return detail, nil
}

// OwnedEvent loads an event and checks sess may manage it.
func (s *Service) OwnedEvent(ctx context.Context, sess *session.Session, id int64) (*models.Event, error) {
	event, err := s.events.GetEvent(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if !sess.Owns(event.OrganizerID) {
		return nil, ErrForbidden
	}
	return event, nil
}

// CreateEvent creates an event owned by sess. Only organizers and admins may
// create events.
func (s *Service) CreateEvent(ctx context.Context, sess *session.Session, in models.EventInput) (*models.Event, error) {
	if !sess.IsOrganizer() {
		return nil, ErrForbidden
	}
	in.OrganizerID = sess.UserID
	if in.IsActive == nil {
		in.IsActive = models.BoolPtr(true)
	}
	return s.events.CreateEvent(ctx, sess, in)
}

// UpdateEvent replaces an owned event's fields. The organizer never changes.
func (s *Service) UpdateEvent(ctx context.Context, sess *session.Session, id int64, in models.EventInput) (*models.Event, error) {
	event, err := s.OwnedEvent(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	in.OrganizerID = event.OrganizerID
	if len(in.MediaURLs) == 0 {
		in.MediaURLs = event.MediaURLs
	}
	if in.Status == "" {
		in.Status = event.Status
	}
	if in.IsActive == nil {
		in.IsActive = event.IsActive
	}
	return s.events.UpdateEvent(ctx, sess, id, in)
}

func (s *Service) DeleteEvent(ctx context.Context, sess *session.Session, id int64) error {
	if _, err := s.OwnedEvent(ctx, sess, id); err != nil {
		return err
	}
	return s.events.DeleteEvent(ctx, sess, id)
}

// ChangeEventStatus sets an owned event's status. Cancelling also deactivates
// the event; any other status reactivates it.
func (s *Service) ChangeEventStatus(ctx context.Context, sess *session.Session, id int64, requested string) (*models.Event, error) {
	status, ok := catalog.ParseStatusChange(requested)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, requested)
	}

	event, err := s.OwnedEvent(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	in := event.Input()
	in.Status = string(status)
	in.IsActive = models.BoolPtr(status != catalog.StatusCancelled)
	return s.events.UpdateEvent(ctx, sess, id, in)
}

// Register registers the session user for an event after checking the event
// accepts them.
func (s *Service) Register(ctx context.Context, sess *session.Session, eventID int64, req models.RegistrationRequest) (*models.Registration, *models.Event, error) {
	event, err := s.events.GetEvent(ctx, sess, eventID)
	if err != nil {
		return nil, nil, err
	}
	regs, err := s.registrations.ListUserRegistrations(ctx, sess, sess.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve registration: %w", err)
	}

	if ok, reason := catalog.CanRegister(*event, catalog.ResolveRegistration(regs, eventID), s.now()); !ok {
		return nil, event, &RefusedError{Reason: reason}
	}

	req.UserID = sess.UserID
	reg, err := s.registrations.Register(ctx, sess, eventID, req)
	if err != nil {
		return nil, event, err
	}
	return reg, event, nil
}

// UserRegistration finds one of the session user's registrations.
func (s *Service) UserRegistration(ctx context.Context, sess *session.Session, id int64) (*models.Registration, error) {
	regs, err := s.registrations.ListUserRegistrations(ctx, sess, sess.UserID)
	if err != nil {
		return nil, err
	}
	for _, r := range regs {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("registration %d: %w", id, gateway.ErrNotFound)
}

// Cancel cancels one of the session user's registrations.
func (s *Service) Cancel(ctx context.Context, sess *session.Session, id int64) (*models.Registration, error) {
	reg, err := s.UserRegistration(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(reg.Status, models.RegistrationCancelled) {
		return nil, ErrAlreadyCancelled
	}
	if err := s.registrations.CancelRegistration(ctx, sess, id); err != nil {
		return nil, err
	}
	reg.Status = models.RegistrationCancelled
	return reg, nil
}

// EventRegistration finds a registration of an event the session owns.
func (s *Service) EventRegistration(ctx context.Context, sess *session.Session, eventID, id int64) (*models.Registration, error) {
	if _, err := s.OwnedEvent(ctx, sess, eventID); err != nil {
		return nil, err
	}
	regs, err := s.registrations.ListEventRegistrations(ctx, sess, eventID)
	if err != nil {
		return nil, err
	}
	for _, r := range regs {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("registration %d: %w", id, gateway.ErrNotFound)
}

// UpdateRegistrationStatus lets an organizer move a registration of their
// event to another status.
func (s *Service) UpdateRegistrationStatus(ctx context.Context, sess *session.Session, eventID, id int64, status string) (*models.Registration, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !catalog.IsRegistrationStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if _, err := s.EventRegistration(ctx, sess, eventID, id); err != nil {
		return nil, err
	}
	return s.registrations.UpdateRegistrationStatus(ctx, sess, id, status)
}
