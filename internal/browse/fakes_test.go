package browse

import (
	"context"
	"fmt"
	"sync"

	"github.com/farellandr/eventportal/internal/gateway"
	"github.com/farellandr/eventportal/internal/models"
	"github.com/farellandr/eventportal/internal/session"
)

// fakeBackend is an in-memory EventService and RegistrationService.
type fakeBackend struct {
	mu sync.Mutex

	events        []models.Event
	registrations []models.Registration
	listErr       error
	regsErr       error

	// onList runs inside ListEvents before it answers.
	onList func()

	updated   []models.EventInput
	cancelled []int64
	nextRegID int64
}

func notFound(op string) error {
	return &gateway.StatusError{Op: op, Code: 404}
}

func (f *fakeBackend) ListEvents(ctx context.Context, s *session.Session) ([]models.Event, error) {
	if f.onList != nil {
		f.onList()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Event(nil), f.events...), nil
}

func (f *fakeBackend) GetEvent(ctx context.Context, s *session.Session, id int64) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, notFound("GetEvent")
}

func (f *fakeBackend) ListOrganizerEvents(ctx context.Context, s *session.Session, organizerID int64) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Event
	for _, e := range f.events {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeBackend) CreateEvent(ctx context.Context, s *session.Session, in models.EventInput) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := models.Event{
		ID:              int64(len(f.events) + 100),
		Title:           in.Title,
		Date:            in.Date,
		Location:        in.Location,
		Category:        in.Category,
		MaxParticipants: in.MaxParticipants,
		Price:           in.Price,
		OrganizerID:     in.OrganizerID,
		Status:          in.Status,
		IsActive:        in.IsActive,
	}
	f.events = append(f.events, e)
	return &e, nil
}

func (f *fakeBackend) UpdateEvent(ctx context.Context, s *session.Session, id int64, in models.EventInput) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, in)
	for i, e := range f.events {
		if e.ID == id {
			f.events[i].Title = in.Title
			f.events[i].Status = in.Status
			f.events[i].IsActive = in.IsActive
			updated := f.events[i]
			return &updated, nil
		}
	}
	return nil, notFound("UpdateEvent")
}

func (f *fakeBackend) DeleteEvent(ctx context.Context, s *session.Session, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return notFound("DeleteEvent")
}

func (f *fakeBackend) ListUserRegistrations(ctx context.Context, s *session.Session, userID int64) ([]models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.regsErr != nil {
		return nil, f.regsErr
	}
	var out []models.Registration
	for _, r := range f.registrations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBackend) ListEventRegistrations(ctx context.Context, s *session.Session, eventID int64) ([]models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.regsErr != nil {
		return nil, f.regsErr
	}
	var out []models.Registration
	for _, r := range f.registrations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBackend) Register(ctx context.Context, s *session.Session, eventID int64, req models.RegistrationRequest) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextRegID++
	r := models.Registration{
		ID:               1000 + f.nextRegID,
		EventID:          eventID,
		UserID:           req.UserID,
		ParticipantName:  req.ParticipantName,
		ParticipantEmail: req.ParticipantEmail,
		Status:           models.RegistrationConfirmed,
	}
	f.registrations = append(f.registrations, r)
	return &r, nil
}

func (f *fakeBackend) CancelRegistration(ctx context.Context, s *session.Session, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.registrations {
		if r.ID == id {
			f.registrations[i].Status = models.RegistrationCancelled
			f.cancelled = append(f.cancelled, id)
			return nil
		}
	}
	return notFound("CancelRegistration")
}

func (f *fakeBackend) UpdateRegistrationStatus(ctx context.Context, s *session.Session, id int64, status string) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.registrations {
		if r.ID == id {
			f.registrations[i].Status = status
			updated := f.registrations[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("registration %d: %w", id, gateway.ErrNotFound)
}
