package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/farellandr/eventportal/internal/models"
	"github.com/farellandr/eventportal/internal/session"
)

// EventService is the event side of the backend.
type EventService interface {
	ListEvents(ctx context.Context, s *session.Session) ([]models.Event, error)
	GetEvent(ctx context.Context, s *session.Session, id int64) (*models.Event, error)
	ListOrganizerEvents(ctx context.Context, s *session.Session, organizerID int64) ([]models.Event, error)
	CreateEvent(ctx context.Context, s *session.Session, in models.EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, s *session.Session, id int64, in models.EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, s *session.Session, id int64) error
}

func (c *Client) ListEvents(ctx context.Context, s *session.Session) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, s, "ListEvents", http.MethodGet, "/api/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, s *session.Session, id int64) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, s, "GetEvent", http.MethodGet, fmt.Sprintf("/api/events/%d", id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) ListOrganizerEvents(ctx context.Context, s *session.Session, organizerID int64) ([]models.Event, error) {
	var events []models.Event
	path := fmt.Sprintf("/api/events/organizer/%d", organizerID)
	if err := c.do(ctx, s, "ListOrganizerEvents", http.MethodGet, path, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, s *session.Session, in models.EventInput) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, s, "CreateEvent", http.MethodPost, "/api/events", in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, s *session.Session, id int64, in models.EventInput) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, s, "UpdateEvent", http.MethodPut, fmt.Sprintf("/api/events/%d", id), in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, s *session.Session, id int64) error {
	return c.do(ctx, s, "DeleteEvent", http.MethodDelete, fmt.Sprintf("/api/events/%d", id), nil, nil)
}
