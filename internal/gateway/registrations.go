package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/farellandr/eventportal/internal/models"
	"github.com/farellandr/eventportal/internal/session"
)

// RegistrationService is the registration side of the backend.
type RegistrationService interface {
	ListUserRegistrations(ctx context.Context, s *session.Session, userID int64) ([]models.Registration, error)
	ListEventRegistrations(ctx context.Context, s *session.Session, eventID int64) ([]models.Registration, error)
	Register(ctx context.Context, s *session.Session, eventID int64, req models.RegistrationRequest) (*models.Registration, error)
	CancelRegistration(ctx context.Context, s *session.Session, id int64) error
	UpdateRegistrationStatus(ctx context.Context, s *session.Session, id int64, status string) (*models.Registration, error)
}

func (c *Client) ListUserRegistrations(ctx context.Context, s *session.Session, userID int64) ([]models.Registration, error) {
	var regs []models.Registration
	path := fmt.Sprintf("/api/registrations/user/%d", userID)
	if err := c.do(ctx, s, "ListUserRegistrations", http.MethodGet, path, nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func (c *Client) ListEventRegistrations(ctx context.Context, s *session.Session, eventID int64) ([]models.Registration, error) {
	var regs []models.Registration
	path := fmt.Sprintf("/api/registrations/event/%d", eventID)
	if err := c.do(ctx, s, "ListEventRegistrations", http.MethodGet, path, nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func (c *Client) Register(ctx context.Context, s *session.Session, eventID int64, req models.RegistrationRequest) (*models.Registration, error) {
	var reg models.Registration
	path := fmt.Sprintf("/api/registrations/events/%d", eventID)
	if err := c.do(ctx, s, "Register", http.MethodPost, path, req, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (c *Client) CancelRegistration(ctx context.Context, s *session.Session, id int64) error {
	return c.do(ctx, s, "CancelRegistration", http.MethodDelete, fmt.Sprintf("/api/registrations/%d", id), nil, nil)
}

func (c *Client) UpdateRegistrationStatus(ctx context.Context, s *session.Session, id int64, status string) (*models.Registration, error) {
	var reg models.Registration
	path := fmt.Sprintf("/api/registrations/%d/status", id)
	body := map[string]string{"status": status}
	if err := c.do(ctx, s, "UpdateRegistrationStatus", http.MethodPut, path, body, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}
