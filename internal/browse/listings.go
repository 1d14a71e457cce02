package browse

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/farellandr/eventportal/internal/catalog"
	"github.com/farellandr/eventportal/internal/models"
	"github.com/farellandr/eventportal/internal/monitoring"
	"github.com/farellandr/eventportal/internal/session"
)

const registrationsView = "registrations"

type BrowseQuery struct {
	Criteria catalog.Criteria
	// Explicit is set when the criteria came with the request. Otherwise the
	// user's saved criteria are used.
	Explicit bool
	Page     int
}

type BrowseResult struct {
	Events        []EventCard        `json:"events"`
	Pagination    catalog.Pagination `json:"pagination"`
	Filters       catalog.Criteria   `json:"filters"`
	ActiveFilters int                `json:"active_filters"`
	HasError      bool               `json:"has_error"`
	Stale         bool               `json:"stale"`
}

// Browse lists the public catalog. sess may be nil for anonymous visitors;
// when set, each card carries the user's registration status and explicit
// criteria are saved for the next visit.
func (s *Service) Browse(ctx context.Context, sess *session.Session, q BrowseQuery) BrowseResult {
	criteria := q.Criteria.Normalize()

	var ticket Ticket
	if sess != nil {
		ticket = s.seq.Begin(sess.UserID, s.browseView.Name)
		if !q.Explicit {
			saved, ok, err := s.filters.Load(ctx, sess.UserID)
			if err != nil {
				s.log.Warn("failed to load saved filters", zap.Int64("user_id", sess.UserID), zap.Error(err))
			} else if ok {
				criteria = saved
			}
		}
	}

	result := BrowseResult{
		Events:        []EventCard{},
		Filters:       criteria,
		ActiveFilters: criteria.ActiveCount(),
	}

	events, err := s.events.ListEvents(ctx, sess)
	if err != nil {
		s.log.Warn("failed to list events", zap.Error(err))
		result.HasError = true
	}

	now := s.now()
	listing := s.browseView.Run(events, criteria, "", q.Page, now)
	result.Pagination = listing.Pagination

	var regs []models.Registration
	regsLoaded := false
	if sess != nil && len(listing.Events) > 0 {
		regs, err = s.registrations.ListUserRegistrations(ctx, sess, sess.UserID)
		if err != nil {
			s.log.Warn("failed to list user registrations", zap.Int64("user_id", sess.UserID), zap.Error(err))
		} else {
			regsLoaded = true
		}
	}

	for _, e := range listing.Events {
		card := NewEventCard(e, now)
		if regsLoaded {
			status := catalog.ResolveRegistration(regs, e.ID)
			card.Registration = &status
		}
		result.Events = append(result.Events, card)
	}

	if !ticket.IsLatest() {
		result.Stale = true
		monitoring.RecordStaleView(s.browseView.Name)
		return result
	}
	if sess != nil && q.Explicit {
		if err := s.filters.Save(ctx, sess.UserID, criteria); err != nil {
			s.log.Warn("failed to save filters", zap.Int64("user_id", sess.UserID), zap.Error(err))
		}
	}
	return result
}

type ManageQuery struct {
	Criteria catalog.Criteria
	Sort     catalog.SortKey
	Page     int
}

type ManageResult struct {
	Events     []ManageRow        `json:"events"`
	Pagination catalog.Pagination `json:"pagination"`
	Filters    catalog.Criteria   `json:"filters"`
	Sort       catalog.SortKey    `json:"sort"`
	HasError   bool               `json:"has_error"`
	Stale      bool               `json:"stale"`
}

// organizerEvents returns the events sess manages. Admins manage every event.
func (s *Service) organizerEvents(ctx context.Context, sess *session.Session) ([]models.Event, error) {
	if sess.IsAdmin() {
		return s.events.ListEvents(ctx, sess)
	}
	return s.events.ListOrganizerEvents(ctx, sess, sess.UserID)
}

// Manage lists the organizer's events with status filtering and sorting.
func (s *Service) Manage(ctx context.Context, sess *session.Session, q ManageQuery) ManageResult {
	ticket := s.seq.Begin(sess.UserID, s.manageView.Name)
	criteria := q.Criteria.Normalize()

	sortKey := q.Sort
	if sortKey == "" {
		sortKey = s.manageView.DefaultSort
	}

	result := ManageResult{
		Events:  []ManageRow{},
		Filters: criteria,
		Sort:    sortKey,
	}

	events, err := s.organizerEvents(ctx, sess)
	if err != nil {
		s.log.Warn("failed to list organizer events", zap.Int64("user_id", sess.UserID), zap.Error(err))
		result.HasError = true
	}

	now := s.now()
	listing := s.manageView.Run(events, criteria, sortKey, q.Page, now)
	result.Pagination = listing.Pagination
	for _, e := range listing.Events {
		result.Events = append(result.Events, NewManageRow(e, now))
	}

	if !ticket.IsLatest() {
		result.Stale = true
		monitoring.RecordStaleView(s.manageView.Name)
	}
	return result
}

// ExportEvents returns every event of the manage view matching q, sorted and
// unpaginated.
func (s *Service) ExportEvents(ctx context.Context, sess *session.Session, q ManageQuery) ([]models.Event, error) {
	events, err := s.organizerEvents(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("export events: %w", err)
	}
	return s.manageView.Run(events, q.Criteria.Normalize(), q.Sort, 1, s.now()).Matched, nil
}

func (s *Service) Stats(ctx context.Context, sess *session.Session) (catalog.OrganizerStats, error) {
	events, err := s.organizerEvents(ctx, sess)
	if err != nil {
		return catalog.OrganizerStats{}, fmt.Errorf("organizer stats: %w", err)
	}
	return catalog.ComputeStats(events, s.now()), nil
}

type RegistrationsResult struct {
	Registrations []RegistrationRow `json:"registrations"`
	Counts        map[string]int    `json:"counts"`
	Status        string            `json:"status"`
	Total         int               `json:"total"`
	HasError      bool              `json:"has_error"`
	Stale         bool              `json:"stale,omitempty"`
}

func newRegistrationsResult(regs []models.Registration, status string) RegistrationsResult {
	if status == "" {
		status = "ALL"
	}
	return RegistrationsResult{
		Registrations: newRegistrationRows(catalog.FilterRegistrations(regs, status)),
		Counts:        catalog.CountByStatus(regs),
		Status:        status,
		Total:         len(regs),
	}
}

// MyRegistrations lists the user's registrations filtered by status. Counts
// always cover every registration.
func (s *Service) MyRegistrations(ctx context.Context, sess *session.Session, status string) RegistrationsResult {
	ticket := s.seq.Begin(sess.UserID, registrationsView)

	regs, err := s.registrations.ListUserRegistrations(ctx, sess, sess.UserID)
	if err != nil {
		s.log.Warn("failed to list user registrations", zap.Int64("user_id", sess.UserID), zap.Error(err))
	}

	result := newRegistrationsResult(regs, status)
	result.HasError = err != nil
	if !ticket.IsLatest() {
		result.Stale = true
		monitoring.RecordStaleView(registrationsView)
	}
	return result
}

// EventRegistrations lists registrations of an event the session owns.
func (s *Service) EventRegistrations(ctx context.Context, sess *session.Session, eventID int64, status string) (RegistrationsResult, error) {
	if _, err := s.OwnedEvent(ctx, sess, eventID); err != nil {
		return RegistrationsResult{}, err
	}

	regs, err := s.registrations.ListEventRegistrations(ctx, sess, eventID)
	if err != nil {
		s.log.Warn("failed to list event registrations", zap.Int64("event_id", eventID), zap.Error(err))
	}

	result := newRegistrationsResult(regs, status)
	result.HasError = err != nil
	return result, nil
}

// ExportRegistrations returns the owned event and its registrations filtered
// by status.
func (s *Service) ExportRegistrations(ctx context.Context, sess *session.Session, eventID int64, status string) (*models.Event, []models.Registration, error) {
	event, err := s.OwnedEvent(ctx, sess, eventID)
	if err != nil {
		return nil, nil, err
	}
	regs, err := s.registrations.ListEventRegistrations(ctx, sess, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("export registrations: %w", err)
	}
	return event, catalog.FilterRegistrations(regs, status), nil
}
