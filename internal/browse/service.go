// Package browse implements the portal's listing and registration use-cases:
// fetch from the backend, run the catalog core, and shape the result.
package browse

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/farellandr/eventportal/internal/catalog"
	"github.com/farellandr/eventportal/internal/filterstore"
	"github.com/farellandr/eventportal/internal/gateway"
)

var (
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrAlreadyCancelled = errors.New("registration already cancelled")
)

// RefusedError is returned when a registration is not allowed for the event.
type RefusedError struct {
	Reason string
}

func (e *RefusedError) Error() string {
	return fmt.Sprintf("registration refused: %s", e.Reason)
}

type Service struct {
	events        gateway.EventService
	registrations gateway.RegistrationService
	filters       *filterstore.Store
	seq           *Sequencer
	log           *zap.Logger
	browseView    catalog.ViewConfig
	manageView    catalog.ViewConfig
	now           func() time.Time
}

type Option func(*Service)

func WithFilterStore(store *filterstore.Store) Option {
	return func(s *Service) { s.filters = store }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPageSizes overrides the page sizes of the browse and manage views.
// Non-positive sizes keep the default.
func WithPageSizes(browse, manage int) Option {
	return func(s *Service) {
		if browse > 0 {
			s.browseView.PageSize = browse
		}
		if manage > 0 {
			s.manageView.PageSize = manage
		}
	}
}

func NewService(events gateway.EventService, registrations gateway.RegistrationService, opts ...Option) *Service {
	s := &Service{
		events:        events,
		registrations: registrations,
		filters:       filterstore.New(nil, 0),
		seq:           NewSequencer(),
		log:           zap.NewNop(),
		browseView:    catalog.BrowseView,
		manageView:    catalog.ManageView,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now is the service clock every computed view is evaluated at.
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) Filters() *filterstore.Store {
	return s.filters
}
