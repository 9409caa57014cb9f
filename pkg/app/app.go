package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/cal/pkg/event"
	"tableflip.dev/cal/pkg/seed"
	"tableflip.dev/cal/pkg/store"
)

// ErrNotFound is returned when no event has the requested id.
var ErrNotFound = errors.New("app: event not found")

// Service owns the canonical event list. Every mutation is persisted before
// it returns, so UIs and CLIs can share the same logic.
type Service struct {
	Persistence store.Persistence
	// NewID generates identifiers for added events.
	NewID func() string
	// Now is used to place seed data.
	Now func() time.Time

	mu     sync.Mutex
	events []*event.Event
}

// New loads the stored events. A store that was never written is seeded with
// the example events and saved right away; an unreadable store is seeded in
// memory only and left untouched until the next successful mutation.
func New(ctx context.Context, p store.Persistence, opts ...Option) (*Service, error) {
	s := &Service{Persistence: p}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Option configures a Service.
type Option func(*Service)

// WithIDs sets the id generator.
func WithIDs(fn func() string) Option {
	return func(s *Service) { s.NewID = fn }
}

// WithClock sets the clock used to place seed events.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.Now = fn }
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Reload replaces the in-memory list with the stored one.
func (s *Service) Reload(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.Persistence.Load(ctx)
	switch {
	case err == nil:
		s.events = events
		return nil
	case errors.Is(err, store.ErrNoData):
		s.events = seed.Events(s.now())
		if err := s.Persistence.Save(ctx, s.events); err != nil {
			slog.Warn("app: persist seed events", "error", err)
		}
		return nil
	default:
		var perr *store.PersistenceError
		if !errors.As(err, &perr) {
			return err
		}
		slog.Warn("app: stored events unreadable, using seed events", "error", err)
		s.events = seed.Events(s.now())
		return nil
	}
}

// List returns copies of the current events in insertion order.
func (s *Service) List() []*event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.events)
}

// Get returns a copy of the event with the given id.
func (s *Service) Get(id string) (*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.events[i].Clone(), nil
	}
	return nil, ErrNotFound
}

// Add stores a new event built from d. The time range is not validated here.
func (s *Service) Add(ctx context.Context, d event.Draft) (*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := event.New(s.newID(), d)
	next := append(cloneAll(s.events), e)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return e.Clone(), nil
}

// Update merges p into the event with the given id.
func (s *Service) Update(ctx context.Context, id string, p event.Patch) (*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	next := cloneAll(s.events)
	p.Apply(next[i])
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return next[i].Clone(), nil
}

// Delete removes the event with the given id. Deleting a missing id is not
// an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return nil
	}
	next := make([]*event.Event, 0, len(s.events)-1)
	next = append(next, cloneAll(s.events[:i])...)
	next = append(next, cloneAll(s.events[i+1:])...)
	return s.commit(ctx, next)
}

// Replace swaps the whole list, for imports.
func (s *Service) Replace(ctx context.Context, events []*event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, cloneAll(events))
}

// commit saves next and only then makes it current, so a failed save leaves
// memory matching the medium. Must be called with mu held.
func (s *Service) commit(ctx context.Context, next []*event.Event) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	if err := s.Persistence.Save(ctx, next); err != nil {
		var perr *store.PersistenceError
		if errors.As(err, &perr) {
			return err
		}
		return &store.PersistenceError{Op: "save", Err: err}
	}
	s.events = next
	return nil
}

func (s *Service) index(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(events []*event.Event) []*event.Event {
	out := make([]*event.Event, 0, len(events))
	for _, e := range events {
		out = append(out, e.Clone())
	}
	return out
}
