// Package session keeps one presentation state per browser.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"

	"github.com/marianozunino/share/internal/metrics"
	"github.com/marianozunino/share/internal/ui"
)

// Session is the state of one browser: its page, upload panel and pending toasts
type Session struct {
	ID     uuid.UUID
	Page   *ui.Page
	Panel  *ui.UploadPanel
	Toasts *ui.Toasts
}

// Store is a bounded, expiring set of sessions
type Store struct {
	backend ui.Backend
	maxSize string
	cache   *expirable.LRU[string, *Session]
}

// NewStore creates a store holding at most size sessions, each for ttl after its creation
func NewStore(backend ui.Backend, maxSize string, size int, ttl time.Duration) *Store {
	onEvict := func(id string, _ *Session) {
		metrics.ActiveSessions.Dec()
		log.Debug().Str("session", id).Msg("Session evicted")
	}

	return &Store{
		backend: backend,
		maxSize: maxSize,
		cache:   expirable.NewLRU[string, *Session](size, onEvict, ttl),
	}
}

// Get returns the session for id, if it is still held
func (s *Store) Get(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	return s.cache.Get(id)
}

// Create starts a new session and mounts its page. A failed initial fetch
// leaves the list empty; the user can refresh later.
func (s *Store) Create(ctx context.Context) *Session {
	toasts := &ui.Toasts{}
	page := ui.NewPage(s.backend)
	panel := ui.NewUploadPanel(s.backend, toasts, s.maxSize)
	panel.Subscribe(page)

	sess := &Session{
		ID:     uuid.New(),
		Page:   page,
		Panel:  panel,
		Toasts: toasts,
	}

	if err := page.Mount(ctx); err != nil {
		log.Warn().Err(err).Str("session", sess.ID.String()).Msg("Initial file list unavailable")
	}

	s.cache.Add(sess.ID.String(), sess)
	metrics.ActiveSessions.Inc()

	return sess
}

// GetOrCreate returns the session for id or a fresh one. created reports which.
func (s *Store) GetOrCreate(ctx context.Context, id string) (sess *Session, created bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}
	return s.Create(ctx), true
}

// Remove drops the session for id
func (s *Store) Remove(id string) {
	s.cache.Remove(id)
}

// Purge drops every session
func (s *Store) Purge() {
	s.cache.Purge()
}

// Len returns the number of sessions held
func (s *Store) Len() int {
	return s.cache.Len()
}
