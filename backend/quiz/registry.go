package quiz

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"quizbank/backend/apperr"
)

// Registry keeps in-flight sessions for the HTTP layer, keyed by an opaque
// id. Sessions are never persisted; idle ones are dropped after ttl.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

type entry struct {
	mu      sync.Mutex // serializes access to session
	session *Session

	lastUsed time.Time // guarded by Registry.mu
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Add stores s and returns its id.
func (r *Registry) Add(s *Session) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	id := uuid.NewString()
	r.sessions[id] = &entry{session: s, lastUsed: now}
	return id
}

// With runs fn with exclusive access to the session. Sessions owned by a
// different user are reported as not found.
func (r *Registry) With(id, userID string, fn func(*Session) error) error {
	r.mu.Lock()
	now := r.now()
	e, ok := r.sessions[id]
	if ok && r.expired(e, now) {
		delete(r.sessions, id)
		ok = false
	}
	if ok && e.session.UserID() == userID {
		e.lastUsed = now
	} else {
		ok = false
	}
	r.mu.Unlock()

	if !ok {
		return apperr.NotFound("session", id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Remove drops the session. Like With, it only acts for the owner.
func (r *Registry) Remove(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok || r.expired(e, r.now()) || e.session.UserID() != userID {
		return apperr.NotFound("session", id)
	}
	delete(r.sessions, id)
	return nil
}

// Len reports how many sessions are held, expired ones included until the
// next sweep.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) sweepLocked(now time.Time) {
	for id, e := range r.sessions {
		if r.expired(e, now) {
			delete(r.sessions, id)
		}
	}
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastUsed) > r.ttl
}
