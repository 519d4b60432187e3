package interview

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexchen/identity-vault/pkg/ai"
)

var (
	// ErrNotFound means the session id is unknown or already evicted.
	ErrNotFound = errors.New("interview session not found")
	// ErrEnded means the session was already closed by an end call.
	ErrEnded = errors.New("interview session already ended")
)

// Session is one in-flight mock interview. All mutation goes through
// Registry.With, which holds the per-session lock; sessions are never
// shared across process restarts.
type Session struct {
	ID         uuid.UUID
	Job        ai.JobDescription
	History    []ai.Turn
	Questions  int
	Ended      bool
	StartedAt  time.Time
	LastActive time.Time

	mu sync.Mutex
}

// Registry keeps live interview sessions in memory and evicts the ones
// idle past the TTL. State is deliberately process-local: a restart
// forfeits all interviews.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRegistry builds a registry and starts the eviction sweep.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = time.Hour
	}
	r := &Registry{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go r.sweep()
	return r
}

func (r *Registry) sweep() {
	interval := r.ttl / 4
	if interval > time.Minute {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-r.stop:
			return
		case now := <-t.C:
			r.evictIdle(now)
		}
	}
}

func (r *Registry) evictIdle(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if now.Sub(s.LastActive) > r.ttl {
			delete(r.sessions, id)
		}
	}
}

// Close stops the eviction sweep and drops all sessions.
func (r *Registry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
	r.mu.Lock()
	r.sessions = make(map[uuid.UUID]*Session)
	r.mu.Unlock()
}

// Create registers a new session for the given job.
func (r *Registry) Create(job ai.JobDescription) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:         uuid.New(),
		Job:        job,
		History:    []ai.Turn{},
		StartedAt:  now,
		LastActive: now,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// With runs fn with the session locked, refreshing its idle clock.
// Concurrent calls against the same session serialize; calls against
// different sessions do not.
func (r *Registry) With(id uuid.UUID, fn func(s *Session) error) error {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastActive = time.Now().UTC()
	return fn(s)
}

// Remove drops a session, typically once its feedback is delivered.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
