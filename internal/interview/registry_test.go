package interview

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexchen/identity-vault/pkg/ai"
)

func TestRegistryCreateAndWith(t *testing.T) {
	r := NewRegistry(time.Hour)
	defer r.Close()

	s := r.Create(ai.JobDescription{Position: "SRE"})
	require.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, 1, r.Len())

	err := r.With(s.ID, func(s *Session) error {
		s.History = append(s.History, ai.Turn{Role: "interviewer", Content: "hello"})
		s.Questions = 1
		return nil
	})
	require.NoError(t, err)

	err = r.With(s.ID, func(s *Session) error {
		assert.Len(t, s.History, 1)
		assert.Equal(t, 1, s.Questions)
		return nil
	})
	require.NoError(t, err)
}

func TestRegistryUnknownSession(t *testing.T) {
	r := NewRegistry(time.Hour)
	defer r.Close()

	err := r.With(uuid.New(), func(*Session) error { return nil })
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry(time.Hour)
	defer r.Close()

	s := r.Create(ai.JobDescription{Position: "SRE"})
	r.Remove(s.ID)
	err := r.With(s.ID, func(*Session) error { return nil })
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, 0, r.Len())
}

func TestRegistryEvictsIdleSessions(t *testing.T) {
	r := NewRegistry(time.Hour)
	defer r.Close()

	stale := r.Create(ai.JobDescription{Position: "SRE"})
	fresh := r.Create(ai.JobDescription{Position: "SWE"})

	// Age the first session past the TTL by hand, then run one sweep.
	r.mu.Lock()
	r.sessions[stale.ID].LastActive = time.Now().Add(-2 * time.Hour)
	r.mu.Unlock()
	r.evictIdle(time.Now())

	assert.Equal(t, 1, r.Len())
	err := r.With(stale.ID, func(*Session) error { return nil })
	assert.True(t, errors.Is(err, ErrNotFound))
	require.NoError(t, r.With(fresh.ID, func(*Session) error { return nil }))
}

func TestRegistrySessionIsolation(t *testing.T) {
	r := NewRegistry(time.Hour)
	defer r.Close()

	a := r.Create(ai.JobDescription{Position: "A"})
	b := r.Create(ai.JobDescription{Position: "B"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.With(a.ID, func(s *Session) error {
				s.Questions++
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_ = r.With(b.ID, func(s *Session) error {
				s.Questions++
				return nil
			})
		}()
	}
	wg.Wait()

	_ = r.With(a.ID, func(s *Session) error {
		assert.Equal(t, 50, s.Questions)
		return nil
	})
	_ = r.With(b.ID, func(s *Session) error {
		assert.Equal(t, 50, s.Questions)
		return nil
	})
}

func TestRegistryCloseDropsSessions(t *testing.T) {
	r := NewRegistry(time.Hour)
	r.Create(ai.JobDescription{Position: "SRE"})
	r.Close()
	assert.Equal(t, 0, r.Len())
	// Close is idempotent.
	r.Close()
}
