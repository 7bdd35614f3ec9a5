package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	sess      *Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory with a sliding TTL.
// A zero TTL disables expiry.
type MemoryStore struct {
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
	mu       sync.Mutex
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) expiry(now time.Time) time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(s.ttl)
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// lookupLocked returns a live entry, dropping it if it has expired
func (s *MemoryStore) lookupLocked(id string, now time.Time) (memoryEntry, bool) {
	entry, ok := s.sessions[id]
	if !ok {
		return memoryEntry{}, false
	}
	if entry.expired(now) {
		delete(s.sessions, id)
		return memoryEntry{}, false
	}
	return entry, true
}

// Create stores and returns a new empty session
func (s *MemoryStore) Create(ctx context.Context) (*Session, error) {
	sess := New()

	s.mu.Lock()
	s.sessions[sess.ID] = memoryEntry{sess: sess, expiresAt: s.expiry(s.now())}
	s.mu.Unlock()

	return sess.clone(), nil
}

// Get returns a copy of the session and extends its expiry
func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.lookupLocked(id, now)
	if !ok {
		return nil, ErrNotFound
	}
	entry.expiresAt = s.expiry(now)
	s.sessions[id] = entry

	return entry.sess.clone(), nil
}

// Update applies fn to a copy under the store lock and swaps it in on success
func (s *MemoryStore) Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	current, ok := s.lookupLocked(id, now)
	if !ok {
		return nil, ErrNotFound
	}

	next := current.sess.clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = now.UTC()
	s.sessions[id] = memoryEntry{sess: next, expiresAt: s.expiry(now)}

	return next.clone(), nil
}

// Delete removes the session
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookupLocked(id, s.now()); !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Sweep drops every expired session and returns how many were removed
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, entry := range s.sessions {
		if entry.expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until ctx is done.
// The returned channel is closed once the goroutine has exited.
func (s *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		if interval <= 0 || s.ttl <= 0 {
			<-ctx.Done()
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()

	return done
}

// Len returns the number of stored sessions, including expired ones not yet swept
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
