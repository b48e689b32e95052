// Package session keeps per-user rate-table sessions in process memory.
// Nothing here survives a restart.
package session

import (
	"sync"
	"time"

	"taxengine/internal/rates"

	"github.com/google/uuid"
)

type entry struct {
	rates    *rates.Session
	lastSeen time.Time
}

// Store maps session ids to rate sessions sharing one base table.
// Idle sessions are evicted lazily while the store is being used.
type Store struct {
	mu         sync.Mutex
	entries    map[string]*entry
	base       *rates.Table
	idleTTL    time.Duration
	sweepEvery time.Duration
	lastSweep  time.Time
	now        func() time.Time
}

type Option func(*Store)

func WithIdleTTL(d time.Duration) Option {
	return func(s *Store) { s.idleTTL = d }
}

func WithSweepEvery(d time.Duration) Option {
	return func(s *Store) { s.sweepEvery = d }
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(base *rates.Table, opts ...Option) *Store {
	s := &Store{
		entries:    make(map[string]*entry),
		base:       base,
		idleTTL:    24 * time.Hour,
		sweepEvery: 2 * time.Minute,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastSweep = s.now()
	return s
}

// Create starts a new session and returns its id
func (s *Store) Create() (string, *rates.Session) {
	id := uuid.NewString()
	sess := rates.NewSession(s.base)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)
	s.entries[id] = &entry{rates: sess, lastSeen: now}
	return id, sess
}

// Get returns the live session for id and refreshes its idle timer
func (s *Store) Get(id string) (*rates.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	ent, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if now.Sub(ent.lastSeen) > s.idleTTL {
		delete(s.entries, id)
		return nil, false
	}
	ent.lastSeen = now
	return ent.rates, true
}

// Delete ends a session
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len returns the number of tracked sessions, idle ones included until swept
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep evicts every session idle longer than the TTL
func (s *Store) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(s.now())
}

func (s *Store) sweepLocked(now time.Time) {
	if s.sweepEvery <= 0 || now.Sub(s.lastSweep) < s.sweepEvery {
		return
	}
	s.evictLocked(now)
}

func (s *Store) evictLocked(now time.Time) {
	cutoff := now.Add(-s.idleTTL)
	for id, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, id)
		}
	}
	s.lastSweep = now
}
