package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"fleet-dispatch/internal/dispatch"
)

// Store keeps conversation sessions in memory with LRU + TTL eviction.
// Turn processing for one session is serialized through a per-entry mutex;
// distinct sessions proceed in parallel.
type Store struct {
	mu      sync.Mutex
	entries *expirable.LRU[string, *entry]
}

type entry struct {
	mu   sync.Mutex
	sess *dispatch.Session
}

// New creates a Store holding at most capacity sessions, each expiring ttl
// after last use.
func New(capacity int, ttl time.Duration) *Store {
	return &Store{
		entries: expirable.NewLRU[string, *entry](capacity, nil, ttl),
	}
}

// Acquire returns the session for id, creating it when absent, with its
// per-session lock held. The caller must invoke release when the turn is
// done; until then no other turn can touch this session.
func (s *Store) Acquire(id string) (*dispatch.Session, func()) {
	s.mu.Lock()
	e, ok := s.entries.Get(id)
	if !ok {
		e = &entry{sess: dispatch.NewSession(id)}
		s.entries.Add(id, e)
	}
	s.mu.Unlock()

	e.mu.Lock()
	return e.sess, e.mu.Unlock
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Len()
}
