package editor

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/buttonstrip/pkg/errors"
)

// DefaultSessionTTL bounds how long an idle session is kept.
const DefaultSessionTTL = 10 * time.Minute

// Store keeps live sessions in memory. It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]*Session
}

// NewStore returns an empty store. A ttl of zero uses DefaultSessionTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Put adds a session, evicting expired ones.
func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.evictLocked()
	s.LastSeen = st.now()
	st.sessions[s.ID] = s
}

// Update runs fn on the session with the given ID while holding the store
// lock, so concurrent moves on one session are serialized.
func (st *Store) Update(id string, fn func(*Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, err := st.lookupLocked(id)
	if err != nil {
		return err
	}
	s.LastSeen = st.now()
	return fn(s)
}

// Take removes the session and returns it.
func (st *Store) Take(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, err := st.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	delete(st.sessions, s.ID)
	return s, nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.evictLocked()
	return len(st.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	n := len(st.sessions)
	st.evictLocked()
	return n - len(st.sessions)
}

func (st *Store) lookupLocked(id string) (*Session, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	s, ok := st.sessions[uid]
	if !ok || st.expired(s) {
		delete(st.sessions, uid)
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	return s, nil
}

func (st *Store) expired(s *Session) bool {
	return st.now().Sub(s.LastSeen) > st.ttl
}

func (st *Store) evictLocked() {
	for id, s := range st.sessions {
		if st.expired(s) {
			delete(st.sessions, id)
		}
	}
}
