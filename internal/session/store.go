package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrStoreFull = errors.New("too many live sessions")
)

const DefaultStoreLimit = 1024

// Store keeps live sessions in memory for the HTTP API. Nothing outlives the
// process.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	limit    int
	opts     []Option
}

// NewStore creates a store holding at most limit sessions, each created with
// opts. A non-positive limit falls back to DefaultStoreLimit.
func NewStore(limit int, opts ...Option) *Store {
	if limit <= 0 {
		limit = DefaultStoreLimit
	}
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		limit:    limit,
		opts:     opts,
	}
}

func (st *Store) Create(opts ...Option) (Snapshot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.sessions) >= st.limit {
		return Snapshot{}, ErrStoreFull
	}

	all := make([]Option, 0, len(st.opts)+len(opts))
	all = append(all, st.opts...)
	s := New(append(all, opts...)...)
	st.sessions[s.ID] = s
	return s.Snapshot(), nil
}

// Do runs fn with exclusive access to the session identified by id.
func (st *Store) Do(id uuid.UUID, fn func(s *Session) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

func (st *Store) Delete(id uuid.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(st.sessions, id)
	return nil
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
