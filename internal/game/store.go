package game

import "sync"

// Store holds active sessions. Implementations may be backed by memory
// (this package) or anything keyed by session id; durability is
// explicitly not required.
type Store interface {
	// Save persists or updates a session.
	Save(s *Session) error

	// Get retrieves a session by id. Returns ErrSessionNotFound when
	// the id is unknown.
	Get(id string) (*Session, error)
}

// memoryStore is a map-based Store. The RWMutex guards the map only;
// per-session mutation is serialized by each Session's own mutex.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs an in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]*Session)}
}

func (m *memoryStore) Save(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memoryStore) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}
