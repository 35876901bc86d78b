package session

import "sync"

// Store keeps sessions in memory keyed by session ID. Sessions are copied in
// and out by value, so concurrent requests never share a mutable Session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
	machine  *Machine
}

func NewStore(machine *Machine) *Store {
	return &Store{
		sessions: make(map[string]Session),
		machine:  machine,
	}
}

// GetOrCreate returns the stored session for the ID, creating one at the
// start of the course when the ID is unknown.
func (s *Store) GetOrCreate(id string) Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[id]; ok {
		return sess
	}
	sess = s.machine.Home()
	s.sessions[id] = sess
	return sess
}

// Put stores the session state for the ID, replacing any previous state.
func (s *Store) Put(id string, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

// Count returns the number of tracked sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
