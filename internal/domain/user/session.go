package user

import "sync"

// Session holds the single authenticated identity of the running process.
// There is exactly one active identity at a time; a successful register or
// login replaces it, logout clears it.
type Session struct {
	mu      sync.RWMutex
	current *User
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Set(account User) {
	s.mu.Lock()
	s.current = &account
	s.mu.Unlock()
}

func (s *Session) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Session) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return User{}, false
	}
	return *s.current, true
}
