package services

import (
	"sync"

	"github.com/google/uuid"
)

// SessionService maps opaque admin tokens to teacher usernames. Sessions
// live in process memory only: no expiry, no revocation, gone on restart.
type SessionService struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewSessionService() *SessionService {
	return &SessionService{tokens: make(map[string]string)}
}

// Create issues a fresh token for the given teacher.
func (s *SessionService) Create(username string) string {
	token := uuid.NewString()

	s.mu.Lock()
	s.tokens[token] = username
	s.mu.Unlock()

	return token
}

// Lookup returns the teacher owning the token, if any.
func (s *SessionService) Lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username, ok := s.tokens[token]
	return username, ok
}
