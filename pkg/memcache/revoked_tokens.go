package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore records JWTs that were logged out before their
// natural expiry. Entries are dropped lazily once the token would have
// expired anyway.
type RevokedTokenStore interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{data: make(map[string]time.Time)}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = time.Now().Add(ttl)
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.data[token]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(s.data, token) // cleanup expired
		return false
	}
	return true
}
