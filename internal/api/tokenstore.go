package api

import "sync"

// TokenStore supplies the bearer token for API requests. The dashboard core
// never obtains or refreshes tokens itself; the host application provides a
// store, and tests provide fakes.
type TokenStore interface {
	// Token returns the current bearer token and whether one is present.
	Token() (string, bool)
}

// StaticTokenStore is a TokenStore holding a fixed token. An empty token
// means "not signed in".
type StaticTokenStore string

// Token implements TokenStore.
func (s StaticTokenStore) Token() (string, bool) {
	return string(s), s != ""
}

// MemoryTokenStore is a mutable, concurrency-safe TokenStore for hosts that
// sign in and out during the process lifetime.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// Token implements TokenStore.
func (s *MemoryTokenStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Set replaces the stored token.
func (s *MemoryTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear removes the stored token.
func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
