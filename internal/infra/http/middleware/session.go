package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/xavierca1/lead-intake/internal/entity"
)

// SessionStore keeps issued bearer tokens in memory. Lead management only
// needs the boolean gate; anything fancier belongs to a real auth provider.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entity.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*entity.User)}
}

func (s *SessionStore) Issue(user *entity.User) string {
	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = user
	s.mu.Unlock()
	return token
}

func (s *SessionStore) IsAuthorized(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[token]
	return ok
}

// RequireSession guards the lead-management routes with the session gate.
func RequireSession(store *SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" || !store.IsAuthorized(token) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
