package sdk

import (
	"strconv"
	"sync"
)

// Session keys persisted by a SessionStore.
const (
	KeyToken     = "auth_token"
	KeyUserID    = "user_id"
	KeyUserName  = "user_name"
	KeyUserEmail = "user_email"
	KeyUserRole  = "user_role"
)

// SessionKeys lists every key a SessionStore may hold.
var SessionKeys = []string{KeyToken, KeyUserID, KeyUserName, KeyUserEmail, KeyUserRole}

// SessionStore is the persistent key-value store backing the current session.
// Set and Clear must be durable when they return. Clear removes every key in
// one step so readers never observe a partially cleared session.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Clear() error
}

// Session is the typed view of the values held in a SessionStore.
// Zero values mean the field is absent.
type Session struct {
	Token     string
	UserID    int64
	UserName  string
	UserEmail string
	Role      Role
}

// IsAuthenticated reports whether both a token and a user id are present.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.UserID > 0
}

// LoadSession reads the current session from store.
func LoadSession(store SessionStore) Session {
	var s Session
	if store == nil {
		return s
	}
	s.Token, _ = store.Get(KeyToken)
	if raw, ok := store.Get(KeyUserID); ok {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			s.UserID = id
		}
	}
	s.UserName, _ = store.Get(KeyUserName)
	s.UserEmail, _ = store.Get(KeyUserEmail)
	if raw, ok := store.Get(KeyUserRole); ok {
		s.Role = Role(raw)
	}
	return s
}

// MemoryStore is an in-process SessionStore.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// Ensure MemoryStore implements SessionStore at compile time.
var _ SessionStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Set stores value under key. An empty value removes the key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == "" {
		delete(s.values, key)
		return nil
	}
	s.values[key] = value
	return nil
}

// Clear removes every key.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return nil
}
