package session

import (
	"sync"

	"github.com/google/uuid"
)

// Role of a logged-in identity.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

// Session is one logged-in customer or admin identity driving calls into the
// domain model.
type Session struct {
	Token     string
	Role      Role
	AccountID string
}

// Manager issues and resolves bearer tokens. Tokens are opaque uuids; the
// registry lives only in memory, so sessions do not survive a restart.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Create(role Role, accountID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{
		Token:     uuid.New().String(),
		Role:      role,
		AccountID: accountID,
	}
	m.sessions[s.Token] = s
	return s
}

func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	return s, ok
}

func (m *Manager) Delete(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
}

// DeleteForAccount drops every session held by accountID, used when the
// account itself is deleted or renamed away.
func (m *Manager) DeleteForAccount(role Role, accountID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, s := range m.sessions {
		if s.Role == role && s.AccountID == accountID {
			delete(m.sessions, token)
		}
	}
}

// Rename repoints every session of the account to a new account ID, used when
// settings updates change the username.
func (m *Manager) Rename(role Role, oldID, newID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		if s.Role == role && s.AccountID == oldID {
			s.AccountID = newID
		}
	}
}
