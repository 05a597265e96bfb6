package session

import (
	"sync"

	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

var _ Store = (*Memory)(nil)

// Memory is a process-local session store. Suitable for tests and for
// embedding the client where persistence across restarts is not wanted.
type Memory struct {
	mu sync.RWMutex
	s  state
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Token
}

func (m *Memory) UserID() domain.UserID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.UserID
}

func (m *Memory) Role() domain.Role {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.role()
}

func (m *Memory) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Token != ""
}

func (m *Memory) Set(token string, userID domain.UserID, role domain.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = state{Token: token, UserID: userID, Role: role}
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = state{}
	return nil
}
