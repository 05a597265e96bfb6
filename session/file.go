package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

var _ Store = (*File)(nil)

// File is a session store persisted as one JSON file, the durable
// footprint of the client. Writes go through a temp file and rename so a
// crash mid-write never leaves a partial session on disk.
type File struct {
	mu   sync.RWMutex
	path string
	s    state
}

// NewFile opens (or creates the directory for) the session file at path.
// An existing file is loaded; a missing one means "logged out".
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create session dir: %w", err)
	}

	f := &File{path: path}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read session file: %w", err)
	}
	if err := json.Unmarshal(raw, &f.s); err != nil {
		// A corrupt session file is treated as logged out rather than
		// blocking startup.
		f.s = state{}
	}
	return f, nil
}

func (f *File) Token() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.s.Token
}

func (f *File) UserID() domain.UserID {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.s.UserID
}

func (f *File) Role() domain.Role {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.s.role()
}

func (f *File) IsLoggedIn() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.s.Token != ""
}

func (f *File) Set(token string, userID domain.UserID, role domain.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := state{Token: token, UserID: userID, Role: role}
	if err := f.write(next); err != nil {
		return err
	}
	f.s = next
	return nil
}

func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot remove session file: %w", err)
	}
	f.s = state{}
	return nil
}

func (f *File) write(s state) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("cannot marshal session: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("cannot write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("cannot commit session file: %w", err)
	}
	return nil
}
