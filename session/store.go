// Package session persists the current-user record and a small scratch
// space scoped to the running session.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/codesbysuraj/Quickart/models"
	"github.com/codesbysuraj/Quickart/utils"
)

const userRecordFile = "user.json"

// Store is the session provider handed to the API client. There is a single
// record: the currently signed-in user.
type Store interface {
	// CurrentUser returns the persisted user, or nil when no one is signed
	// in or the stored record cannot be parsed. It never panics.
	CurrentUser() *models.SessionUser
	SaveUser(user models.SessionUser) error

	// Get and Set read and write session-scoped scratch values. Scratch is
	// discarded on logout and never written to disk.
	Get(key string) string
	Set(key, value string)

	// Logout removes the user record and drops all scratch values. No
	// network traffic is involved.
	Logout()

	// Reset wipes every persisted record and the scratch space. Used when a
	// stale or corrupt session must be abandoned wholesale.
	Reset()
}

// FileStore keeps the user record as a JSON file under a directory.
type FileStore struct {
	dir string
	log *utils.Logger

	mu      sync.Mutex
	scratch map[string]string
}

func NewFileStore(dir string, log *utils.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	if log == nil {
		log = utils.NewLogger(os.Stdout, "session")
	}
	return &FileStore{dir: dir, log: log, scratch: make(map[string]string)}, nil
}

func (s *FileStore) userPath() string {
	return filepath.Join(s.dir, userRecordFile)
}

func (s *FileStore) CurrentUser() *models.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.userPath())
	if err != nil {
		return nil
	}
	var user models.SessionUser
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Error("Failed to parse user data", "error", err)
		return nil
	}
	return &user
}

func (s *FileStore) SaveUser(user models.SessionUser) error {
	raw, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.userPath(), raw, 0o600)
}

func (s *FileStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scratch[key]
}

func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scratch[key] = value
}

func (s *FileStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	os.Remove(s.userPath())
	s.scratch = make(map[string]string)
}

func (s *FileStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := os.ReadDir(s.dir)
	if err == nil {
		for _, e := range entries {
			os.RemoveAll(filepath.Join(s.dir, e.Name()))
		}
	}
	s.scratch = make(map[string]string)
}

// IsLoggedIn reports whether a user record is present and readable.
func IsLoggedIn(s Store) bool {
	return s.CurrentUser() != nil
}

func IsCustomer(s Store) bool {
	u := s.CurrentUser()
	return u != nil && u.Role == models.RoleCustomer
}

func IsVendor(s Store) bool {
	u := s.CurrentUser()
	return u != nil && u.Role == models.RoleVendor
}
