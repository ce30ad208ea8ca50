package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pnqminh/photoshare/internal/client/models"
	"github.com/pnqminh/photoshare/internal/client/repositories/metadata"
)

// sessionKey is the durable slot holding the serialized logged-in user.
const sessionKey = "loggedInUser"

// SessionStore owns the authenticated identity. The snapshot survives process
// restarts in the metadata repository; in-memory reads go through Current.
// Only this type writes the slot.
type SessionStore struct {
	repo metadata.Repository

	mu      sync.RWMutex
	current *models.User
}

func NewSessionStore(repo metadata.Repository) *SessionStore {
	return &SessionStore{repo: repo}
}

// Restore rehydrates the session from the durable slot. A missing or
// malformed snapshot yields an absent session (nil, nil), never an error:
// a corrupt slot must not lock the user out of the login surface.
func (s *SessionStore) Restore(ctx context.Context) (*models.User, error) {
	data, err := s.repo.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		s.setCurrent(nil)
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil || u.ID == "" {
		s.setCurrent(nil)
		return nil, nil
	}

	s.setCurrent(&u)
	return s.Current(), nil
}

// Set writes the snapshot durably and updates the in-memory identity.
func (s *SessionStore) Set(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, sessionKey, data); err != nil {
		return err
	}
	s.setCurrent(u)
	return nil
}

// Clear removes the durable snapshot and resets the in-memory identity.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, sessionKey); err != nil {
		return err
	}
	s.setCurrent(nil)
	return nil
}

// Current returns the authenticated user, or nil when the session is absent.
func (s *SessionStore) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *SessionStore) setCurrent(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.current = nil
		return
	}
	cp := *u
	s.current = &cp
}
