package services

import (
	"context"
	"errors"
	"sync"

	"github.com/pnqminh/photoshare/internal/client/client"
	"github.com/pnqminh/photoshare/internal/client/models"
	"github.com/pnqminh/photoshare/internal/logging"
)

// DetailService displays one user's profile. Each in-flight load is tagged
// with a generation so that a response arriving after the view moved to a
// different identity is discarded instead of applied.
type DetailService struct {
	client client.Client
	log    logging.Logger

	mu     sync.Mutex
	gen    uint64
	userID string
	user   *models.User
	state  ViewState
}

func NewDetailService(c client.Client, log logging.Logger) *DetailService {
	return &DetailService{client: c, log: log}
}

// Load fetches and replaces the displayed profile. A missing user yields the
// not-found state, distinct from a transport error. When the view has been
// redirected while the fetch was in flight, Load returns ErrStale and leaves
// the newer state untouched.
func (s *DetailService) Load(ctx context.Context, userID string) (*models.User, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.userID = userID
	s.state = StateLoading
	s.mu.Unlock()

	u, err := s.client.GetUser(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		s.log.Info(ctx, "discarding stale profile response", "user_id", userID)
		return nil, ErrStale
	}

	if err != nil {
		s.user = nil
		if errors.Is(err, client.ErrNotFound) {
			s.state = StateNotFound
		} else {
			s.state = StateErrored
		}
		return nil, err
	}

	s.user = u
	s.state = StateReady
	return u, nil
}

// Refresh re-loads the currently displayed identity. It is a no-op when
// nothing is displayed; the caller decides whether the refresh applies.
func (s *DetailService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	userID := s.userID
	s.mu.Unlock()

	if userID == "" {
		return nil
	}
	_, err := s.Load(ctx, userID)
	return err
}

// DisplayedUserID reports which identity the view currently represents.
func (s *DetailService) DisplayedUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// User returns the displayed profile, or nil outside the ready state.
func (s *DetailService) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *DetailService) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
