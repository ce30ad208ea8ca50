package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pnqminh/photoshare/internal/client/client"
	"github.com/pnqminh/photoshare/internal/client/models"
	"github.com/pnqminh/photoshare/internal/logging"
)

// AccountService performs the mutations that originate in the top bar and the
// login surface: login, logout, register, password change, profile edit, and
// photo upload. Field validation runs before any network call; successful
// mutations that affect other views are reported through notify.
type AccountService struct {
	client  client.Client
	session *SessionStore
	notify  Notify
	log     logging.Logger
}

func NewAccountService(c client.Client, session *SessionStore, notify Notify, log logging.Logger) *AccountService {
	return &AccountService{client: c, session: session, notify: notify, log: log}
}

// Login authenticates and persists the session snapshot.
func (s *AccountService) Login(ctx context.Context, loginName, password string) (*models.User, error) {
	if strings.TrimSpace(loginName) == "" {
		return nil, models.ErrLoginNameRequired
	}
	if password == "" {
		return nil, models.ErrPasswordRequired
	}

	u, err := s.client.Login(ctx, loginName, password)
	if err != nil {
		return nil, err
	}
	if err := s.session.Set(ctx, u); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.log.Info(ctx, "logged in", "user_id", u.ID)
	return u, nil
}

// Logout tells the server goodbye on a best-effort basis and always clears
// the local session.
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "remote logout failed", "error", err)
	}
	return s.session.Clear(ctx)
}

// Register creates a new account. The confirmation copy of the password is
// compared client-side; none of the validation failures reach the network.
func (s *AccountService) Register(ctx context.Context, req models.RegisterRequest, passwordConfirm string) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Password != passwordConfirm {
		return nil, models.ErrPasswordMismatch
	}
	return s.client.Register(ctx, req)
}

// ChangePassword validates locally (all fields present, confirmation match,
// minimum length) and then posts the change.
func (s *AccountService) ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) error {
	if oldPassword == "" || newPassword == "" || confirm == "" {
		return models.ErrPasswordRequired
	}
	if newPassword != confirm {
		return models.ErrPasswordMismatch
	}
	if len(newPassword) < models.MinPasswordLength {
		return models.ErrPasswordTooShort
	}
	return s.client.ChangePassword(ctx, oldPassword, newPassword)
}

// UpdateProfile posts the edit, re-persists the session snapshot with the
// updated user, and emits a profile-update event.
func (s *AccountService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, models.ErrFirstNameRequired
	}
	if strings.TrimSpace(req.LastName) == "" {
		return nil, models.ErrLastNameRequired
	}

	u, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.session.Set(ctx, u); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.notify.emit(NewProfileUpdateEvent(u.ID))
	return u, nil
}

// UploadPhoto posts the photo under its base file name and emits an
// upload-success event carrying the created photo's owner and id.
func (s *AccountService) UploadPhoto(ctx context.Context, path string, photo io.Reader) (*models.Photo, error) {
	created, err := s.client.UploadPhoto(ctx, filepath.Base(path), photo)
	if err != nil {
		return nil, err
	}

	s.notify.emit(NewUploadSuccessEvent(created.UserID, created.ID))
	return created, nil
}
