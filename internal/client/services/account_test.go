package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pnqminh/photoshare/internal/client/models"
	"github.com/pnqminh/photoshare/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_LoginPersistsSession(t *testing.T) {
	fc := &fakeClient{
		loginFn: func(ctx context.Context, loginName, password string) (*models.User, error) {
			assert.Equal(t, "minh", loginName)
			return &models.User{ID: "u1", FirstName: "Minh"}, nil
		},
	}
	session := sessionWith(t, nil)
	s := NewAccountService(fc, session, nil, logging.NewNop())

	u, err := s.Login(context.Background(), "minh", "weak")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	require.NotNil(t, session.Current())
	assert.Equal(t, "u1", session.Current().ID)
}

func TestAccount_LoginValidation(t *testing.T) {
	fc := &fakeClient{
		loginFn: func(ctx context.Context, loginName, password string) (*models.User, error) {
			t.Fatal("no network call expected")
			return nil, nil
		},
	}
	s := NewAccountService(fc, sessionWith(t, nil), nil, logging.NewNop())

	_, err := s.Login(context.Background(), "  ", "pw")
	require.ErrorIs(t, err, models.ErrLoginNameRequired)

	_, err = s.Login(context.Background(), "minh", "")
	require.ErrorIs(t, err, models.ErrPasswordRequired)
}

func TestAccount_LogoutClearsSessionEvenWhenRemoteFails(t *testing.T) {
	fc := &fakeClient{
		logoutFn: func(ctx context.Context) error { return errors.New("down") },
	}
	session := sessionWith(t, &models.User{ID: "u1"})
	s := NewAccountService(fc, session, nil, logging.NewNop())

	require.NoError(t, s.Logout(context.Background()))
	assert.Nil(t, session.Current())
}

func TestAccount_RegisterValidation(t *testing.T) {
	valid := models.RegisterRequest{
		LoginName: "minh", Password: "secret1", FirstName: "Minh", LastName: "Pham",
	}

	tests := []struct {
		name     string
		mutate   func(r *models.RegisterRequest)
		confirm  string
		expected error
	}{
		{name: "missing login name", mutate: func(r *models.RegisterRequest) { r.LoginName = "" },
			confirm: "secret1", expected: models.ErrLoginNameRequired},
		{name: "missing password", mutate: func(r *models.RegisterRequest) { r.Password = "" },
			confirm: "", expected: models.ErrPasswordRequired},
		{name: "missing first name", mutate: func(r *models.RegisterRequest) { r.FirstName = " " },
			confirm: "secret1", expected: models.ErrFirstNameRequired},
		{name: "missing last name", mutate: func(r *models.RegisterRequest) { r.LastName = "" },
			confirm: "secret1", expected: models.ErrLastNameRequired},
		{name: "confirmation mismatch", mutate: func(r *models.RegisterRequest) {},
			confirm: "other", expected: models.ErrPasswordMismatch},
	}

	fc := &fakeClient{
		registerFn: func(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
			t.Fatal("no network call expected")
			return nil, nil
		},
	}
	s := NewAccountService(fc, sessionWith(t, nil), nil, logging.NewNop())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			_, err := s.Register(context.Background(), req, tc.confirm)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestAccount_RegisterSuccess(t *testing.T) {
	fc := &fakeClient{
		registerFn: func(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
			return &models.User{ID: "new", FirstName: req.FirstName}, nil
		},
	}
	s := NewAccountService(fc, sessionWith(t, nil), nil, logging.NewNop())

	u, err := s.Register(context.Background(), models.RegisterRequest{
		LoginName: "minh", Password: "secret1", FirstName: "Minh", LastName: "Pham",
	}, "secret1")
	require.NoError(t, err)
	assert.Equal(t, "new", u.ID)
}

func TestAccount_ChangePasswordValidation(t *testing.T) {
	fc := &fakeClient{
		changePasswordFn: func(ctx context.Context, oldPassword, newPassword string) error {
			t.Fatal("no network call expected")
			return nil
		},
	}
	s := NewAccountService(fc, sessionWith(t, nil), nil, logging.NewNop())
	ctx := context.Background()

	require.ErrorIs(t, s.ChangePassword(ctx, "", "newpass", "newpass"), models.ErrPasswordRequired)
	require.ErrorIs(t, s.ChangePassword(ctx, "old", "newpass", "other"), models.ErrPasswordMismatch)
	require.ErrorIs(t, s.ChangePassword(ctx, "old", "tiny", "tiny"), models.ErrPasswordTooShort)
}

func TestAccount_ChangePasswordSuccess(t *testing.T) {
	var gotOld, gotNew string
	fc := &fakeClient{
		changePasswordFn: func(ctx context.Context, oldPassword, newPassword string) error {
			gotOld, gotNew = oldPassword, newPassword
			return nil
		},
	}
	s := NewAccountService(fc, sessionWith(t, nil), nil, logging.NewNop())

	require.NoError(t, s.ChangePassword(context.Background(), "old", "newpass", "newpass"))
	assert.Equal(t, "old", gotOld)
	assert.Equal(t, "newpass", gotNew)
}

func TestAccount_UpdateProfileEmitsEventAndRefreshesSession(t *testing.T) {
	fc := &fakeClient{
		updateProfileFn: func(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
			return &models.User{ID: "u1", FirstName: req.FirstName, LastName: req.LastName}, nil
		},
	}
	notify, events := collectCalls()
	session := sessionWith(t, &models.User{ID: "u1", FirstName: "Minh", LastName: "Pham"})
	s := NewAccountService(fc, session, notify, logging.NewNop())

	u, err := s.UpdateProfile(context.Background(), models.UpdateProfileRequest{
		FirstName: "Minh", LastName: "Nguyen",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nguyen", u.LastName)
	assert.Equal(t, "Nguyen", session.Current().LastName)

	require.Len(t, *events, 1)
	assert.Equal(t, EventProfileUpdate, (*events)[0].Type)
	assert.Equal(t, "u1", (*events)[0].UserID)
}

func TestAccount_UploadPhotoUsesBaseNameAndNotifies(t *testing.T) {
	var gotName string
	fc := &fakeClient{
		uploadPhotoFn: func(ctx context.Context, fileName string, photo io.Reader) (*models.Photo, error) {
			gotName = fileName
			return &models.Photo{ID: "p9", UserID: "u1", FileName: fileName}, nil
		},
	}
	notify, events := collectCalls()
	s := NewAccountService(fc, sessionWith(t, &models.User{ID: "u1"}), notify, logging.NewNop())

	p, err := s.UploadPhoto(context.Background(), "/home/minh/pics/cat.jpg", strings.NewReader("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "cat.jpg", gotName)
	assert.Equal(t, "p9", p.ID)

	require.Len(t, *events, 1)
	assert.Equal(t, EventUploadSuccess, (*events)[0].Type)
	assert.Equal(t, "u1", (*events)[0].UserID)
	assert.Equal(t, "p9", (*events)[0].PhotoID)
}

func TestAccount_UploadPhotoFailureEmitsNothing(t *testing.T) {
	fc := &fakeClient{
		uploadPhotoFn: func(ctx context.Context, fileName string, photo io.Reader) (*models.Photo, error) {
			return nil, errors.New("boom")
		},
	}
	notify, events := collectCalls()
	s := NewAccountService(fc, sessionWith(t, nil), notify, logging.NewNop())

	_, err := s.UploadPhoto(context.Background(), "cat.jpg", strings.NewReader("jpeg"))
	require.Error(t, err)
	assert.Empty(t, *events)
}
