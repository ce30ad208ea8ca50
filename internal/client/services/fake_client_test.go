package services

import (
	"context"
	"io"

	"github.com/pnqminh/photoshare/internal/client/models"
)

// fakeClient satisfies client.Client with per-method function hooks so each
// test installs exactly the behavior it needs.
type fakeClient struct {
	loginFn          func(ctx context.Context, loginName, password string) (*models.User, error)
	logoutFn         func(ctx context.Context) error
	registerFn       func(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	changePasswordFn func(ctx context.Context, oldPassword, newPassword string) error
	updateProfileFn  func(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	getUserFn        func(ctx context.Context, userID string) (*models.User, error)
	listPhotosFn     func(ctx context.Context, ownerID string) ([]models.Photo, error)
	uploadPhotoFn    func(ctx context.Context, fileName string, photo io.Reader) (*models.Photo, error)
	deletePhotoFn    func(ctx context.Context, photoID string) error
	addCommentFn     func(ctx context.Context, photoID, text string) (*models.Comment, error)
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(ctx context.Context, loginName, password string) (*models.User, error) {
	return f.loginFn(ctx, loginName, password)
}

func (f *fakeClient) Logout(ctx context.Context) error {
	if f.logoutFn == nil {
		return nil
	}
	return f.logoutFn(ctx)
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return f.changePasswordFn(ctx, oldPassword, newPassword)
}

func (f *fakeClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	return f.updateProfileFn(ctx, req)
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeClient) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return f.getUserFn(ctx, userID)
}

func (f *fakeClient) ListPhotos(ctx context.Context, ownerID string) ([]models.Photo, error) {
	return f.listPhotosFn(ctx, ownerID)
}

func (f *fakeClient) UploadPhoto(ctx context.Context, fileName string, photo io.Reader) (*models.Photo, error) {
	return f.uploadPhotoFn(ctx, fileName, photo)
}

func (f *fakeClient) DeletePhoto(ctx context.Context, photoID string) error {
	return f.deletePhotoFn(ctx, photoID)
}

func (f *fakeClient) AddComment(ctx context.Context, photoID, text string) (*models.Comment, error) {
	return f.addCommentFn(ctx, photoID, text)
}
