package client

import (
	"context"
	"io"

	"github.com/pnqminh/photoshare/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the Photoshare
// backend. All operations accept context.Context and must honor
// cancellation/timeouts; implementations must be safe for concurrent use.
type Client interface {
	Close() error

	// Account.
	Login(ctx context.Context, loginName, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)

	// Directory and profiles.
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// Photos and comments.
	ListPhotos(ctx context.Context, ownerID string) ([]models.Photo, error)
	UploadPhoto(ctx context.Context, fileName string, photo io.Reader) (*models.Photo, error)
	DeletePhoto(ctx context.Context, photoID string) error
	AddComment(ctx context.Context, photoID, text string) (*models.Comment, error)
}
