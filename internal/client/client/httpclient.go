package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pnqminh/photoshare/internal/client/models"
)

// HTTPClient talks to the Photoshare REST API. Credentials are session
// cookies: the jar captures the cookie set by a successful login and attaches
// it to every subsequent request.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds an HTTPClient for the given base URL. timeout bounds
// each individual request; zero means no client-side timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, loginName, password string) (*models.User, error) {
	var u models.User
	req := models.LoginRequest{LoginName: loginName, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/login", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/admin/logout", nil, nil)
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodPost, "/api/user", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	req := models.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	return c.doJSON(ctx, http.MethodPost, "/api/admin/change-password", req, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/update-profile", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/list", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/"+url.PathEscape(userID), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListPhotos(ctx context.Context, ownerID string) ([]models.Photo, error) {
	var photos []models.Photo
	if err := c.doJSON(ctx, http.MethodGet, "/api/photo/"+url.PathEscape(ownerID), nil, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// UploadPhoto posts the photo as multipart form data under the field "photo".
func (c *HTTPClient) UploadPhoto(ctx context.Context, fileName string, photo io.Reader) (*models.Photo, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("photo", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, photo); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/photo/photos/new", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var created models.Photo
	if err := c.send(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) DeletePhoto(ctx context.Context, photoID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/photo/"+url.PathEscape(photoID), nil, nil)
}

func (c *HTTPClient) AddComment(ctx context.Context, photoID, text string) (*models.Comment, error) {
	var created models.Comment
	req := models.AddCommentRequest{Comment: text}
	path := "/api/photo/commentsOfPhoto/" + url.PathEscape(photoID)
	if err := c.doJSON(ctx, http.MethodPost, path, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// doJSON issues a request with an optional JSON body and decodes the response
// into out when out is non-nil.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *HTTPClient) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapError converts a non-2xx response into a sentinel or a RequestError
// carrying the server's error text.
func (c *HTTPClient) mapError(resp *http.Response) error {
	text, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	msg := strings.TrimSpace(string(text))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}
}
