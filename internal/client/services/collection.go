package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pnqminh/photoshare/internal/client/client"
	"github.com/pnqminh/photoshare/internal/client/models"
	"github.com/pnqminh/photoshare/internal/logging"
)

// CollectionService holds one owner's photos with their nested comments and
// applies mutations optimistically: a successful remote call patches the
// in-memory list immediately, a failed one leaves it untouched. Successful
// mutations are reported upward through notify; the collection knows nothing
// about the views that depend on them.
type CollectionService struct {
	client  client.Client
	session *SessionStore
	notify  Notify
	log     logging.Logger

	mu      sync.Mutex
	gen     uint64
	ownerID string
	photos  []models.Photo
	state   ViewState
}

func NewCollectionService(c client.Client, session *SessionStore, notify Notify, log logging.Logger) *CollectionService {
	return &CollectionService{client: c, session: session, notify: notify, log: log}
}

// Load fetches ownerID's photos. On transport failure the list becomes empty
// and the view moves to the errored state. A completion for an owner the view
// has since navigated away from is discarded with ErrStale.
func (s *CollectionService) Load(ctx context.Context, ownerID string) ([]models.Photo, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.ownerID = ownerID
	s.state = StateLoading
	s.mu.Unlock()

	photos, err := s.client.ListPhotos(ctx, ownerID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		s.log.Info(ctx, "discarding stale photo list", "owner_id", ownerID)
		return nil, ErrStale
	}

	if err != nil {
		s.photos = nil
		s.state = StateErrored
		return nil, err
	}

	s.photos = photos
	s.state = StateReady
	return s.photosLocked(), nil
}

// AddComment posts a comment and appends the server-returned canonical
// comment to the photo's sequence. Empty trimmed text is rejected before any
// network call. If the server response omits an identity, one is synthesized
// from the current timestamp as a presentation stand-in only; it may be
// replaced by the canonical id on the next load.
func (s *CollectionService) AddComment(ctx context.Context, photoID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.ErrCommentRequired
	}

	created, err := s.client.AddComment(ctx, photoID, text)
	if err != nil {
		return nil, err
	}

	c := *created
	if c.ID == "" {
		c.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if c.Text == "" {
		c.Text = text
	}
	if c.DateTime.IsZero() {
		c.DateTime = time.Now()
	}
	viewer := s.session.Current()
	if c.User == nil && viewer != nil {
		ref := viewer.Ref()
		c.User = &ref
	}

	s.mu.Lock()
	for i := range s.photos {
		if s.photos[i].ID == photoID {
			s.photos[i].Comments = append(s.photos[i].Comments, c)
			break
		}
	}
	s.mu.Unlock()

	authorID := ""
	if c.User != nil {
		authorID = c.User.ID
	}
	s.notify.emit(NewCommentChangeEvent(authorID, photoID))
	return &c, nil
}

// DeletePhoto removes a photo. Only the owner may delete; the check runs
// against the current session before any network call. Confirmation is the
// front end's responsibility.
func (s *CollectionService) DeletePhoto(ctx context.Context, photoID string) error {
	viewer := s.session.Current()

	s.mu.Lock()
	var target *models.Photo
	for i := range s.photos {
		if s.photos[i].ID == photoID {
			target = &s.photos[i]
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return models.ErrPhotoNotFound
	}
	ownerID := target.UserID
	s.mu.Unlock()

	if viewer == nil || viewer.ID != ownerID {
		return models.ErrNotPhotoOwner
	}

	if err := s.client.DeletePhoto(ctx, photoID); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.photos[:0]
	for _, p := range s.photos {
		if p.ID != photoID {
			kept = append(kept, p)
		}
	}
	s.photos = kept
	s.mu.Unlock()

	s.notify.emit(NewPhotoChangeEvent(ownerID, photoID))
	return nil
}

// Refetch fully reloads the current owner's photos. Exposed for upward
// invocation after an upload elsewhere completes.
func (s *CollectionService) Refetch(ctx context.Context) error {
	s.mu.Lock()
	ownerID := s.ownerID
	s.mu.Unlock()

	if ownerID == "" {
		return nil
	}
	_, err := s.Load(ctx, ownerID)
	return err
}

// Photos returns a copy of the current photo list.
func (s *CollectionService) Photos() []models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.photosLocked()
}

func (s *CollectionService) photosLocked() []models.Photo {
	out := make([]models.Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

// OwnerID reports whose collection the view currently represents.
func (s *CollectionService) OwnerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ownerID
}

func (s *CollectionService) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
