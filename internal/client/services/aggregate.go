package services

import (
	"context"

	"github.com/pnqminh/photoshare/internal/client/client"
	"github.com/pnqminh/photoshare/internal/client/models"
	"github.com/pnqminh/photoshare/internal/logging"
)

// AggregateService derives the read-only "comments by one user" view by
// scanning every photo of every roster member.
type AggregateService struct {
	client client.Client
	log    logging.Logger
}

func NewAggregateService(c client.Client, log logging.Logger) *AggregateService {
	return &AggregateService{client: c, log: log}
}

// CommentsBy fetches the target's display info, then every owner's photos in
// roster order, and keeps the comments authored by the target, each decorated
// with its parent photo's identity and timestamp. Ordering is insertion order
// photo-by-photo in fetch order; there is no global re-sort. An owner whose
// photos cannot be fetched is skipped, not fatal.
func (s *AggregateService) CommentsBy(ctx context.Context, targetUserID string) (*models.User, []models.EnrichedComment, error) {
	target, err := s.client.GetUser(ctx, targetUserID)
	if err != nil {
		return nil, nil, err
	}

	roster, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, nil, err
	}

	var comments []models.EnrichedComment
	for _, owner := range roster {
		photos, err := s.client.ListPhotos(ctx, owner.ID)
		if err != nil {
			s.log.Warn(ctx, "comment scan: skipping owner", "owner_id", owner.ID, "error", err)
			continue
		}
		for _, p := range photos {
			for _, c := range p.Comments {
				if c.User == nil || c.User.ID != targetUserID {
					continue
				}
				comments = append(comments, models.EnrichedComment{
					Comment:       c,
					PhotoID:       p.ID,
					PhotoFileName: p.FileName,
					PhotoDate:     p.DateTime,
				})
			}
		}
	}

	return target, comments, nil
}
