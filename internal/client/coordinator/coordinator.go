// Package coordinator routes change notifications emitted by mutating views
// to the sibling views that must refresh. It is the only place that knows
// which mutation invalidates which view; the children never reference each
// other.
package coordinator

import (
	"context"
	"sync"

	"github.com/pnqminh/photoshare/internal/client/services"
	"github.com/pnqminh/photoshare/internal/logging"
)

// Directory is the slice of the user directory the coordinator drives.
type Directory interface {
	Refresh(ctx context.Context) error
	RefreshStats(ctx context.Context) error
}

// Detail is the slice of the profile view the coordinator drives. The
// displayed identity decides whether a profile-update applies.
type Detail interface {
	Refresh(ctx context.Context) error
	DisplayedUserID() string
}

// Coordinator performs the table-driven dispatch:
//
//	upload-success  -> directory.RefreshStats
//	comment-change  -> directory.RefreshStats
//	photo-change    -> directory.RefreshStats
//	profile-update  -> directory.Refresh, and detail.Refresh iff the edited
//	                   identity is the one currently displayed
//
// Dispatch is fire-and-forget: Notify returns before the refreshes complete,
// and overlapping rounds are neither serialized nor deduplicated. Each round
// recomputes from a fresh scan, so duplicates waste work but stay correct.
type Coordinator struct {
	directory Directory
	detail    Detail
	log       logging.Logger

	wg sync.WaitGroup
}

func New(directory Directory, detail Detail, log logging.Logger) *Coordinator {
	return &Coordinator{directory: directory, detail: detail, log: log}
}

// Notify accepts a change notification and schedules the matching refreshes.
// It never blocks on their completion.
func (c *Coordinator) Notify(e services.Event) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.dispatch(context.Background(), e)
	}()
}

func (c *Coordinator) dispatch(ctx context.Context, e services.Event) {
	switch e.Type {
	case services.EventUploadSuccess, services.EventCommentChange, services.EventPhotoChange:
		if err := c.directory.RefreshStats(ctx); err != nil {
			c.log.Warn(ctx, "stats refresh failed", "event", e.Type, "error", err)
		}

	case services.EventProfileUpdate:
		// Roster names may have changed: full directory refresh.
		if err := c.directory.Refresh(ctx); err != nil {
			c.log.Warn(ctx, "directory refresh failed", "event", e.Type, "error", err)
		}
		if c.detail.DisplayedUserID() == e.UserID {
			if err := c.detail.Refresh(ctx); err != nil {
				c.log.Warn(ctx, "profile refresh failed", "user_id", e.UserID, "error", err)
			}
		}

	default:
		c.log.Warn(ctx, "unknown event type", "event", e.Type)
	}
}

// Wait blocks until all in-flight dispatches have finished. Used on shutdown
// and in tests; callers on the mutation path never wait.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
