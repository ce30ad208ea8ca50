package services

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pnqminh/photoshare/internal/client/client"
	"github.com/pnqminh/photoshare/internal/client/models"
	"github.com/pnqminh/photoshare/internal/logging"
)

// DirectoryService maintains the user roster and the derived per-user stats
// table. The table is recomputed from a fresh full scan on every refresh;
// overlapping recomputation rounds are not coalesced, last write wins.
type DirectoryService struct {
	client client.Client
	log    logging.Logger

	mu     sync.Mutex
	roster []models.User
	stats  map[string]models.Stats
	state  ViewState
}

func NewDirectoryService(c client.Client, log logging.Logger) *DirectoryService {
	return &DirectoryService{client: c, log: log, stats: map[string]models.Stats{}}
}

// LoadUsers replaces the roster. On transport failure the roster becomes
// empty and the directory moves to the errored state; the error is returned
// for inline display but is never fatal.
func (s *DirectoryService) LoadUsers(ctx context.Context) ([]models.User, error) {
	s.setState(StateLoading)

	users, err := s.client.ListUsers(ctx)
	if err != nil {
		s.mu.Lock()
		s.roster = nil
		s.state = StateErrored
		s.mu.Unlock()
		s.log.Warn(ctx, "directory load failed", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.roster = users
	s.state = StateReady
	s.mu.Unlock()
	return users, nil
}

// ComputeStats fans out one photo-list fetch per roster member and derives
// the stats table from the combined snapshot. A member whose photos cannot be
// fetched contributes nothing to the scan and still gets a {0,0} entry; one
// failure never aborts the round. The returned table is also cached.
func (s *DirectoryService) ComputeStats(ctx context.Context, roster []models.User) (map[string]models.Stats, error) {
	photosByOwner := make([][]models.Photo, len(roster))

	g, gctx := errgroup.WithContext(ctx)
	for i, u := range roster {
		g.Go(func() error {
			photos, err := s.client.ListPhotos(gctx, u.ID)
			if err != nil {
				s.log.Warn(gctx, "stats scan: skipping user", "user_id", u.ID, "error", err)
				return nil
			}
			photosByOwner[i] = photos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.Photo
	for _, photos := range photosByOwner {
		all = append(all, photos...)
	}

	stats := countStats(roster, all)

	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return stats, nil
}

// countStats derives the per-user table from a consistent snapshot of every
// fetched photo. commentCount intentionally scans every photo regardless of
// owner: comments can appear on anyone's photos. Kept pure so the scan cost
// can be optimized without touching its contract.
func countStats(roster []models.User, photos []models.Photo) map[string]models.Stats {
	stats := make(map[string]models.Stats, len(roster))
	for _, u := range roster {
		stats[u.ID] = models.Stats{}
	}

	for _, p := range photos {
		if st, ok := stats[p.UserID]; ok {
			st.PhotoCount++
			stats[p.UserID] = st
		}
		for _, c := range p.Comments {
			if c.User == nil {
				continue
			}
			if st, ok := stats[c.User.ID]; ok {
				st.CommentCount++
				stats[c.User.ID] = st
			}
		}
	}
	return stats
}

// Refresh re-fetches the roster and recomputes the stats table.
func (s *DirectoryService) Refresh(ctx context.Context) error {
	users, err := s.LoadUsers(ctx)
	if err != nil {
		return err
	}
	_, err = s.ComputeStats(ctx, users)
	return err
}

// RefreshStats recomputes the stats table over the cached roster without
// re-fetching the roster itself. This is the cheap path after a comment or
// photo mutation that cannot change membership.
func (s *DirectoryService) RefreshStats(ctx context.Context) error {
	_, err := s.ComputeStats(ctx, s.Roster())
	return err
}

// Search filters the roster by a case-insensitive substring match over
// "first last". An empty term returns the full roster. Pure and synchronous.
func (s *DirectoryService) Search(term string) []models.User {
	roster := s.Roster()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return roster
	}

	var matched []models.User
	for _, u := range roster {
		if strings.Contains(strings.ToLower(u.FullName()), term) {
			matched = append(matched, u)
		}
	}
	return matched
}

// Roster returns a copy of the current roster.
func (s *DirectoryService) Roster() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.roster))
	copy(out, s.roster)
	return out
}

// Stats returns a copy of the last computed stats table.
func (s *DirectoryService) Stats() map[string]models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]models.Stats, len(s.stats))
	for k, v := range s.stats {
		out[k] = v
	}
	return out
}

func (s *DirectoryService) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *DirectoryService) setState(st ViewState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}
