package cli

import (
	"context"
	"fmt"

	"github.com/pnqminh/photoshare/internal/client/models"
)

func (a *App) printRoster(roster []models.User) {
	stats := a.directory.Stats()
	for _, u := range roster {
		st := stats[u.ID]
		fmt.Fprintf(a.out, "%-26s %-24s photos:%-4d comments:%d\n",
			u.ID, u.FullName(), st.PhotoCount, st.CommentCount)
	}
}

// Users refreshes the directory and prints every user with their
// photo and comment counts.
func (a *App) Users(ctx context.Context) error {
	if err := a.directory.Refresh(ctx); err != nil {
		return err
	}
	a.printRoster(a.directory.Roster())
	return nil
}

// Search filters the cached roster by name. An empty term prints the
// full roster. The directory is loaded on demand if it is still empty.
func (a *App) Search(ctx context.Context, term string) error {
	if len(a.directory.Roster()) == 0 {
		if err := a.directory.Refresh(ctx); err != nil {
			return err
		}
	}
	matches := a.directory.Search(term)
	if len(matches) == 0 {
		fmt.Fprintln(a.out, "No users match.")
		return nil
	}
	a.printRoster(matches)
	return nil
}

// ShowUser loads and prints a single profile.
func (a *App) ShowUser(ctx context.Context, userID string) error {
	u, err := a.detail.Load(ctx, userID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n", u.FullName(), u.ID)
	if u.Occupation != "" {
		fmt.Fprintf(a.out, "Occupation: %s\n", u.Occupation)
	}
	if u.Location != "" {
		fmt.Fprintf(a.out, "Location:   %s\n", u.Location)
	}
	if u.Description != "" {
		fmt.Fprintf(a.out, "About:      %s\n", u.Description)
	}
	return nil
}

// CommentsBy prints every comment the given user has written, across all
// photo collections, together with the photo each comment belongs to.
// An empty userID means the logged-in user.
func (a *App) CommentsBy(ctx context.Context, userID string) error {
	if userID == "" {
		if u := a.session.Current(); u != nil {
			userID = u.ID
		}
	}

	author, comments, err := a.aggregate.CommentsBy(ctx, userID)
	if err != nil {
		return err
	}

	if len(comments) == 0 {
		fmt.Fprintf(a.out, "%s has not commented on anything yet.\n", author.FullName())
		return nil
	}

	fmt.Fprintf(a.out, "Comments by %s:\n", author.FullName())
	for _, c := range comments {
		fmt.Fprintf(a.out, "  [%s] on %s (photo %s): %s\n",
			c.DateTime, c.PhotoFileName, c.PhotoID, c.Text)
	}
	return nil
}
