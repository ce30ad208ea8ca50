package cli

import (
	"context"
	"fmt"
	"os"
)

// Photos loads and prints a user's photo collection with inline comments.
// An empty ownerID means the logged-in user's own collection.
func (a *App) Photos(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		if u := a.session.Current(); u != nil {
			ownerID = u.ID
		}
	}

	photos, err := a.collection.Load(ctx, ownerID)
	if err != nil {
		return err
	}

	if len(photos) == 0 {
		fmt.Fprintln(a.out, "No photos.")
		return nil
	}

	for _, p := range photos {
		fmt.Fprintf(a.out, "%s  %s  (%s)\n", p.ID, p.FileName, p.DateTime)
		for _, c := range p.Comments {
			author := ""
			if c.User != nil {
				author = c.User.FirstName + " " + c.User.LastName
			}
			fmt.Fprintf(a.out, "    %s [%s]: %s\n", author, c.DateTime, c.Text)
		}
	}
	return nil
}

// AddComment prompts for the comment text and posts it to the given photo.
// The photo must be part of the collection loaded last.
func (a *App) AddComment(ctx context.Context, photoID string) error {
	text, err := getSimpleText(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}

	c, err := a.collection.AddComment(ctx, photoID, text)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Comment %s added.\n", c.ID)
	return nil
}

// Upload sends a local file to the server as a new photo in the logged-in
// user's collection.
func (a *App) Upload(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := a.account.UploadPhoto(ctx, path, f)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %s as photo %s.\n", p.FileName, p.ID)
	return nil
}

// DeletePhoto asks for confirmation, then removes one of the logged-in
// user's photos from the collection loaded last.
func (a *App) DeletePhoto(ctx context.Context, photoID string) error {
	if !Confirm(a.reader, fmt.Sprintf("Delete photo %s?", photoID), a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.collection.DeletePhoto(ctx, photoID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Photo deleted.")
	return nil
}
