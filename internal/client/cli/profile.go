package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/pnqminh/photoshare/internal/client/models"
	"github.com/pnqminh/photoshare/internal/common"
)

// ChangePassword prompts for the current and new passwords and submits
// the change. The new password is asked for twice.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirm, err := getPassword("Repeat new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.account.ChangePassword(ctx, string(oldPassword), string(newPassword), string(confirm)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

// EditProfile walks through the profile fields, keeping the current value
// when the user enters an empty line, and submits the update.
func (a *App) EditProfile(ctx context.Context) error {
	current := a.session.Current()
	if current == nil {
		return errors.New("not logged in")
	}

	prompt := func(label, value string) (string, error) {
		text, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, value), a.out)
		if err != nil {
			return "", err
		}
		if text == "" {
			return value, nil
		}
		return text, nil
	}

	var req models.UpdateProfileRequest
	var err error

	if req.FirstName, err = prompt("First name", current.FirstName); err != nil {
		return err
	}
	if req.LastName, err = prompt("Last name", current.LastName); err != nil {
		return err
	}
	if req.Location, err = prompt("Location", current.Location); err != nil {
		return err
	}
	if req.Occupation, err = prompt("Occupation", current.Occupation); err != nil {
		return err
	}
	if req.Description, err = prompt("Description", current.Description); err != nil {
		return err
	}

	u, err := a.account.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Profile updated, %s.\n", u.FullName())
	return nil
}
