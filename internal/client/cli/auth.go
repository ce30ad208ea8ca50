package cli

import (
	"context"
	"fmt"

	"github.com/pnqminh/photoshare/internal/client/models"
	"github.com/pnqminh/photoshare/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the server.
// On success the session is persisted locally, so a restarted client
// comes back logged in.
func (a *App) Login(ctx context.Context) error {
	loginName, err := getSimpleText(a.reader, "Login name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.account.Login(ctx, loginName, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Hi %s!\n", u.FullName())
	return nil
}

// Register walks the user through account creation and logs the new
// account in on success.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.LoginName, err = getSimpleText(a.reader, "Login name", a.out); err != nil {
		return err
	}
	if req.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if req.Location, err = getSimpleText(a.reader, "Location (optional)", a.out); err != nil {
		return err
	}
	if req.Occupation, err = getSimpleText(a.reader, "Occupation (optional)", a.out); err != nil {
		return err
	}
	if req.Description, err = getSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	confirm, err := getPassword("Repeat password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	u, err := a.account.Register(ctx, req, string(confirm))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", u.FullName())
	return nil
}

// Logout ends the remote session and clears the persisted local one.
func (a *App) Logout(ctx context.Context) error {
	if err := a.account.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
