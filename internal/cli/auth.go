package cli

import (
	"context"
	"fmt"

	"conduit-cli/internal/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and creates an
// account. A successful registration signs the user in immediately.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.store.Users.Register(ctx, username, email, password); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.store.Users.CurrentUser().Username)
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.store.Users.Login(ctx, email, password); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.store.Users.CurrentUser().Username)
	return nil
}

// Logout clears the local identity. Purely local; the token is simply forgotten.
func (a *App) Logout(ctx context.Context) error {
	a.store.Users.LogOut(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// WhoAmI refreshes the identity from the server and prints it, along with
// whatever the bearer token reveals about its own expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if err := a.store.Users.FetchCurrentUser(ctx); err != nil {
		a.reportError(err)
		return err
	}

	u := a.store.Users.CurrentUser()
	fmt.Fprintf(a.out, "%s <%s>\n", u.Username, u.Email)

	if info, err := api.InspectToken(u.Token); err == nil && !info.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "token expires %s\n", info.ExpiresAt.Format("2006-01-02 15:04"))
	}
	return nil
}
