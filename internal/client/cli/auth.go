package cli

import (
	"context"
	"fmt"

	"github.com/bethub/admincli/internal/client/session"
)

// Login prompts for credentials and authenticates. Failures are shown
// inline with a message matching their class: wrong credentials, no
// connectivity, or anything else.
func (a *App) Login(ctx context.Context) error {
	if d := a.access.PublicOnly(ctx); !d.Allowed {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	profile, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		switch session.KindOf(err) {
		case session.KindInvalidCredentials:
			fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		case session.KindNetworkUnavailable:
			fmt.Fprintln(a.out, "Cannot reach the server. Check your connection and try again.")
		default:
			fmt.Fprintln(a.out, "Login failed unexpectedly. See logs for details.")
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", profile.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the cached profile snapshot. No network round trip: the
// snapshot may lag behind the backend until the next authenticated fetch.
func (a *App) Whoami(ctx context.Context) error {
	profile := a.sessions.CurrentUser(ctx)
	if profile == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>  balance=%s verified=%v\n",
		profile.Name, profile.Email, profile.Balance.StringFixed(2), profile.Verified)
	return nil
}
