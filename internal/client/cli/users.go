package cli

import (
	"context"
	"fmt"

	"github.com/bethub/admincli/internal/client/models"
)

func (a *App) listUsers(ctx context.Context) error {
	users, err := a.users.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%-12s %-24s %-8s balance=%-10s verified=%v\n",
			u.ID, u.Email, u.Status, u.Balance.StringFixed(2), u.Verified)
	}
	return nil
}

func (a *App) setUserStatus(ctx context.Context, id, status string) error {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: suspend|activate <user-id>")
		return nil
	}
	if err := a.users.SetStatus(ctx, id, status); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "User %s is now %s\n", id, status)
	return nil
}

func (a *App) suspendUser(ctx context.Context, id string) error {
	return a.setUserStatus(ctx, id, models.UserStatusSuspended)
}

func (a *App) activateUser(ctx context.Context, id string) error {
	return a.setUserStatus(ctx, id, models.UserStatusActive)
}
