package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	if profile := a.sessions.CurrentUser(ctx); profile != nil {
		return fmt.Sprintf("(%s)", profile.Email)
	}
	return ""
}

// Root runs the interactive loop. It reads a line, parses the first token
// as the command, and dispatches. The loop exits on EOF or on exit/quit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "BetHub admin console (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "bh %s> ", a.getStatus(ctx))
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if exit := a.dispatch(ctx, parts[0], parts[1:]); exit {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
	}
}

// dispatch runs one command. Access is decided fresh on every dispatch:
// login is a public-only view, everything except help/exit is protected.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	switch cmd {
	case "help":
		if a.sessions.IsAuthenticated(ctx) {
			fmt.Fprintln(a.out, "Available commands: whoami, users, suspend, activate, methods, promos, txns, approve, reject, games, sliders, contacts, logout, exit")
		} else {
			fmt.Fprintln(a.out, "Available commands: login, exit")
		}
		return false

	case "login":
		_ = a.Login(ctx)
		return false

	case "exit", "quit":
		return true
	}

	if d := a.access.Protected(ctx); !d.Allowed {
		fmt.Fprintf(a.out, "Please log in first (use 'login', see %s)\n", d.RedirectTo)
		return false
	}

	switch cmd {
	case "logout":
		_ = a.Logout(ctx)
	case "whoami":
		_ = a.Whoami(ctx)
	case "users":
		_ = a.listUsers(ctx)
	case "suspend":
		_ = a.suspendUser(ctx, arg(0))
	case "activate":
		_ = a.activateUser(ctx, arg(0))
	case "methods":
		_ = a.listMethods(ctx, args)
	case "promos":
		_ = a.listPromotions(ctx)
	case "txns":
		_ = a.listTransactions(ctx, args)
	case "approve":
		_ = a.approveTransaction(ctx, arg(0))
	case "reject":
		var reason []string
		if len(args) > 1 {
			reason = args[1:]
		}
		_ = a.rejectTransaction(ctx, arg(0), reason)
	case "games":
		_ = a.listGames(ctx)
	case "sliders":
		_ = a.listSliders(ctx)
	case "contacts":
		_ = a.showContacts(ctx)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return false
}
