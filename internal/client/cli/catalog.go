package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// assetURL resolves a backend-relative asset path (icon, banner) against the
// configured content base. Absolute URLs and empty paths pass through.
func (a *App) assetURL(p string) string {
	if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	base, err := url.Parse(a.config.ContentBaseURL)
	if err != nil {
		return p
	}
	return base.JoinPath(p).String()
}

// listMethods accepts an optional kind filter ("deposit"/"withdraw").
func (a *App) listMethods(ctx context.Context, args []string) error {
	kind := ""
	if len(args) > 0 {
		kind = args[0]
	}
	methods, err := a.methods.List(ctx, kind)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, m := range methods {
		fmt.Fprintf(a.out, "%-12s %-20s %-8s %s..%s enabled=%v icon=%s\n",
			m.ID, m.Name, m.Kind, m.MinAmount.StringFixed(2), m.MaxAmount.StringFixed(2),
			m.Enabled, a.assetURL(m.IconURL))
	}
	return nil
}

func (a *App) listPromotions(ctx context.Context) error {
	promos, err := a.promos.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, p := range promos {
		fmt.Fprintf(a.out, "%-12s %-28s bonus=%-8s active=%v\n",
			p.ID, p.Title, p.Bonus.StringFixed(2), p.Active)
	}
	return nil
}

func (a *App) listGames(ctx context.Context) error {
	games, err := a.games.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, g := range games {
		fmt.Fprintf(a.out, "%-12s %-24s %-14s %-10s enabled=%v image=%s\n",
			g.ID, g.Name, g.Provider, g.Category, g.Enabled, a.assetURL(g.ImageURL))
	}
	return nil
}

func (a *App) listSliders(ctx context.Context) error {
	sliders, err := a.sliders.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	for _, s := range sliders {
		fmt.Fprintf(a.out, "%-12s %-28s pos=%-3d active=%v image=%s\n",
			s.ID, s.Title, s.Position, s.Active, a.assetURL(s.ImageURL))
	}
	return nil
}

func (a *App) showContacts(ctx context.Context) error {
	settings, err := a.contacts.Get(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "email:    %s\n", settings.Email)
	fmt.Fprintf(a.out, "phone:    %s\n", settings.Phone)
	fmt.Fprintf(a.out, "whatsapp: %s\n", settings.WhatsApp)
	fmt.Fprintf(a.out, "telegram: %s\n", settings.Telegram)
	fmt.Fprintf(a.out, "address:  %s\n", settings.Address)
	return nil
}
