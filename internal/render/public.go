package render

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"syncro/internal/navigation"
	"syncro/internal/services"
)

func (r *Renderer) publicScreen(theme *services.Theme, snap navigation.Snapshot, docsTab string) string {
	switch snap.Route {
	case navigation.RouteAbout:
		return r.about(theme)
	case navigation.RoutePricing:
		return r.pricing(theme)
	case navigation.RouteDocumentation:
		return r.documentation(theme, snap, docsTab)
	case navigation.RouteLogin:
		return r.login(theme, snap)
	default:
		return r.landing(theme, snap)
	}
}

func (r *Renderer) landing(theme *services.Theme, snap navigation.Snapshot) string {
	page := r.content.Content().Landing

	enter := "Enter Core"
	if snap.Authenticated() {
		enter = "Go to Dashboard"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Accent.Render(strings.ToUpper(page.Eyebrow)),
		theme.Title.Render(page.Headline),
		theme.Muted.Render(page.Tagline),
		"",
		theme.Button.Render("[ "+enter+" ]")+"  "+theme.Text.Render("[ Documentation ]"),
	)
}

func (r *Renderer) about(theme *services.Theme) string {
	page := r.content.Content().About

	lines := []string{
		theme.Title.Render(page.Headline),
		"",
		theme.Text.Render(page.Mission),
		"",
	}
	for _, pillar := range page.Pillars {
		name, text, found := strings.Cut(pillar, ":")
		if !found {
			lines = append(lines, theme.Text.Render("• "+pillar))
			continue
		}
		lines = append(lines, theme.Accent.Render("• "+name)+theme.Text.Render(":"+text))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) pricing(theme *services.Theme) string {
	plans := r.content.Content().Plans

	cards := make([]string, 0, len(plans))
	for _, plan := range plans {
		lines := []string{theme.Title.Render(plan.Name)}
		if plan.Popular {
			lines = append(lines, theme.Accent.Render("★ Most Popular"))
		}
		lines = append(lines, theme.Brand.Render(price(plan.Price)), "")
		for _, feature := range plan.Features {
			lines = append(lines, theme.Text.Render("✓ "+feature))
		}
		cards = append(cards, theme.Card().Render(strings.Join(lines, "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Scale with Syncro"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	)
}

func (r *Renderer) documentation(theme *services.Theme, snap navigation.Snapshot, docsTab string) string {
	section, ok := r.content.DocSection(docsTab)
	if !ok {
		section = r.content.DefaultDocSection()
	}

	tabs := make([]string, 0, len(r.content.Content().Docs))
	for _, doc := range r.content.Content().Docs {
		if doc.ID == section.ID {
			tabs = append(tabs, theme.Active.Render(" "+doc.Label+" "))
		} else {
			tabs = append(tabs, theme.Muted.Render(doc.Label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(tabs, "  "),
		"",
		r.renderMarkdown(section.Body, snap.Theme.Mode),
	)
}

func (r *Renderer) login(theme *services.Theme, snap navigation.Snapshot) string {
	lines := []string{
		theme.Title.Render("Access Core"),
		theme.Muted.Render("Sign in with any email to open the dashboard."),
		"",
	}

	switch {
	case snap.Loading:
		lines = append(lines, theme.Warning.Render("⟳ Authenticating..."))
	case snap.Authenticated():
		lines = append(lines, theme.Success.Render("✓ Signed in as "+snap.Session.Email))
	default:
		lines = append(lines, theme.Button.Render("[ Sign In ]")+"  "+theme.Muted.Render("login <email> [password]"))
	}

	if snap.LastError != nil && !snap.Loading {
		lines = append(lines, "", theme.Danger.Render("✗ "+LoginErrorMessage(snap.LastError)))
	}
	return theme.Card().Render(strings.Join(lines, "\n"))
}

// LoginErrorMessage returns the user-facing text for a failed login.
func LoginErrorMessage(err error) string {
	switch {
	case errors.Is(err, navigation.ErrInvalidCredentials):
		return "Invalid credentials. Check the email and try again."
	case errors.Is(err, navigation.ErrTimeout):
		return "Authentication timed out. The core did not answer in time."
	case errors.Is(err, navigation.ErrNetworkFailure):
		return "Network failure. The core could not be reached."
	default:
		return err.Error()
	}
}
