// Package render draws controller snapshots as terminal screens. A frame is a
// pure function of the snapshot, the static content tables, the theme styles
// and the selected documentation tab.
package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"syncro/internal/logger"
	"syncro/internal/navigation"
	"syncro/internal/services"
)

// DefaultWidth is the frame width used when none is configured.
const DefaultWidth = 80

// Copyright is the footer notice.
const Copyright = "© 2024 Syncro Systems"

// ConfigureColorProfile switches lipgloss to plain ASCII output, or back to
// the profile detected from the environment.
func ConfigureColorProfile(plain bool) {
	if plain {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Renderer turns snapshots into frames.
type Renderer struct {
	themes   *services.ThemeService
	markdown *services.MarkdownService
	content  *services.ContentService
	width    int

	mu      sync.Mutex
	docsTab string
}

// New creates a renderer. A non-positive width selects DefaultWidth.
func New(themes *services.ThemeService, markdown *services.MarkdownService, content *services.ContentService, width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{
		themes:   themes,
		markdown: markdown,
		content:  content,
		width:    width,
		docsTab:  content.DefaultDocSection().ID,
	}
}

// SetWidth changes the frame width.
func (r *Renderer) SetWidth(width int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if width > 0 {
		r.width = width
	}
}

// SetDocsTab selects the documentation tab shown on the documentation screen.
func (r *Renderer) SetDocsTab(id string) error {
	id = strings.ToLower(strings.TrimSpace(id))
	if _, ok := r.content.DocSection(id); !ok {
		return fmt.Errorf("unknown documentation tab %q (available: %s)", id, strings.Join(r.DocsTabs(), ", "))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docsTab = id
	return nil
}

// DocsTab returns the selected documentation tab id.
func (r *Renderer) DocsTab() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.docsTab
}

// DocsTabs lists the documentation tab ids in display order.
func (r *Renderer) DocsTabs() []string {
	docs := r.content.Content().Docs
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}

// Render draws the full frame for a snapshot.
func (r *Renderer) Render(snap navigation.Snapshot) string {
	r.mu.Lock()
	width, docsTab := r.width, r.docsTab
	r.mu.Unlock()

	theme := r.themes.Theme(snap.Theme.Mode)

	var parts []string
	if snap.Theme.Transition.Active {
		parts = append(parts, r.transitionBanner(theme, snap))
	}

	if snap.Public {
		parts = append(parts, r.publicNav(theme, snap), "", r.publicScreen(theme, snap, docsTab))
	} else {
		main := lipgloss.JoinVertical(lipgloss.Left, r.internalHeader(theme, snap), "", r.internalScreen(theme, snap))
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, r.sidebar(theme, snap), "  ", main))
	}
	parts = append(parts, "", r.footer(theme))

	frame := lipgloss.JoinVertical(lipgloss.Left, parts...)
	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(ansi.Truncate(line, width, "…"), " ")
	}
	return strings.Join(lines, "\n")
}

// Title returns the heading shown for a route.
func Title(route navigation.Route) string {
	for _, item := range sidebarMenu {
		if item.route == route {
			return item.label
		}
	}
	switch route {
	case navigation.RouteLanding:
		return "Home"
	case navigation.RouteAbout:
		return "About"
	case navigation.RoutePricing:
		return "Pricing"
	case navigation.RouteDocumentation:
		return "Documentation"
	case navigation.RouteLogin:
		return "Access Core"
	}
	return strings.ToUpper(string(route))
}

func (r *Renderer) renderMarkdown(body string, mode navigation.ThemeMode) string {
	rendered, err := r.markdown.Render(body, mode)
	if err != nil {
		logger.Warn("Falling back to raw documentation body", "error", err)
		return body
	}
	return strings.Trim(rendered, "\n")
}
