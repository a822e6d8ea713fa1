package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"syncro/internal/navigation"
	"syncro/internal/services"
	"syncro/internal/version"
)

const (
	sidebarOpenWidth      = 24
	sidebarCollapsedWidth = 5
)

type menuItem struct {
	route navigation.Route
	label string
}

var sidebarMenu = []menuItem{
	{route: navigation.RouteDashboard, label: "Overview"},
	{route: navigation.RouteTasks, label: "Worklist"},
	{route: navigation.RouteBoards, label: "Projects"},
	{route: navigation.RouteCalendar, label: "Schedule"},
	{route: navigation.RouteAnalytics, label: "Insights"},
	{route: navigation.RouteTeam, label: "Team"},
}

var publicMenu = []menuItem{
	{route: navigation.RouteAbout, label: "About"},
	{route: navigation.RoutePricing, label: "Pricing"},
	{route: navigation.RouteDocumentation, label: "Documentation"},
}

// themeGlyph is the toggle icon: a moon offers dark mode, a sun offers light.
func themeGlyph(mode navigation.ThemeMode) string {
	if mode == navigation.ThemeDark {
		return "☀"
	}
	return "☾"
}

func (r *Renderer) publicNav(theme *services.Theme, snap navigation.Snapshot) string {
	items := []string{theme.Brand.Render("◆ SYNCRO")}
	for _, item := range publicMenu {
		if item.route == snap.Route {
			items = append(items, theme.Active.Render(" "+item.label+" "))
		} else {
			items = append(items, theme.Text.Render(item.label))
		}
	}

	launch := "Launch"
	if snap.Authenticated() {
		launch = "Dashboard"
	}
	items = append(items, theme.Accent.Render(themeGlyph(snap.Theme.Mode)), theme.Button.Render("[ "+launch+" ]"))
	return strings.Join(items, "  ")
}

func (r *Renderer) sidebar(theme *services.Theme, snap navigation.Snapshot) string {
	open := snap.SidebarOpen
	width := sidebarCollapsedWidth
	if open {
		width = sidebarOpenWidth
	}

	var lines []string
	if open {
		lines = append(lines, theme.Brand.Render("◆ SYNCRO"), theme.Muted.Render("Core Terminal"), "")
	} else {
		lines = append(lines, theme.Brand.Render("◆"), "")
	}

	for _, item := range sidebarMenu {
		label := item.label
		if !open {
			label = item.label[:1]
		}
		if item.route == snap.Route {
			lines = append(lines, theme.Active.Render("▸ "+label))
		} else {
			lines = append(lines, theme.Text.Render("  "+label))
		}
	}
	lines = append(lines, "")

	if s := snap.Session; s != nil {
		if open {
			lines = append(lines,
				theme.Accent.Render("("+s.Avatar+")")+" "+theme.Title.Render(s.Name),
				theme.Muted.Render(s.Email),
			)
		} else {
			lines = append(lines, theme.Accent.Render(s.Avatar))
		}
	}
	if open {
		lines = append(lines, theme.Danger.Render("⏻ Sign Out"))
	} else {
		lines = append(lines, theme.Danger.Render("⏻"))
	}

	style := lipgloss.NewStyle().
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true)
	if theme.BorderColor != nil {
		style = style.BorderForeground(theme.BorderColor)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) internalHeader(theme *services.Theme, snap navigation.Snapshot) string {
	parts := []string{theme.Title.Render(Title(snap.Route))}
	if snap.Loading {
		parts = append(parts, theme.Warning.Render("⟳ syncing"))
	}
	parts = append(parts, theme.Accent.Render(themeGlyph(snap.Theme.Mode)))
	return strings.Join(parts, "  ")
}

func (r *Renderer) transitionBanner(theme *services.Theme, snap navigation.Snapshot) string {
	origin := snap.Theme.Transition.Origin
	return theme.Transition.Render(fmt.Sprintf(" ◐ %s sweep from (%d,%d) ", snap.Theme.Mode, origin.X, origin.Y))
}

func (r *Renderer) footer(theme *services.Theme) string {
	return theme.Muted.Render(Copyright + " · " + version.Label())
}
