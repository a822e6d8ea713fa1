package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"syncro/internal/navigation"
	"syncro/internal/services"
)

// PlaceholderTitle heads the screen of internal routes with no module behind them.
const PlaceholderTitle = "Node Fragment Under Construction"

func (r *Renderer) internalScreen(theme *services.Theme, snap navigation.Snapshot) string {
	if !snap.Developed {
		return r.placeholder(theme, snap.Route)
	}

	switch snap.Route {
	case navigation.RouteDashboard:
		return r.overview(theme, snap)
	case navigation.RouteTasks:
		return r.worklist(theme)
	case navigation.RouteBoards:
		return r.projects(theme)
	case navigation.RouteAnalytics:
		return r.insights(theme)
	case navigation.RouteTeam:
		return r.team(theme)
	default:
		return r.placeholder(theme, snap.Route)
	}
}

func (r *Renderer) overview(theme *services.Theme, snap navigation.Snapshot) string {
	c := r.content.Content()

	greeting := "Welcome back"
	if snap.Session != nil {
		if names := strings.Fields(snap.Session.Name); len(names) > 0 {
			greeting += ", " + names[0]
		}
	}

	stats := make([]string, 0, len(c.Stats))
	for _, s := range c.Stats {
		stats = append(stats, theme.Card().Render(theme.Muted.Render(s.Label)+"\n"+theme.Brand.Render(s.Value)))
	}

	clusters := [][]string{}
	for _, cl := range c.Clusters {
		clusters = append(clusters, []string{
			theme.Muted.Render(cl.ID),
			theme.Text.Render(cl.Name),
			badge(theme, cl.Status),
			theme.Text.Render(cl.Load),
		})
	}

	activity := [][]string{}
	for _, a := range c.Activity {
		activity = append(activity, []string{theme.Text.Render(a.Event), theme.Muted.Render(a.Time)})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Text.Render(greeting),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, stats...),
		"",
		theme.Title.Render("Node Clusters"),
		strings.Join(columns(clusters, 2), "\n"),
		"",
		theme.Title.Render("Activity"),
		strings.Join(columns(activity, 2), "\n"),
	)
}

func (r *Renderer) worklist(theme *services.Theme) string {
	rows := [][]string{{
		theme.Muted.Render("TASK"),
		theme.Muted.Render("PRIORITY"),
		theme.Muted.Render("STATUS"),
		theme.Muted.Render("DUE"),
	}}
	for _, t := range r.content.Content().Tasks {
		rows = append(rows, []string{
			theme.Text.Render(t.Title),
			badge(theme, t.Priority),
			badge(theme, t.Status),
			theme.Muted.Render(t.Due),
		})
	}
	return strings.Join(columns(rows, 2), "\n")
}

func (r *Renderer) projects(theme *services.Theme) string {
	board := r.content.Content().Board

	cols := make([]string, 0, len(board))
	for _, col := range board {
		lines := []string{theme.Title.Render(col.Name) + " " + theme.Muted.Render("("+strconv.Itoa(col.Count)+")"), ""}
		for _, task := range col.Tasks {
			lines = append(lines, theme.Text.Render("▪ "+task))
		}
		cols = append(cols, theme.Card().Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (r *Renderer) insights(theme *services.Theme) string {
	c := r.content.Content()

	regions := [][]string{}
	for _, region := range c.Regions {
		regions = append(regions, []string{theme.Text.Render(region.Region), theme.Accent.Render(meter(region.Load, 20))})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Traffic"),
		theme.Accent.Render(sparkline(c.Traffic)),
		"",
		theme.Title.Render("Regional Load"),
		strings.Join(columns(regions, 2), "\n"),
	)
}

func (r *Renderer) team(theme *services.Theme) string {
	rows := [][]string{}
	for _, m := range r.content.Content().Team {
		rows = append(rows, []string{
			theme.Accent.Render(services.Initials(m.Name)),
			theme.Title.Render(m.Name),
			theme.Muted.Render(m.Role),
			badge(theme, m.Status),
		})
	}
	return strings.Join(columns(rows, 2), "\n")
}

func (r *Renderer) placeholder(theme *services.Theme, route navigation.Route) string {
	return theme.Card().Render(strings.Join([]string{
		theme.Warning.Render("⚠ " + PlaceholderTitle),
		"",
		theme.Text.Render("Module " + strings.ToUpper(string(route)) + " is not yet developed."),
		theme.Muted.Render("Return to the Overview to continue."),
	}, "\n"))
}
