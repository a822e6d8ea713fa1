package render

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncro/internal/navigation"
	"syncro/internal/services"
	"syncro/pkg/synctypes"
)

func TestMain(m *testing.M) {
	ConfigureColorProfile(true)
	os.Exit(m.Run())
}

var naman = &synctypes.Session{ID: "u1", Name: "Naman Aggarwal", Email: "naman@syncro.io", Avatar: "NA"}

func newTestRenderer(t *testing.T, width int) *Renderer {
	t.Helper()

	themes := services.NewThemeService()
	require.NoError(t, themes.Initialize())
	markdown := services.NewMarkdownService(80, true)
	require.NoError(t, markdown.Initialize())
	content := services.NewContentService()
	require.NoError(t, content.Initialize())

	return New(themes, markdown, content, width)
}

func snapshotFor(route navigation.Route, session *synctypes.Session) navigation.Snapshot {
	return navigation.Snapshot{
		Route:       route,
		Session:     session,
		SidebarOpen: true,
		Theme:       navigation.ThemeState{Mode: navigation.ThemeLight},
		Public:      navigation.IsPublicRoute(route),
		Accessible:  navigation.IsAccessible(route, session),
		Developed:   navigation.IsDeveloped(route),
		Viewport:    navigation.Viewport{Width: 80, Height: 24},
	}
}

func plain(r *Renderer, snap navigation.Snapshot) string {
	return ansi.Strip(r.Render(snap))
}

func TestRender_Landing(t *testing.T) {
	r := newTestRenderer(t, 160)

	out := plain(r, snapshotFor(navigation.RouteLanding, nil))
	assert.Contains(t, out, "SYNCRO")
	assert.Contains(t, out, "Fluid Motion. Total Logic.")
	assert.Contains(t, out, "INTELLIGENCE SUITE")
	assert.Contains(t, out, "[ Launch ]")
	assert.Contains(t, out, "[ Enter Core ]")
	assert.Contains(t, out, "☾")
	assert.Contains(t, out, Copyright)
	assert.Contains(t, out, "V2.5.0 Final")

	out = plain(r, snapshotFor(navigation.RouteLanding, naman))
	assert.Contains(t, out, "[ Dashboard ]")
	assert.Contains(t, out, "[ Go to Dashboard ]")
	assert.NotContains(t, out, "Launch")
}

func TestRender_About(t *testing.T) {
	r := newTestRenderer(t, 200)

	out := plain(r, snapshotFor(navigation.RouteAbout, nil))
	assert.Contains(t, out, "Physics for software.")
	assert.Contains(t, out, "• Global Edge")
	assert.Contains(t, out, "• Pulse Engine")
}

func TestRender_Pricing(t *testing.T) {
	r := newTestRenderer(t, 160)

	out := plain(r, snapshotFor(navigation.RoutePricing, nil))
	for _, want := range []string{"Starter", "$0/mo", "Pro", "$49/mo", "★ Most Popular", "Enterprise", "Custom", "✓ Dedicated Node"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 1, strings.Count(out, "Most Popular"))
}

func TestRender_Documentation(t *testing.T) {
	r := newTestRenderer(t, 160)
	snap := snapshotFor(navigation.RouteDocumentation, nil)

	assert.Equal(t, "getting-started", r.DocsTab())
	out := plain(r, snap)
	assert.Contains(t, out, "Getting Started")
	assert.Contains(t, out, "API Reference")
	assert.Contains(t, out, "deploy local clusters")

	require.NoError(t, r.SetDocsTab(" Architecture "))
	assert.Equal(t, "architecture", r.DocsTab())
	out = plain(r, snap)
	assert.Contains(t, out, "Every workspace")
	assert.NotContains(t, out, "deploy local clusters")
}

func TestRender_SetDocsTabUnknown(t *testing.T) {
	r := newTestRenderer(t, 160)

	err := r.SetDocsTab("changelog")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting-started, architecture, api, security")
	assert.Equal(t, "getting-started", r.DocsTab())
	assert.Equal(t, []string{"getting-started", "architecture", "api", "security"}, r.DocsTabs())
}

func TestRender_Login(t *testing.T) {
	r := newTestRenderer(t, 160)

	idle := snapshotFor(navigation.RouteLogin, nil)
	out := plain(r, idle)
	assert.Contains(t, out, "Access Core")
	assert.Contains(t, out, "[ Sign In ]")

	loading := idle
	loading.Loading = true
	out = plain(r, loading)
	assert.Contains(t, out, "Authenticating...")
	assert.NotContains(t, out, "[ Sign In ]")

	signedIn := snapshotFor(navigation.RouteLogin, naman)
	assert.Contains(t, plain(r, signedIn), "Signed in as naman@syncro.io")
}

func TestRender_LoginErrors(t *testing.T) {
	r := newTestRenderer(t, 160)

	tests := []struct {
		err  error
		want string
	}{
		{err: navigation.NewAuthError(navigation.AuthInvalidCredentials, "x@y.z", nil), want: "Invalid credentials."},
		{err: navigation.NewAuthError(navigation.AuthTimeout, "x@y.z", nil), want: "Authentication timed out."},
		{err: navigation.NewAuthError(navigation.AuthNetworkFailure, "x@y.z", errors.New("dns")), want: "Network failure."},
		{err: errors.New("something odd"), want: "something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			snap := snapshotFor(navigation.RouteLogin, nil)
			snap.LastError = tt.err
			assert.Contains(t, plain(r, snap), "✗ "+tt.want)
		})
	}
}

func TestRender_Dashboard(t *testing.T) {
	r := newTestRenderer(t, 200)

	out := plain(r, snapshotFor(navigation.RouteDashboard, naman))
	for _, want := range []string{
		"▸ Overview", "Worklist", "Projects", "Schedule", "Insights", "Team",
		"(NA) Naman Aggarwal", "naman@syncro.io", "⏻ Sign Out",
		"Welcome back, Naman", "Throughput", "98.2%",
		"Primary Relay", "● Operational", "● Degraded",
		"Node Alpha Re-indexed", "2m ago",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Launch")
}

func TestRender_InternalScreens(t *testing.T) {
	r := newTestRenderer(t, 200)

	tests := []struct {
		route navigation.Route
		want  []string
	}{
		{route: navigation.RouteTasks, want: []string{"▸ Worklist", "Global CDN Flush", "● Urgent", "● Blocked", "Friday"}},
		{route: navigation.RouteBoards, want: []string{"▸ Projects", "Completed (12)", "▪ State Engine", "▪ Beta Launch"}},
		{route: navigation.RouteAnalytics, want: []string{"▸ Insights", "Regional Load", "Asia Pacific", " 91%", "█"}},
		{route: navigation.RouteTeam, want: []string{"▸ Team", "Marcus Thorne", "Protocol Engineer", "● Away", "● Offline", "DK"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.route), func(t *testing.T) {
			out := plain(r, snapshotFor(tt.route, naman))
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			assert.NotContains(t, out, PlaceholderTitle)
		})
	}
}

func TestRender_Placeholder(t *testing.T) {
	r := newTestRenderer(t, 200)

	out := plain(r, snapshotFor(navigation.RouteCalendar, naman))
	assert.Contains(t, out, PlaceholderTitle)
	assert.Contains(t, out, "Module CALENDAR is not yet developed.")
	assert.Contains(t, out, "▸ Schedule")

	out = plain(r, snapshotFor("reports", naman))
	assert.Contains(t, out, PlaceholderTitle)
	assert.Contains(t, out, "REPORTS")
}

func TestRender_CollapsedSidebar(t *testing.T) {
	r := newTestRenderer(t, 200)

	snap := snapshotFor(navigation.RouteTasks, naman)
	snap.SidebarOpen = false
	out := plain(r, snap)

	assert.Contains(t, out, "▸ W")
	assert.Contains(t, out, "NA")
	assert.Contains(t, out, "⏻")
	assert.NotContains(t, out, "Sign Out")
	assert.NotContains(t, out, "naman@syncro.io")
	assert.NotContains(t, out, "Projects")
}

func TestRender_TransitionBanner(t *testing.T) {
	r := newTestRenderer(t, 160)

	snap := snapshotFor(navigation.RouteLanding, nil)
	assert.NotContains(t, plain(r, snap), "sweep")

	snap.Theme = navigation.ThemeState{
		Mode:       navigation.ThemeDark,
		Transition: navigation.Transition{Active: true, Origin: navigation.Point{X: 40, Y: 12}},
	}
	out := plain(r, snap)
	assert.Contains(t, out, "◐ dark sweep from (40,12)")
	assert.Contains(t, out, "☀")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "◐"))
}

func TestRender_LoadingIndicatorOnInternalScreens(t *testing.T) {
	r := newTestRenderer(t, 200)

	snap := snapshotFor(navigation.RouteTeam, naman)
	snap.Loading = true
	assert.Contains(t, plain(r, snap), "⟳ syncing")
}

func TestRender_ClipsToWidth(t *testing.T) {
	r := newTestRenderer(t, 40)

	for _, route := range navigation.KnownRoutes() {
		out := r.Render(snapshotFor(route, naman))
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, ansi.StringWidth(line), 40, "route %s line %q", route, line)
		}
	}

	r.SetWidth(200)
	assert.Contains(t, plain(r, snapshotFor(navigation.RouteLanding, nil)), "[ Launch ]")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Overview", Title(navigation.RouteDashboard))
	assert.Equal(t, "Schedule", Title(navigation.RouteCalendar))
	assert.Equal(t, "Access Core", Title(navigation.RouteLogin))
	assert.Equal(t, "REPORTS", Title("reports"))
}
