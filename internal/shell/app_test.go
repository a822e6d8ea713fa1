package shell

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"syncro/internal/config"
	"syncro/internal/navigation"
	"syncro/internal/output"
	"syncro/internal/render"
	"syncro/internal/services"
	"syncro/internal/testutils"
)

func TestMain(m *testing.M) {
	render.ConfigureColorProfile(true)
	goleak.VerifyTestMain(m)
}

type testApp struct {
	*App
	out   *output.CaptureBuffer
	sched *testutils.ManualScheduler
}

func newTestApp(t *testing.T, opts ...Option) *testApp {
	t.Helper()

	cfg := config.Default()
	cfg.LoginDelay = 0
	cfg.ViewportWidth = 200
	cfg.ViewportHeight = 40

	out := output.NewCaptureBuffer()
	sched := testutils.NewManualScheduler()

	opts = append([]Option{
		WithScheduler(sched),
		WithTestMode(true),
		WithPrinter(output.NewPrinter(output.WithWriter(out), output.TestMode())),
	}, opts...)

	app, err := NewApp(cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	return &testApp{App: app, out: out, sched: sched}
}

func (a *testApp) exec(t *testing.T, line string) {
	t.Helper()
	require.NoError(t, a.Execute(context.Background(), line))
}

func TestNewApp_InitialState(t *testing.T) {
	app := newTestApp(t)

	snap := app.Snapshot()
	assert.Equal(t, navigation.RouteLanding, snap.Route)
	assert.Nil(t, snap.Session)
	assert.Equal(t, navigation.ThemeLight, snap.Theme.Mode)
	assert.True(t, snap.SidebarOpen)
	assert.Equal(t, navigation.Viewport{Width: 200, Height: 40}, snap.Viewport)
	assert.Equal(t, "syncro[landing]> ", app.Prompt())

	for _, name := range []string{"content", "theme", "markdown", "auth"} {
		assert.True(t, app.registry.HasService(name), name)
	}
}

func TestNewApp_NilConfigUsesDefaults(t *testing.T) {
	app, err := NewApp(nil, WithTestMode(true), WithPrinter(output.NewPrinter(output.Silent())))
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, navigation.Viewport{Width: config.DefaultViewportWidth, Height: config.DefaultViewportHeight}, app.Snapshot().Viewport)
}

func TestExecute_GoRendersFrame(t *testing.T) {
	app := newTestApp(t)

	app.exec(t, "go pricing")
	assert.Equal(t, navigation.RoutePricing, app.Snapshot().Route)
	assert.True(t, app.out.Contains("$49/mo"))
	assert.Equal(t, "syncro[pricing]> ", app.Prompt())
}

func TestExecute_GuardRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	app.exec(t, "go team")
	assert.Equal(t, navigation.RouteLogin, app.Snapshot().Route)
	assert.True(t, app.out.Contains("Access Core"))

	app.out.Reset()
	app.exec(t, "enter")
	assert.Equal(t, navigation.RouteLogin, app.Snapshot().Route)
}

func TestExecute_IgnoresBlankAndComments(t *testing.T) {
	app := newTestApp(t)

	for _, line := range []string{"", "   ", "%% a note", "# another"} {
		require.NoError(t, app.Execute(context.Background(), line))
	}
	assert.Empty(t, app.out.String())
}

func TestExecute_Errors(t *testing.T) {
	app := newTestApp(t)

	usage := []string{
		"go",
		"go a b",
		"enter now",
		"login",
		"login a b c",
		"logout now",
		"theme 1",
		"theme a b",
		"sidebar sideways",
		"sidebar open now",
		"docs a b",
		"viewport 0 10",
		"viewport wide tall",
		"wait soon",
		"wait -1s",
		"run",
	}
	for _, line := range usage {
		t.Run(line, func(t *testing.T) {
			err := app.Execute(context.Background(), line)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}

	err := app.Execute(context.Background(), "fly away")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"fly"`)

	err = app.Execute(context.Background(), "docs changelog")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available")

	err = app.Execute(context.Background(), "login   ")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestExecute_CommandNamesAreCaseInsensitive(t *testing.T) {
	app := newTestApp(t)

	app.exec(t, "GO about")
	assert.Equal(t, navigation.RouteAbout, app.Snapshot().Route)
}

func TestRunBatch_LoginWaitsForResult(t *testing.T) {
	app := newTestApp(t)

	err := app.RunBatch(context.Background(), strings.NewReader("login naman@syncro.io\ngo team\n"))
	require.NoError(t, err)

	snap := app.Snapshot()
	assert.Equal(t, navigation.RouteTeam, snap.Route)
	require.NotNil(t, snap.Session)
	assert.Equal(t, "Naman Aggarwal", snap.Session.Name)
	assert.False(t, snap.Loading)

	out := app.out.String()
	assert.Contains(t, out, "> login naman@syncro.io")
	assert.Contains(t, out, "Welcome back, Naman")
	assert.Contains(t, out, "> go team")
	assert.Contains(t, out, "Marcus Thorne")
	assert.NotContains(t, out, "Authenticating...")
}

func TestRunBatch_LoginFailureIsShown(t *testing.T) {
	auth := testutils.NewStubAuthenticator().FailWith(errors.New("offline"))
	app := newTestApp(t, WithAuthenticator(auth))

	require.NoError(t, app.RunBatch(context.Background(), strings.NewReader("login a@b.io\n")))

	snap := app.Snapshot()
	assert.Nil(t, snap.Session)
	assert.Equal(t, navigation.RouteLogin, snap.Route)
	assert.ErrorIs(t, snap.LastError, navigation.ErrNetworkFailure)
	assert.True(t, app.out.Contains("✗ Network failure."))
}

func TestRunBatch_ReportsFailingLine(t *testing.T) {
	app := newTestApp(t)

	err := app.RunBatch(context.Background(), strings.NewReader("%% tour\ngo about\ngo\ngo pricing\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "line 3 (go)")
	assert.Equal(t, navigation.RouteAbout, app.Snapshot().Route)
}

func TestRunScript(t *testing.T) {
	app := newTestApp(t)

	path := filepath.Join(t.TempDir(), "tour.syncro")
	require.NoError(t, os.WriteFile(path, []byte("%% public tour\ngo about\ndocs api\n"), 0600))

	require.NoError(t, app.RunScript(context.Background(), path))
	assert.Equal(t, navigation.RouteDocumentation, app.Snapshot().Route)
	assert.Equal(t, "api", app.Renderer().DocsTab())
	assert.True(t, app.out.Contains("> docs api"))
	assert.False(t, app.out.Contains("public tour"))

	bad := filepath.Join(t.TempDir(), "tour.txt")
	require.NoError(t, os.WriteFile(bad, []byte("go about\n"), 0600))
	err := app.Execute(context.Background(), "run "+bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".syncro extension")
}

func TestRunScript_StopsSelfReferencingScript(t *testing.T) {
	app := newTestApp(t)

	dir := t.TempDir()
	loop := filepath.Join(dir, "loop.syncro")
	other := filepath.Join(dir, "other.syncro")
	require.NoError(t, os.WriteFile(loop, []byte("go about\nrun "+other+"\n"), 0600))
	require.NoError(t, os.WriteFile(other, []byte("run "+loop+"\n"), 0600))

	err := app.RunScript(context.Background(), loop)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScriptDepth)
	assert.Equal(t, navigation.RouteAbout, app.Snapshot().Route)
}

func TestExecute_LogoutReturnsToLanding(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, app.RunBatch(context.Background(), strings.NewReader("login naman@syncro.io\n")))

	app.exec(t, "logout")
	snap := app.Snapshot()
	assert.Nil(t, snap.Session)
	assert.Equal(t, navigation.RouteLanding, snap.Route)
	assert.True(t, app.out.Contains("[ Launch ]"))
}

func TestExecute_ThemeSweep(t *testing.T) {
	app := newTestApp(t)

	app.exec(t, "theme")
	snap := app.Snapshot()
	assert.Equal(t, navigation.ThemeDark, snap.Theme.Mode)
	assert.True(t, snap.Theme.Transition.Active)
	assert.Equal(t, navigation.Point{X: 100, Y: 20}, snap.Theme.Transition.Origin)
	assert.True(t, app.out.Contains("◐ dark sweep from (100,20)"))
	assert.Equal(t, navigation.ThemeDark, app.styles.current())

	app.exec(t, "wait 899ms")
	assert.True(t, app.Snapshot().Theme.Transition.Active)

	app.exec(t, "wait 1ms")
	assert.False(t, app.Snapshot().Theme.Transition.Active)

	app.exec(t, "theme 3 4")
	snap = app.Snapshot()
	assert.Equal(t, navigation.ThemeLight, snap.Theme.Mode)
	assert.Equal(t, navigation.Point{X: 3, Y: 4}, snap.Theme.Transition.Origin)
	assert.Equal(t, navigation.ThemeLight, app.styles.current())
}

func TestExecute_Sidebar(t *testing.T) {
	app := newTestApp(t)

	app.exec(t, "sidebar")
	assert.False(t, app.Snapshot().SidebarOpen)
	app.exec(t, "sidebar open")
	assert.True(t, app.Snapshot().SidebarOpen)
	app.exec(t, "sidebar CLOSE")
	assert.False(t, app.Snapshot().SidebarOpen)
}

func TestExecute_Viewport(t *testing.T) {
	app := newTestApp(t)

	app.exec(t, "viewport 100 30")
	assert.Equal(t, navigation.Viewport{Width: 100, Height: 30}, app.Snapshot().Viewport)

	app.exec(t, "theme")
	assert.Equal(t, navigation.Point{X: 50, Y: 15}, app.Snapshot().Theme.Transition.Origin)
}

func TestExecute_Status(t *testing.T) {
	app := newTestApp(t)

	app.exec(t, "status")
	assert.Equal(t, []string{
		"ℹ route: landing (public)",
		"ℹ session: none",
		"ℹ theme: light",
		"ℹ sidebar: open",
		"ℹ viewport: 200x40",
	}, app.out.Lines())

	require.NoError(t, app.RunBatch(context.Background(), strings.NewReader("login naman@syncro.io\ngo calendar\ntheme 1 2\n")))
	app.out.Reset()

	app.exec(t, "status")
	out := app.out.String()
	assert.Contains(t, out, "route: calendar (internal, under construction)")
	assert.Contains(t, out, "session: Naman Aggarwal <naman@syncro.io> id=00000001-0000-4000-8000-000000000001")
	assert.Contains(t, out, "theme: dark (sweeping from 1,2)")
}

func TestExecute_Routes(t *testing.T) {
	app := newTestApp(t)

	app.exec(t, "routes")
	lines := app.out.Lines()
	require.Len(t, lines, len(navigation.KnownRoutes()))
	assert.True(t, strings.HasPrefix(lines[0], "✓ landing"))
	assert.Contains(t, app.out.String(), "calendar")
	assert.Contains(t, app.out.String(), "internal, under construction")
}

func TestExecute_Help(t *testing.T) {
	app := newTestApp(t)

	app.exec(t, "help")
	lines := app.out.Lines()
	require.Len(t, lines, len(app.Commands()))
	assert.Contains(t, lines[0], "go <route>")
}

func TestLiveFramesForAsyncTransitions(t *testing.T) {
	auth := testutils.NewGatedAuthenticator()
	app := newTestApp(t, WithAuthenticator(auth))
	app.SetLive(true)

	app.exec(t, "login ada@syncro.io")
	assert.True(t, app.Snapshot().Loading)
	assert.True(t, app.out.Contains("Authenticating..."))

	auth.Release()
	assert.Eventually(t, func() bool {
		return app.out.Contains("Welcome back")
	}, 2*time.Second, 10*time.Millisecond)

	app.out.Reset()
	app.exec(t, "theme")
	app.exec(t, "wait 900ms")

	// toggle frame, settled frame from the timer, then the frame printed by wait
	assert.Equal(t, 3, strings.Count(app.out.String(), "Welcome back"))
}

func TestLoginWhilePendingKeepsRoute(t *testing.T) {
	auth := testutils.NewGatedAuthenticator()
	app := newTestApp(t, WithAuthenticator(auth))

	app.exec(t, "login ada@syncro.io")
	app.exec(t, "go about")
	require.True(t, app.Snapshot().Loading)

	err := app.Execute(context.Background(), "login bob@syncro.io")
	assert.ErrorIs(t, err, navigation.ErrLoginPending)
	assert.Equal(t, navigation.RouteAbout, app.Snapshot().Route)

	auth.Release()
	assert.Eventually(t, func() bool {
		return !app.Snapshot().Loading
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, navigation.RouteDashboard, app.Snapshot().Route)
}

func TestCloseDiscardsPendingLogin(t *testing.T) {
	auth := testutils.NewGatedAuthenticator()
	app := newTestApp(t, WithAuthenticator(auth))

	app.exec(t, "login ada@syncro.io")
	app.Close()
	app.Close()

	assert.Equal(t, 0, app.sched.Pending())
	assert.Nil(t, app.Snapshot().Session)
}

func TestCompletion(t *testing.T) {
	app := newTestApp(t)

	assert.Contains(t, completeRoutes(nil), "dashboard")
	assert.Nil(t, completeRoutes([]string{"dashboard"}))
	assert.Equal(t, []string{"getting-started", "architecture", "api", "security"}, app.completeDocs(nil))
	assert.Equal(t, []string{"open", "close", "toggle"}, app.commands["sidebar"].Complete(nil))
}

func TestThemeStyles(t *testing.T) {
	themes := services.NewThemeService()
	require.NoError(t, themes.Initialize())

	styles := newThemeStyles(themes, navigation.ThemeLight)
	assert.True(t, styles.IsAvailable())

	assert.Contains(t, styles.GetStyle("error").Render("boom"), "✗ boom")
	assert.Contains(t, styles.GetStyle("command").Render("go about"), "> go about")
	assert.Contains(t, styles.GetStyle("plain").Render("text"), "text")

	styles.setMode(navigation.ThemeDark)
	assert.Equal(t, navigation.ThemeDark, styles.current())
}
