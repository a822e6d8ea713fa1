// Package shell drives the Syncro navigation controller from typed commands.
// It wires configuration, services, the controller, the frame renderer and
// the printer together and exposes them to the interactive shell and to
// batch scripts.
package shell

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"syncro/internal/clock"
	"syncro/internal/config"
	"syncro/internal/logger"
	"syncro/internal/navigation"
	"syncro/internal/output"
	"syncro/internal/render"
	"syncro/internal/services"
	"syncro/internal/testutils"
	"syncro/pkg/synctypes"
)

// Option customizes an App.
type Option func(*App)

// WithScheduler replaces the wall-clock scheduler, mainly for tests.
func WithScheduler(s clock.Scheduler) Option {
	return func(a *App) {
		a.scheduler = s
	}
}

// WithAuthenticator replaces the registered auth service.
func WithAuthenticator(auth navigation.Authenticator) Option {
	return func(a *App) {
		a.authenticator = auth
	}
}

// WithPrinter sets the printer frames and messages are written to.
func WithPrinter(p *output.Printer) Option {
	return func(a *App) {
		a.printer = p
	}
}

// WithOutput sets the writer of the default printer.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.writer = w
	}
}

// WithTestMode renders without colors and numbers sessions sequentially so
// output is deterministic.
func WithTestMode(enabled bool) Option {
	return func(a *App) {
		a.testMode = enabled
	}
}

// App is a running Syncro session.
type App struct {
	cfg      *config.Config
	registry *services.Registry

	controller *navigation.Controller
	renderer   *render.Renderer
	printer    *output.Printer
	styles     *themeStyles

	scheduler     clock.Scheduler
	authenticator navigation.Authenticator
	testMode      bool
	writer        io.Writer
	log           *log.Logger

	// live prints frames for timer and login completions as they happen.
	live atomic.Bool
	// waitLogin makes the login command block until the result is applied.
	waitLogin atomic.Bool

	commands map[string]*Command
	order    []string

	unsubscribe func()
	closeOnce   sync.Once
}

// NewApp builds the services and the controller described by cfg.
func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	a := &App{
		cfg: cfg,
		log: logger.NewStyledLogger("Shell"),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.testMode {
		render.ConfigureColorProfile(true)
	}

	content := services.NewContentService()
	themes := services.NewThemeService()
	markdown := services.NewMarkdownService(cfg.WordWrap, a.testMode)
	var newID func() string
	if a.testMode {
		newID = testutils.NewIDSequence().Next
	}
	auth := services.NewAuthService(content, cfg.LoginDelay, newID)

	a.registry = services.NewRegistry()
	for _, svc := range []synctypes.Service{content, themes, markdown, auth} {
		if err := a.registry.RegisterService(svc); err != nil {
			return nil, err
		}
	}
	if err := a.registry.InitializeAll(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if a.authenticator == nil {
		a.authenticator = auth
	}

	initialTheme := navigation.ParseThemeMode(cfg.InitialTheme)
	a.controller = navigation.New(navigation.Options{
		Authenticator:      a.authenticator,
		Scheduler:          a.scheduler,
		TransitionDuration: cfg.ThemeTransition,
		LoginTimeout:       cfg.LoginTimeout,
		InitialTheme:       initialTheme,
		SidebarOpen:        cfg.SidebarOpen,
		Viewport:           navigation.Viewport{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight},
	})
	a.renderer = render.New(themes, markdown, content, cfg.ViewportWidth)

	a.styles = newThemeStyles(themes, initialTheme)
	if a.printer == nil {
		printerOpts := []output.Option{output.WithStyles(a.styles)}
		if a.writer != nil {
			printerOpts = append(printerOpts, output.WithWriter(a.writer))
		}
		if a.testMode {
			printerOpts = append(printerOpts, output.TestMode())
		}
		a.printer = output.NewPrinter(printerOpts...)
	}

	a.registerCommands()
	a.unsubscribe = a.controller.Subscribe(a.onTransition)

	a.log.Debug("Syncro session ready", "theme", initialTheme, "viewport", fmt.Sprintf("%dx%d", cfg.ViewportWidth, cfg.ViewportHeight))
	return a, nil
}

// onTransition runs under the controller lock: it must only read the snapshot.
func (a *App) onTransition(snap navigation.Snapshot) {
	a.styles.setMode(snap.Theme.Mode)
	a.log.Debug("Transition", "seq", snap.Seq, "cause", snap.Cause, "route", snap.Route)

	if a.live.Load() && snap.Cause.Async() {
		a.printer.Frame(a.renderer.Render(snap))
	}
}

// SetLive toggles printing of frames produced by timers and login completions.
func (a *App) SetLive(live bool) {
	a.live.Store(live)
}

// Controller returns the navigation controller.
func (a *App) Controller() *navigation.Controller {
	return a.controller
}

// Renderer returns the frame renderer.
func (a *App) Renderer() *render.Renderer {
	return a.renderer
}

// Printer returns the printer used for all shell output.
func (a *App) Printer() *output.Printer {
	return a.printer
}

// Snapshot returns the current controller state.
func (a *App) Snapshot() navigation.Snapshot {
	return a.controller.Snapshot()
}

// Frame renders the current state.
func (a *App) Frame() string {
	return a.renderer.Render(a.controller.Snapshot())
}

// ShowFrame prints the current state.
func (a *App) ShowFrame() {
	a.printer.Frame(a.Frame())
}

// Close stops the controller. Pending logins and transitions are discarded.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.unsubscribe()
		a.controller.Close()
	})
}

// sleep waits for d, or advances a manual scheduler by d when one is installed.
func (a *App) sleep(ctx context.Context, d time.Duration) error {
	if adv, ok := a.scheduler.(advancer); ok {
		adv.Advance(d)
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type advancer interface {
	Advance(d time.Duration)
}
