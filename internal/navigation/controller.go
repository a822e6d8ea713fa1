// Package navigation implements the session and navigation controller: the single
// owner of the client state that decides which screen is shown and drives the
// theme transition window.
//
// Every intent runs to completion under one lock, re-applies the access guard and
// only then notifies subscribers, so no observer ever sees a forbidden internal
// screen without a session. Timer-driven work (the pending login and the theme
// sweep) goes through an injectable clock.Scheduler and Authenticator.
package navigation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"syncro/internal/clock"
	"syncro/internal/logger"
	"syncro/pkg/synctypes"
)

// Default timings.
const (
	DefaultTransitionDuration = 900 * time.Millisecond
	DefaultLoginTimeout       = 10 * time.Second
)

// Authenticator checks login credentials and builds the session for them.
type Authenticator interface {
	Authenticate(ctx context.Context, creds synctypes.Credentials) (*synctypes.Session, error)
}

// LoginResult is delivered once a pending login has been applied to the state.
type LoginResult struct {
	Session *synctypes.Session
	Err     error
}

// Options configures a Controller. Zero values fall back to defaults.
type Options struct {
	Authenticator      Authenticator
	Scheduler          clock.Scheduler
	TransitionDuration time.Duration
	LoginTimeout       time.Duration
	InitialTheme       ThemeMode
	SidebarOpen        bool
	Viewport           Viewport
	Logger             *log.Logger
}

// Controller owns the session, route, sidebar, theme and loading state.
type Controller struct {
	mu    sync.Mutex
	state State
	seq   uint64

	viewport      Viewport
	transitionGen uint64
	transition    clock.Timer

	listeners    map[int]func(Snapshot)
	nextListener int

	auth               Authenticator
	scheduler          clock.Scheduler
	transitionDuration time.Duration
	loginTimeout       time.Duration
	log                *log.Logger

	lifetime context.Context
	cancel   context.CancelFunc
	pending  sync.WaitGroup
	closed   bool
}

// New creates a controller on the landing route with no session.
func New(opts Options) *Controller {
	if opts.Scheduler == nil {
		opts.Scheduler = clock.System{}
	}
	if opts.TransitionDuration <= 0 {
		opts.TransitionDuration = DefaultTransitionDuration
	}
	if opts.LoginTimeout <= 0 {
		opts.LoginTimeout = DefaultLoginTimeout
	}
	if opts.InitialTheme == "" {
		opts.InitialTheme = ThemeLight
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewStyledLogger("Navigation")
	}

	lifetime, cancel := context.WithCancel(context.Background())
	return &Controller{
		state: State{
			Route:       RouteLanding,
			SidebarOpen: opts.SidebarOpen,
			Theme:       ThemeState{Mode: opts.InitialTheme},
		},
		viewport:           opts.Viewport,
		listeners:          make(map[int]func(Snapshot)),
		auth:               opts.Authenticator,
		scheduler:          opts.Scheduler,
		transitionDuration: opts.TransitionDuration,
		loginTimeout:       opts.LoginTimeout,
		log:                opts.Logger,
		lifetime:           lifetime,
		cancel:             cancel,
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(CauseInit)
}

// Subscribe registers fn to receive a snapshot after every transition, in
// transition order. fn runs while the controller is locked and must not call
// intents synchronously. The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Navigate moves to the route and then applies the access guard.
func (c *Controller) Navigate(route Route) {
	route = ParseRoute(string(route))
	c.dispatch(CauseNavigate, func(s *State) {
		s.Route = route
	})
}

// EnterCore navigates to the dashboard when authenticated, otherwise to login.
func (c *Controller) EnterCore() {
	c.dispatch(CauseEnterCore, func(s *State) {
		if s.Session != nil {
			s.Route = RouteDashboard
		} else {
			s.Route = RouteLogin
		}
	})
}

// SetSidebarOpen sets the sidebar flag.
func (c *Controller) SetSidebarOpen(open bool) {
	c.dispatch(CauseSidebar, func(s *State) {
		s.SidebarOpen = open
	})
}

// ToggleSidebar flips the sidebar flag.
func (c *Controller) ToggleSidebar() {
	c.dispatch(CauseSidebar, func(s *State) {
		s.SidebarOpen = !s.SidebarOpen
	})
}

// SetViewport records the drawing surface size used to centre theme sweeps.
func (c *Controller) SetViewport(v Viewport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.viewport == v {
		return
	}
	c.viewport = v
	c.applyLocked(CauseViewport, func(*State) {})
}

// Logout drops the session and returns to the landing page.
func (c *Controller) Logout() {
	c.dispatch(CauseLogout, func(s *State) {
		s.Session = nil
		s.Route = RouteLanding
		s.LastError = nil
	})
}

// ToggleTheme flips the color mode and opens a transition window centred on
// origin, or on the viewport centre when origin is nil. A later toggle
// supersedes the window of an earlier one.
func (c *Controller) ToggleTheme(origin *Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	at := c.viewport.Center()
	if origin != nil {
		at = *origin
	}

	c.transitionGen++
	gen := c.transitionGen
	c.applyLocked(CauseThemeToggle, func(s *State) {
		s.Theme.Mode = s.Theme.Mode.Toggle()
		s.Theme.Transition = Transition{Active: true, Origin: at}
	})

	if c.transition != nil {
		c.transition.Stop()
	}
	c.transition = c.scheduler.AfterFunc(c.transitionDuration, func() {
		c.settleTransition(gen)
	})
}

// settleTransition closes the transition window opened by toggle generation gen.
// Clears scheduled by superseded toggles are ignored.
func (c *Controller) settleTransition(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if gen != c.transitionGen {
		c.log.Debug("Ignoring stale transition clear", "generation", gen, "current", c.transitionGen)
		return
	}
	c.transition = nil
	c.applyLocked(CauseThemeSettled, func(s *State) {
		s.Theme.Transition.Active = false
	})
}

// Login starts a credential check for email. The loading flag is raised
// immediately; when the check finishes the session, the dashboard route and
// the cleared loading flag are applied in one transition. On failure only the
// loading flag clears and the error is recorded. The returned channel yields
// exactly one result after the state has been updated.
func (c *Controller) Login(ctx context.Context, email, password string) (<-chan LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmptyEmail
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	if c.state.Loading {
		c.mu.Unlock()
		return nil, ErrLoginPending
	}
	c.applyLocked(CauseLoginStarted, func(s *State) {
		s.Loading = true
		s.LastError = nil
	})
	c.pending.Add(1)
	c.mu.Unlock()

	authCtx, cancel := context.WithTimeout(ctx, c.loginTimeout)
	stop := context.AfterFunc(c.lifetime, cancel)

	done := make(chan LoginResult, 1)
	go func() {
		defer c.pending.Done()
		defer cancel()
		defer stop()

		session, err := c.authenticate(authCtx, synctypes.Credentials{Email: email, Password: password})
		err = classifyAuthError(authCtx, email, err)
		done <- c.completeLogin(email, session, err)
		close(done)
	}()

	return done, nil
}

func (c *Controller) authenticate(ctx context.Context, creds synctypes.Credentials) (*synctypes.Session, error) {
	if c.auth == nil {
		return nil, NewAuthError(AuthNetworkFailure, creds.Email, errNoAuthenticator)
	}
	session, err := c.auth.Authenticate(ctx, creds)
	if err == nil && session == nil {
		return nil, NewAuthError(AuthInvalidCredentials, creds.Email, nil)
	}
	return session, err
}

func (c *Controller) completeLogin(email string, session *synctypes.Session, err error) LoginResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return LoginResult{Err: ErrClosed}
	}

	if err != nil {
		c.log.Warn("Login rejected", "email", email, "error", err)
		c.applyLocked(CauseLoginFailed, func(s *State) {
			s.Loading = false
			s.LastError = err
		})
		return LoginResult{Err: err}
	}

	session = session.Clone()
	c.log.Info("Login succeeded", "email", session.Email, "session", session.ID)
	c.applyLocked(CauseLoginComplete, func(s *State) {
		s.Session = session
		s.Route = RouteDashboard
		s.Loading = false
		s.LastError = nil
	})
	return LoginResult{Session: session.Clone()}
}

// Close stops pending timers, cancels in-flight credential checks and waits
// for them to finish. Intents issued afterwards are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.transition != nil {
		c.transition.Stop()
		c.transition = nil
	}
	c.cancel()
	c.mu.Unlock()

	c.pending.Wait()
}

// dispatch applies an intent under the controller lock.
func (c *Controller) dispatch(cause Cause, mutate func(*State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.applyLocked(cause, mutate)
}

// applyLocked mutates the state, re-applies the guard and notifies
// subscribers. c.mu must be held.
func (c *Controller) applyLocked(cause Cause, mutate func(*State)) {
	mutate(&c.state)
	guarded := ApplyGuard(c.state)
	if guarded.Route != c.state.Route {
		c.log.Debug("Access guard redirect", "from", c.state.Route, "to", guarded.Route)
	}
	c.state = guarded
	c.seq++

	snap := c.snapshotLocked(cause)
	c.log.Debug("Transition",
		"cause", cause,
		"route", snap.Route,
		"authenticated", snap.Authenticated(),
		"theme", snap.Theme.Mode,
		"sweep", snap.Theme.Transition.Active,
		"loading", snap.Loading,
	)
	for _, fn := range c.listeners {
		fn(snap)
	}
}

func (c *Controller) snapshotLocked(cause Cause) Snapshot {
	s := c.state
	return Snapshot{
		Seq:         c.seq,
		Cause:       cause,
		Session:     s.Session.Clone(),
		Route:       s.Route,
		SidebarOpen: s.SidebarOpen,
		Theme:       s.Theme,
		Loading:     s.Loading,
		LastError:   s.LastError,
		Public:      IsPublicRoute(s.Route),
		Accessible:  IsAccessible(s.Route, s.Session),
		Developed:   IsDeveloped(s.Route),
		Viewport:    c.viewport,
	}
}
