package navigation

import "syncro/pkg/synctypes"

// ThemeMode is the presentation color mode.
type ThemeMode string

// Theme modes.
const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Toggle returns the opposite mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseThemeMode maps a config value to a mode, defaulting to light.
func ParseThemeMode(s string) ThemeMode {
	if ThemeMode(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Point is a viewport coordinate.
type Point struct {
	X int
	Y int
}

// Viewport is the size of the drawing surface, used to centre theme sweeps
// that have no explicit origin.
type Viewport struct {
	Width  int
	Height int
}

// Center returns the middle of the viewport.
func (v Viewport) Center() Point {
	return Point{X: v.Width / 2, Y: v.Height / 2}
}

// Transition describes an in-progress theme sweep.
type Transition struct {
	Active bool
	Origin Point
}

// ThemeState holds the color mode and the sweep animating it into view.
// While Transition.Active is set, Mode already holds the new value.
type ThemeState struct {
	Mode       ThemeMode
	Transition Transition
}

// State is the complete controller state bundle.
type State struct {
	Session     *synctypes.Session
	Route       Route
	SidebarOpen bool
	Theme       ThemeState
	Loading     bool
	LastError   error
}

// ApplyGuard enforces the access rule: an internal route without a session
// is replaced by the login route.
func ApplyGuard(s State) State {
	if IsInternalRoute(s.Route) && s.Session == nil {
		s.Route = RouteLogin
	}
	return s
}

// IsAccessible reports whether the route may be shown for the given session.
func IsAccessible(r Route, session *synctypes.Session) bool {
	return !IsInternalRoute(r) || session != nil
}

// Cause names the event that produced a transition.
type Cause string

// Transition causes.
const (
	CauseInit          Cause = "init"
	CauseNavigate      Cause = "navigate"
	CauseEnterCore     Cause = "enter-core"
	CauseLoginStarted  Cause = "login-started"
	CauseLoginComplete Cause = "login-complete"
	CauseLoginFailed   Cause = "login-failed"
	CauseLogout        Cause = "logout"
	CauseThemeToggle   Cause = "theme-toggle"
	CauseThemeSettled  Cause = "theme-settled"
	CauseSidebar       Cause = "sidebar"
	CauseViewport      Cause = "viewport"
)

// Async reports whether the cause originates from a timer or a credential
// check rather than a direct intent.
func (c Cause) Async() bool {
	return c == CauseLoginComplete || c == CauseLoginFailed || c == CauseThemeSettled
}

// Snapshot is a read-only copy of the controller state handed to the
// presentation layer, together with the derived route queries.
type Snapshot struct {
	Seq         uint64
	Cause       Cause
	Session     *synctypes.Session
	Route       Route
	SidebarOpen bool
	Theme       ThemeState
	Loading     bool
	LastError   error
	Public      bool
	Accessible  bool
	Developed   bool
	Viewport    Viewport
}

// Authenticated reports whether the snapshot carries a session.
func (s Snapshot) Authenticated() bool {
	return s.Session != nil
}
