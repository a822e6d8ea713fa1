package navigation

import "strings"

// Route is a navigation token. Any string is a valid Route; tokens outside the
// known set are treated as undeveloped internal modules.
type Route string

// Known route tokens.
const (
	RouteLanding       Route = "landing"
	RouteAbout         Route = "about"
	RoutePricing       Route = "pricing"
	RouteDocumentation Route = "documentation"
	RouteLogin         Route = "login"
	RouteDashboard     Route = "dashboard"
	RouteTasks         Route = "tasks"
	RouteBoards        Route = "boards"
	RouteCalendar      Route = "calendar"
	RouteAnalytics     Route = "analytics"
	RouteTeam          Route = "team"
)

var publicRoutes = map[Route]struct{}{
	RouteLanding:       {},
	RouteAbout:         {},
	RoutePricing:       {},
	RouteDocumentation: {},
	RouteLogin:         {},
}

// internal routes that have a screen of their own; everything else in the
// internal area renders the placeholder.
var developedRoutes = map[Route]struct{}{
	RouteDashboard: {},
	RouteTasks:     {},
	RouteBoards:    {},
	RouteAnalytics: {},
	RouteTeam:      {},
}

// PublicRoutes returns the public routes in navigation order.
func PublicRoutes() []Route {
	return []Route{RouteLanding, RouteAbout, RoutePricing, RouteDocumentation, RouteLogin}
}

// InternalRoutes returns the known internal routes in sidebar order.
func InternalRoutes() []Route {
	return []Route{RouteDashboard, RouteTasks, RouteBoards, RouteCalendar, RouteAnalytics, RouteTeam}
}

// KnownRoutes returns every route of the closed enumeration.
func KnownRoutes() []Route {
	return append(PublicRoutes(), InternalRoutes()...)
}

// ParseRoute normalises user input into a Route. The empty token maps to landing.
func ParseRoute(s string) Route {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RouteLanding
	}
	return Route(s)
}

// IsPublicRoute reports whether the route is reachable without a session.
func IsPublicRoute(r Route) bool {
	_, ok := publicRoutes[r]
	return ok
}

// IsInternalRoute reports whether the route requires a session.
// Unknown tokens are internal.
func IsInternalRoute(r Route) bool {
	return !IsPublicRoute(r)
}

// IsKnownRoute reports whether the route belongs to the closed enumeration.
func IsKnownRoute(r Route) bool {
	if IsPublicRoute(r) {
		return true
	}
	for _, ir := range InternalRoutes() {
		if ir == r {
			return true
		}
	}
	return false
}

// IsDeveloped reports whether an internal route has a dedicated screen.
func IsDeveloped(r Route) bool {
	_, ok := developedRoutes[r]
	return ok
}
