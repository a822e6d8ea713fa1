// Package synctypes defines the shared data structures and contracts used throughout Syncro.
//
// # Architecture Overview
//
// Syncro is split into three layers:
//
//   - Controller Layer: the session and navigation controller owns ALL mutable client state
//     (session, route, sidebar, theme, loading flag) and is the only writer of it.
//   - Service Layer: stateless helpers (themes, markdown, static content, authentication)
//     registered in a service registry and initialized once at startup.
//   - Presentation Layer: pure rendering of controller snapshots plus the interactive shell
//     that turns user input into controller intents.
//
// # Package Organization
//
//   - interfaces.go: Service contract shared by every registered service
//   - session_types.go: Session and Credentials records
//   - theme_types.go: theme configuration loaded from YAML
//   - content_types.go: static screen content loaded from YAML
package synctypes

// Service defines the interface for Syncro services that are registered at startup.
// Services are initialized exactly once, in registration order.
type Service interface {
	// Name returns the unique registration name of the service.
	Name() string

	// Initialize prepares the service for use.
	Initialize() error
}
