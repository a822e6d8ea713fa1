// Package output writes shell messages and rendered frames to a terminal or
// buffer. Styling comes from an optional StyleProvider; without one, messages
// fall back to plain text with a symbol prefix per semantic type.
package output

// StyleProvider supplies a TextStyle for each semantic type.
type StyleProvider interface {
	// GetStyle returns the style for a semantic type such as "info" or "error".
	GetStyle(semantic string) TextStyle

	// IsAvailable reports whether styles can be served yet.
	IsAvailable() bool
}

// TextStyle renders text with styling applied.
type TextStyle interface {
	Render(text string) string
}

// Mode selects how the printer styles output.
type Mode int

const (
	// ModeAuto styles output when a StyleProvider is available.
	ModeAuto Mode = iota

	// ModeStyled always asks the StyleProvider, if any.
	ModeStyled

	// ModePlain never styles output.
	ModePlain
)

// SemanticType names the meaning of a piece of output.
type SemanticType string

// Semantic types.
const (
	SemanticPlain   SemanticType = "plain"
	SemanticInfo    SemanticType = "info"
	SemanticSuccess SemanticType = "success"
	SemanticWarning SemanticType = "warning"
	SemanticError   SemanticType = "error"
	SemanticCommand SemanticType = "command"
	SemanticComment SemanticType = "comment"
)
