package shell

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"syncro/internal/navigation"
	"syncro/internal/output"
	"syncro/internal/services"
)

// themeStyles maps printer semantics onto the active theme. The mode is
// tracked from controller transitions so styling never reads the controller.
type themeStyles struct {
	themes *services.ThemeService
	mode   atomic.Value // navigation.ThemeMode
}

func newThemeStyles(themes *services.ThemeService, mode navigation.ThemeMode) *themeStyles {
	s := &themeStyles{themes: themes}
	s.mode.Store(mode)
	return s
}

func (s *themeStyles) setMode(mode navigation.ThemeMode) {
	s.mode.Store(mode)
}

func (s *themeStyles) current() navigation.ThemeMode {
	mode, _ := s.mode.Load().(navigation.ThemeMode)
	return mode
}

// GetStyle implements output.StyleProvider.
func (s *themeStyles) GetStyle(semantic string) output.TextStyle {
	theme := s.themes.Theme(s.current())

	switch output.SemanticType(semantic) {
	case output.SemanticInfo:
		return prefixedStyle{style: theme.Accent, prefix: "ℹ "}
	case output.SemanticSuccess:
		return prefixedStyle{style: theme.Success, prefix: "✓ "}
	case output.SemanticWarning:
		return prefixedStyle{style: theme.Warning, prefix: "⚠ "}
	case output.SemanticError:
		return prefixedStyle{style: theme.Danger, prefix: "✗ "}
	case output.SemanticCommand:
		return prefixedStyle{style: theme.Brand, prefix: "> "}
	case output.SemanticComment:
		return prefixedStyle{style: theme.Muted, prefix: "%% "}
	default:
		return prefixedStyle{style: theme.Text}
	}
}

// IsAvailable implements output.StyleProvider.
func (s *themeStyles) IsAvailable() bool {
	return s.themes != nil
}

type prefixedStyle struct {
	style  lipgloss.Style
	prefix string
}

func (p prefixedStyle) Render(text string) string {
	return p.style.Render(p.prefix + text)
}
