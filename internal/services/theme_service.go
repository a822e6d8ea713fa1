package services

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"syncro/internal/data/embedded"
	"syncro/internal/logger"
	"syncro/internal/navigation"
	"syncro/pkg/synctypes"
)

// ThemeService provides the light and dark lipgloss themes.
type ThemeService struct {
	initialized bool
	themes      map[navigation.ThemeMode]*Theme
}

// Theme defines the styles every screen renders with.
type Theme struct {
	Name        string
	BorderColor lipgloss.TerminalColor
	Brand       lipgloss.Style
	Title       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Active      lipgloss.Style
	Button      lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Danger      lipgloss.Style
	Neutral     lipgloss.Style
	Transition  lipgloss.Style
}

// Card returns a bordered panel style in the theme's border color.
func (t *Theme) Card() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if t.BorderColor != nil {
		style = style.BorderForeground(t.BorderColor)
	}
	return style
}

// NewThemeService creates a new ThemeService instance.
func NewThemeService() *ThemeService {
	return &ThemeService{
		themes: make(map[navigation.ThemeMode]*Theme),
	}
}

// Name returns the service name "theme" for registration.
func (t *ThemeService) Name() string {
	return "theme"
}

// Initialize loads the embedded theme files.
func (t *ThemeService) Initialize() error {
	themeFiles := map[navigation.ThemeMode][]byte{
		navigation.ThemeLight: embedded.LightThemeData,
		navigation.ThemeDark:  embedded.DarkThemeData,
	}

	for mode, data := range themeFiles {
		theme, err := t.loadThemeFile(data)
		if err != nil {
			logger.Error("Failed to load theme", "theme", mode, "error", err)
			t.themes[mode] = t.createFallbackTheme(string(mode))
			continue
		}
		t.themes[mode] = theme
	}

	t.initialized = true
	return nil
}

// Theme returns the theme for a mode. Unknown modes get an unstyled theme.
func (t *ThemeService) Theme(mode navigation.ThemeMode) *Theme {
	if theme, ok := t.themes[mode]; ok {
		return theme
	}
	return t.createFallbackTheme(string(mode))
}

func (t *ThemeService) loadThemeFile(data []byte) (*Theme, error) {
	var themeFile synctypes.ThemeFile
	if err := yaml.Unmarshal(data, &themeFile); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if themeFile.Name == "" {
		return nil, fmt.Errorf("theme file has no name")
	}
	return t.convertThemeConfig(&themeFile.ThemeConfig), nil
}

func (t *ThemeService) convertThemeConfig(config *synctypes.ThemeConfig) *Theme {
	return &Theme{
		Name:        config.Name,
		BorderColor: t.parseColor(config.BorderColor),
		Brand:       t.createStyle(config.Styles.Brand),
		Title:       t.createStyle(config.Styles.Title),
		Text:        t.createStyle(config.Styles.Text),
		Muted:       t.createStyle(config.Styles.Muted),
		Accent:      t.createStyle(config.Styles.Accent),
		Active:      t.createStyle(config.Styles.Active),
		Button:      t.createStyle(config.Styles.Button),
		Success:     t.createStyle(config.Styles.Success),
		Warning:     t.createStyle(config.Styles.Warning),
		Danger:      t.createStyle(config.Styles.Danger),
		Neutral:     t.createStyle(config.Styles.Neutral),
		Transition:  t.createStyle(config.Styles.Transition),
	}
}

func (t *ThemeService) createStyle(config synctypes.StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if color := t.parseColor(config.Foreground); color != nil {
		style = style.Foreground(color)
	}
	if color := t.parseColor(config.Background); color != nil {
		style = style.Background(color)
	}

	if config.Bold != nil && *config.Bold {
		style = style.Bold(true)
	}
	if config.Italic != nil && *config.Italic {
		style = style.Italic(true)
	}
	if config.Underline != nil && *config.Underline {
		style = style.Underline(true)
	}
	if config.Strikethrough != nil && *config.Strikethrough {
		style = style.Strikethrough(true)
	}

	return style
}

// parseColor parses a color value that can be a string or a light/dark map.
func (t *ThemeService) parseColor(colorValue interface{}) lipgloss.TerminalColor {
	switch v := colorValue.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		if light, hasLight := v["light"].(string); hasLight {
			if dark, hasDark := v["dark"].(string); hasDark {
				return lipgloss.AdaptiveColor{Light: light, Dark: dark}
			}
		}
		return nil
	default:
		return nil
	}
}

func (t *ThemeService) createFallbackTheme(name string) *Theme {
	return &Theme{
		Name:       name,
		Brand:      lipgloss.NewStyle().Bold(true),
		Title:      lipgloss.NewStyle().Bold(true),
		Text:       lipgloss.NewStyle(),
		Muted:      lipgloss.NewStyle(),
		Accent:     lipgloss.NewStyle(),
		Active:     lipgloss.NewStyle().Reverse(true),
		Button:     lipgloss.NewStyle().Reverse(true),
		Success:    lipgloss.NewStyle(),
		Warning:    lipgloss.NewStyle(),
		Danger:     lipgloss.NewStyle(),
		Neutral:    lipgloss.NewStyle(),
		Transition: lipgloss.NewStyle().Italic(true),
	}
}
