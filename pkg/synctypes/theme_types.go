package synctypes

// ThemeConfig represents a theme configuration loaded from YAML.
// It defines the colors and decorations for the semantic elements of every screen.
type ThemeConfig struct {
	// Name is the theme identifier ("light" or "dark")
	Name string `yaml:"name" json:"name"`

	// Description provides a brief description of the theme
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// BorderColor is used for card and sidebar borders
	BorderColor interface{} `yaml:"border_color,omitempty" json:"border_color,omitempty"`

	// Styles contains the style definitions for the semantic elements
	Styles ThemeStyles `yaml:"styles" json:"styles"`
}

// ThemeStyles defines the styling configuration for the semantic elements of a screen.
type ThemeStyles struct {
	Brand      StyleConfig `yaml:"brand" json:"brand"`
	Title      StyleConfig `yaml:"title" json:"title"`
	Text       StyleConfig `yaml:"text" json:"text"`
	Muted      StyleConfig `yaml:"muted" json:"muted"`
	Accent     StyleConfig `yaml:"accent" json:"accent"`
	Active     StyleConfig `yaml:"active" json:"active"`
	Button     StyleConfig `yaml:"button" json:"button"`
	Success    StyleConfig `yaml:"success" json:"success"`
	Warning    StyleConfig `yaml:"warning" json:"warning"`
	Danger     StyleConfig `yaml:"danger" json:"danger"`
	Neutral    StyleConfig `yaml:"neutral" json:"neutral"`
	Transition StyleConfig `yaml:"transition" json:"transition"`
}

// StyleConfig defines the visual styling for a semantic element.
// Colors can be plain strings or adaptive objects with light/dark keys.
type StyleConfig struct {
	Foreground    interface{} `yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Background    interface{} `yaml:"background,omitempty" json:"background,omitempty"`
	Bold          *bool       `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic        *bool       `yaml:"italic,omitempty" json:"italic,omitempty"`
	Underline     *bool       `yaml:"underline,omitempty" json:"underline,omitempty"`
	Strikethrough *bool       `yaml:"strikethrough,omitempty" json:"strikethrough,omitempty"`
}

// ThemeFile represents a complete theme file loaded from YAML.
type ThemeFile struct {
	ThemeConfig `yaml:",inline" json:",inline"`
}
