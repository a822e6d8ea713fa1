// Package config loads Syncro runtime settings from defaults, an optional YAML
// file, .env files, SYNCRO_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/term"
)

// Default settings.
const (
	DefaultLoginDelay      = time.Second
	DefaultLoginTimeout    = 10 * time.Second
	DefaultThemeTransition = 900 * time.Millisecond
	DefaultInitialTheme    = "light"
	DefaultWordWrap        = 80
	DefaultViewportWidth   = 80
	DefaultViewportHeight  = 24
)

// Config holds the resolved settings.
type Config struct {
	LoginDelay      time.Duration `mapstructure:"login_delay" validate:"gte=0"`
	LoginTimeout    time.Duration `mapstructure:"login_timeout" validate:"gt=0"`
	ThemeTransition time.Duration `mapstructure:"theme_transition" validate:"gt=0"`
	InitialTheme    string        `mapstructure:"initial_theme" validate:"oneof=light dark"`
	SidebarOpen     bool          `mapstructure:"sidebar_open"`
	ViewportWidth   int           `mapstructure:"viewport_width" validate:"gte=20"`
	ViewportHeight  int           `mapstructure:"viewport_height" validate:"gte=5"`
	WordWrap        int           `mapstructure:"word_wrap" validate:"gte=20,lte=400"`
	LogLevel        string        `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error fatal"`
	LogFile         string        `mapstructure:"log_file"`
}

// Default returns the built-in settings without consulting files or the environment.
func Default() *Config {
	return &Config{
		LoginDelay:      DefaultLoginDelay,
		LoginTimeout:    DefaultLoginTimeout,
		ThemeTransition: DefaultThemeTransition,
		InitialTheme:    DefaultInitialTheme,
		SidebarOpen:     true,
		ViewportWidth:   DefaultViewportWidth,
		ViewportHeight:  DefaultViewportHeight,
		WordWrap:        DefaultWordWrap,
	}
}

// terminalSize reports the size of the controlling terminal.
var terminalSize = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// TerminalViewport returns the terminal size, or 80x24 when stdout is not a terminal.
func TerminalViewport() (width, height int) {
	w, h, err := terminalSize()
	if err != nil || w <= 0 || h <= 0 {
		return DefaultViewportWidth, DefaultViewportHeight
	}
	return w, h
}

// Validate checks the struct tags and reports every violation in one error.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		return name
	})

	if err := v.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleValidationError(e))
	}
	return errors.New(strings.Join(messages, "; "))
}

func formatSingleValidationError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}
