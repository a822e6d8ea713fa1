package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SYNCRO"

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level": "log_level",
	"log-file":  "log_file",
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// ConfigFile is an explicit YAML file. When empty, syncro.yaml or
	// syncro.yml is searched for in SearchPaths.
	ConfigFile  string
	SearchPaths []string

	// DotEnvFiles are read in order, later files overriding earlier ones.
	// Missing files are skipped.
	DotEnvFiles []string

	// Flags, when set, override every other source for the flags it defines.
	Flags *pflag.FlagSet
}

// DefaultLoadOptions searches the working directory and the user config
// directory for both the YAML file and .env files.
func DefaultLoadOptions() LoadOptions {
	dirs := []string{"."}
	var envFiles []string
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "syncro"))
		envFiles = append(envFiles, filepath.Join(dir, "syncro", ".env"))
	}
	envFiles = append(envFiles, ".env")

	return LoadOptions{SearchPaths: dirs, DotEnvFiles: envFiles}
}

// Load resolves the configuration. Priority from lowest to highest: defaults,
// config file, .env files, environment variables, flags.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = findConfigFileInPaths(opts.SearchPaths)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	dotEnv, err := readDotEnv(opts.DotEnvFiles)
	if err != nil {
		return nil, err
	}
	if len(dotEnv) > 0 {
		if err := v.MergeConfigMap(dotEnv); err != nil {
			return nil, fmt.Errorf("failed to merge .env values: %w", err)
		}
	}

	if opts.Flags != nil {
		for flag, key := range flagKeys {
			if f := opts.Flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind --%s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	width, height := TerminalViewport()

	v.SetDefault("login_delay", DefaultLoginDelay)
	v.SetDefault("login_timeout", DefaultLoginTimeout)
	v.SetDefault("theme_transition", DefaultThemeTransition)
	v.SetDefault("initial_theme", DefaultInitialTheme)
	v.SetDefault("sidebar_open", true)
	v.SetDefault("viewport_width", width)
	v.SetDefault("viewport_height", height)
	v.SetDefault("word_wrap", DefaultWordWrap)
	v.SetDefault("log_level", "")
	v.SetDefault("log_file", "")
}

// readDotEnv collects SYNCRO_* entries from the given .env files as config
// keys. The process environment is left untouched.
func readDotEnv(paths []string) (map[string]interface{}, error) {
	values := make(map[string]interface{})
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		entries, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for name, value := range entries {
			key, ok := strings.CutPrefix(name, EnvPrefix+"_")
			if !ok || key == "" {
				continue
			}
			values[strings.ToLower(key)] = value
		}
	}
	return values, nil
}

// findConfigFileInPaths returns the first syncro.yaml or syncro.yml found.
func findConfigFileInPaths(paths []string) string {
	for _, dir := range paths {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, "syncro"+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
