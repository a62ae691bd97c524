// Package config loads the CLI configuration with viper.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/aretw0/haste/internal/platform"
	"github.com/aretw0/haste/pkg/core"
)

// EnvPrefix prefixes environment overrides, e.g. HASTE_URL.
const EnvPrefix = "HASTE"

// File mirrors the YAML configuration file.
type File struct {
	URL       string `mapstructure:"url"`
	Highlight string `mapstructure:"highlight"`
	Style     string `mapstructure:"style"`
	HTML      bool   `mapstructure:"html"`
	Trim      bool   `mapstructure:"trim"`
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	defaults := core.DefaultConfig()

	v.SetDefault("url", defaults.BaseURL)
	v.SetDefault("highlight", defaults.Highlight)
	v.SetDefault("style", defaults.HighlightStyle)
	v.SetDefault("html", defaults.HTML)
	v.SetDefault("trim", defaults.Trim)
}

// Init prepares v: defaults, environment overrides and the config file.
// An explicit cfgFile must exist. Otherwise the nearest .haste.yaml above the
// working directory is used, then ConfigFile(); neither is required.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
		return nil
	}

	if wd, err := os.Getwd(); err == nil {
		if local, err := platform.FindConfig(wd); err == nil {
			v.SetConfigFile(local)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config %s: %w", local, err)
			}
			return nil
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// Load reads v into a core.Config and validates it.
func Load(v *viper.Viper) (core.Config, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return core.Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if errs := f.Validate(); len(errs) > 0 {
		return core.Config{}, errs
	}

	return core.Config{
		BaseURL:        strings.TrimRight(f.URL, "/"),
		Highlight:      f.Highlight,
		HighlightStyle: f.Style,
		HTML:           f.HTML,
		Trim:           f.Trim,
	}, nil
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "haste")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".haste"
	}
	return filepath.Join(home, ".config", "haste")
}

// ConfigFile returns the path to the user's config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Validate checks the values that would make every request fail.
func (f File) Validate() ValidationErrors {
	var errs ValidationErrors

	u, err := url.Parse(f.URL)
	switch {
	case f.URL == "":
		errs = append(errs, ValidationError{Field: "url", Value: f.URL, Message: "must not be empty"})
	case err != nil:
		errs = append(errs, ValidationError{Field: "url", Value: f.URL, Message: err.Error()})
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, ValidationError{Field: "url", Value: f.URL, Message: "scheme must be http or https"})
	case u.Host == "":
		errs = append(errs, ValidationError{Field: "url", Value: f.URL, Message: "missing host"})
	}

	if strings.TrimSpace(f.Highlight) != f.Highlight {
		errs = append(errs, ValidationError{Field: "highlight", Value: f.Highlight, Message: "must not have surrounding spaces"})
	}

	return errs
}
