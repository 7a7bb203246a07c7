package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/listing"
	"github.com/arthur-debert/retitle/pkg/output"
)

// AppName names the configuration directory
const AppName = "retitle"

// EnvPrefix is the prefix of configuration environment variables
const EnvPrefix = "RETITLE_"

// Config is the effective retitle configuration
type Config struct {
	Dir     string        `koanf:"dir" toml:"dir"`
	Editor  EditorConfig  `koanf:"editor" toml:"editor"`
	Listing ListingConfig `koanf:"listing" toml:"listing"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
}

// EditorConfig configures the external editor
type EditorConfig struct {
	Command string `koanf:"command" toml:"command"`
	Suffix  string `koanf:"suffix" toml:"suffix"`
}

// ListingConfig configures directory listing
type ListingConfig struct {
	IncludeHidden bool `koanf:"include_hidden" toml:"include_hidden"`
}

// OutputConfig configures the rename report
type OutputConfig struct {
	Color string `koanf:"color" toml:"color"`
}

// DefaultConfigPath returns the user configuration file location
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// ListingOptions converts the listing section for pkg/listing
func (c *Config) ListingOptions() listing.Options {
	return listing.Options{IncludeHidden: c.Listing.IncludeHidden}
}

// ColorMode returns the parsed output color mode
func (c *Config) ColorMode() output.ColorMode {
	mode, _ := output.ParseColorMode(c.Output.Color)
	return mode
}

// Validate checks values that decoding alone cannot
func (c *Config) Validate() error {
	if c.Dir == "" {
		return errors.New(errors.ErrConfigParse, "dir must not be empty")
	}
	if _, err := output.ParseColorMode(c.Output.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid output.color").
			WithDetail("value", c.Output.Color)
	}
	return nil
}
