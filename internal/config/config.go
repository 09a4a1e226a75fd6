// Package config handles detviz configuration loading.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/chazu/detviz/internal/logger"
	"github.com/chazu/detviz/pkg/export"
	"github.com/chazu/detviz/pkg/palette"
	"gopkg.in/yaml.v3"
)

// Config holds all export settings.
type Config struct {
	OutputDir   string   `yaml:"output_dir"`
	BoxFormat   string   `yaml:"box_format"` // obj or stl
	Palette     [][3]int `yaml:"palette"`
	IgnoreLabel *int     `yaml:"ignore_label"`
	Logging     Logging  `yaml:"logging"`
}

// Logging holds logging settings.
type Logging struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		OutputDir: "out",
		BoxFormat: string(export.FormatOBJ),
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadFile reads path over the defaults. Keys missing from the file keep
// their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output_dir is empty")
	}
	if _, err := export.ParseFormat(c.BoxFormat); err != nil {
		return err
	}
	for i, rgb := range c.Palette {
		for _, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("palette entry %d: channel %d outside 0..255", i, v)
			}
		}
	}
	return nil
}

// ColorPalette returns the configured palette.
func (c *Config) ColorPalette() palette.Palette {
	return palette.FromRows(c.Palette)
}

// Logger returns the logger settings.
func (c *Config) Logger() logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.File = c.Logging.LogFile
	return lc
}
