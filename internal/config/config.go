// Package config loads epubfreq settings from an optional YAML file and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/simp-lee/epubfreq/internal/extract"
	"github.com/simp-lee/epubfreq/internal/report"
)

// DefaultBook is the input used when no path is given.
const DefaultBook = "book.epub"

// Config is the complete run configuration.
type Config struct {
	Book     string         `mapstructure:"book"`
	Chapters ChaptersConfig `mapstructure:"chapters"`
	Report   ReportConfig   `mapstructure:"report"`
	Log      LogConfig      `mapstructure:"log"`
}

// ChaptersConfig selects which document items count as chapters. Pattern,
// when set, takes precedence over the prefix rule.
type ChaptersConfig struct {
	Pattern      string `mapstructure:"pattern"`
	PrefixWindow int    `mapstructure:"prefix_window"`
	Needle       string `mapstructure:"needle"`
}

// ReportConfig controls the console report.
type ReportConfig struct {
	Top        int `mapstructure:"top"`
	ChapterTop int `mapstructure:"chapter_top"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// flag name → config key
var flagKeys = map[string]string{
	"top":         "report.top",
	"chapter-top": "report.chapter_top",
	"pattern":     "chapters.pattern",
	"log-level":   "log.level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("book", DefaultBook)
	v.SetDefault("chapters.pattern", "")
	v.SetDefault("chapters.prefix_window", extract.DefaultMatcher.Window)
	v.SetDefault("chapters.needle", extract.DefaultMatcher.Needle)
	v.SetDefault("report.top", report.DefaultTop)
	v.SetDefault("report.chapter_top", 0)
	v.SetDefault("log.level", "info")
}

// Load reads configPath (skipped when empty) and overlays any flags
// that were set explicitly. Environment variables are not consulted.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be fixed by defaults.
func (c *Config) Validate() error {
	if c.Report.Top < 0 {
		return fmt.Errorf("report.top must not be negative, got %d", c.Report.Top)
	}
	if c.Report.ChapterTop < 0 {
		return fmt.Errorf("report.chapter_top must not be negative, got %d", c.Report.ChapterTop)
	}
	if c.Chapters.Pattern == "" && c.Chapters.Needle == "" {
		return errors.New("chapters.needle must not be empty when no pattern is set")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Matcher builds the chapter predicate described by the configuration.
func (c ChaptersConfig) Matcher() (extract.Matcher, error) {
	if c.Pattern != "" {
		return extract.NewPatternMatcher(c.Pattern)
	}
	return extract.PrefixMatcher{Window: c.PrefixWindow, Needle: c.Needle}, nil
}

// ParsedLevel returns the parsed logrus level. Validate has already checked it.
func (c LogConfig) ParsedLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
