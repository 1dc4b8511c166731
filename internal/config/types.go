package config

import (
	"strings"
	"time"
)

// Layout names accepted by the layout setting.
const (
	LayoutPaged = "paged"
	LayoutSplit = "split"
)

// NormalizeLayout lowercases and trims a layout name. An empty name means
// the default paged layout.
func NormalizeLayout(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return LayoutPaged
	}
	return name
}

// Config holds the dashboard runtime settings.
type Config struct {
	// Interval is the fixed sleep between frames.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Layout selects the page set: "paged" (processes, summary, cpu graph)
	// or "split" (processes, summary and cpu graph side by side).
	Layout string `yaml:"layout" mapstructure:"layout"`

	// ProcRoot is where the proc filesystem is mounted.
	ProcRoot string `yaml:"proc_root" mapstructure:"proc_root"`

	// ScrollCeiling caps the process list scroll offset.
	ScrollCeiling int `yaml:"scroll_ceiling" mapstructure:"scroll_ceiling"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Interval:      200 * time.Millisecond,
		Layout:        LayoutPaged,
		ProcRoot:      "/proc",
		ScrollCeiling: 1000,
	}
}

// yamlConfig is the on-disk shape; durations are written as strings.
type yamlConfig struct {
	Interval      string `yaml:"interval"`
	Layout        string `yaml:"layout"`
	ProcRoot      string `yaml:"proc_root"`
	ScrollCeiling int    `yaml:"scroll_ceiling"`
}

// MarshalYAML implements yaml.Marshaler so the interval reads as "200ms".
func (c Config) MarshalYAML() (interface{}, error) {
	return yamlConfig{
		Interval:      c.Interval.String(),
		Layout:        c.Layout,
		ProcRoot:      c.ProcRoot,
		ScrollCeiling: c.ScrollCeiling,
	}, nil
}
