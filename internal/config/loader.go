package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for the user config, relative to $HOME.
	GlobalConfigDir = ".config/ptop"
	// GlobalConfigFile is the user config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides (PTOP_INTERVAL, PTOP_LAYOUT, ...).
	EnvPrefix = "PTOP"
)

// NewViper returns a viper instance with defaults and environment overrides
// registered. Callers bind command-line flags on top before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()

	v.SetDefault("interval", def.Interval)
	v.SetDefault("layout", def.Layout)
	v.SetDefault("proc_root", def.ProcRoot)
	v.SetDefault("scroll_ceiling", def.ScrollCeiling)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Find locates the config file:
// 1. Explicit path (from --config flag)
// 2. ~/.config/ptop/config.yaml
//
// Returns an empty path when no file exists, which means defaults apply.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}
	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}
	return "", nil
}

// Load reads the config file (if any) into v and decodes the merged result.
func Load(v *viper.Viper, explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file is valid YAML: "+path)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Durations look like 200ms or 1s")
	}

	cfg.Layout = NormalizeLayout(cfg.Layout)
	cfg.ProcRoot = ExpandPath(cfg.ProcRoot)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML, in the same shape Load accepts.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	return out, nil
}
