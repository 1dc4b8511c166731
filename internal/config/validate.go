package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/ptop/internal/errors"
)

// MinInterval is the shortest refresh interval accepted.
const MinInterval = 50 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %s is too short", cfg.Interval),
			fmt.Sprintf("Use %s or more, e.g. --interval 200ms", MinInterval))
	}

	switch NormalizeLayout(cfg.Layout) {
	case LayoutPaged, LayoutSplit:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown layout %q", cfg.Layout),
			fmt.Sprintf("Use one of: %s, %s", LayoutPaged, LayoutSplit))
	}

	if cfg.ProcRoot == "" {
		return errors.New(errors.ErrConfig,
			"proc_root is empty",
			"Leave it unset to use /proc")
	}

	if cfg.ScrollCeiling <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("scroll_ceiling must be positive, got %d", cfg.ScrollCeiling),
			"Leave it unset to use 1000")
	}

	return nil
}
