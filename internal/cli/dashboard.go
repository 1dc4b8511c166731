package cli

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/logger"
	"github.com/rileyhilliard/ptop/internal/monitor"
	"golang.org/x/term"
)

// debugLogFile receives log output while the dashboard owns the screen.
var debugLogFile = filepath.Join(os.TempDir(), "ptop-debug.log")

// isTerminal reports whether both stdin and stdout are terminals.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// dashboardCommand runs the TUI until the user quits.
func dashboardCommand(cfg *config.Config) error {
	if !isTerminal() {
		return errors.New(errors.ErrTerminal,
			"ptop needs an interactive terminal",
			"Run it directly in a terminal, without redirecting stdin or stdout.")
	}

	layout, err := monitor.ParseLayoutMode(cfg.Layout)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid layout",
			"Use 'paged' or 'split'.")
	}

	reader := monitor.NewSystemReader(cfg.ProcRoot)
	if _, err := reader.Uptime(); err != nil {
		return errors.WrapWithCode(err, errors.ErrMetrics,
			"Cannot read metrics from "+cfg.ProcRoot,
			"Point --proc at a mounted proc filesystem.")
	}

	// Log lines would corrupt the alternate screen, so debug output goes to a file.
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot open debug log "+debugLogFile,
				"Unset "+logger.DebugEnv+" or make the file writable.")
		}
		defer f.Close()
		logger.Default().Debug("dashboard starting: interval=%s layout=%s proc=%s", cfg.Interval, layout, cfg.ProcRoot)
	}

	model := monitor.NewModel(
		monitor.NewSampler(reader, logger.Default()),
		monitor.Options{
			Layout:        layout,
			Interval:      cfg.Interval,
			ScrollCeiling: cfg.ScrollCeiling,
		},
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Dashboard stopped unexpectedly",
			"Check that the terminal supports full-screen programs.")
	}
	return nil
}
