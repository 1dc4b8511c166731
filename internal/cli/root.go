package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions carries state shared by the root command and its subcommands.
type rootOptions struct {
	configPath string
	viper      *viper.Viper
}

// load resolves the effective config: flags, then PTOP_* env, then the
// config file, then defaults.
func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.viper, o.configPath)
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{viper: config.NewViper()}

	cmd := &cobra.Command{
		Use:   "ptop",
		Short: "Live terminal dashboard for processes, memory and CPU",
		Long: `ptop samples the proc filesystem on a fixed interval and shows a paged,
auto-refreshing view of the process table, a system summary and a CPU
usage graph.

Use ←/→ to switch pages, ↑/↓ to scroll the process table and q to quit.

Examples:
  ptop
  ptop --interval 1s
  ptop --layout split
  ptop --proc /host/proc`,
		Version:       formatVersion(version),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return dashboardCommand(cfg)
		},
	}

	AddConfigFlags(cmd, opts)
	cmd.AddCommand(newVersionCmd(), newConfigCmd(opts))
	return cmd
}

// Execute runs the root command. On failure it prints the error and exits
// with 2 for usage and config mistakes, 1 otherwise.
func Execute() {
	rootCmd.Version = formatVersion(version)
	if err := rootCmd.Execute(); err != nil {
		err = normalizeError(err)
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(errors.ExitCode(err))
	}
}

// normalizeError turns cobra's own usage errors into CONFIG errors with a
// hint.
func normalizeError(err error) error {
	if !isUnknownCommandError(err) {
		return err
	}
	msg := err.Error()
	if name := extractUnknownCommand(err); name != "" {
		msg = fmt.Sprintf("Unknown command '%s'", name)
	}
	return errors.New(errors.ErrConfig, msg, "Run 'ptop --help' to see available commands and flags.")
}

// formatError renders err for the terminal.
func formatError(err error) string {
	err = normalizeError(err)

	var structured *errors.Error
	if stderrors.As(err, &structured) {
		return structured.Error()
	}
	return fmt.Sprintf("✗ %s\n", err.Error())
}

// isUnknownCommandError reports whether err is cobra's unknown command or
// flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown command") ||
		strings.Contains(msg, "unknown flag") ||
		strings.Contains(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's
// `unknown command "foo" for "ptop"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
