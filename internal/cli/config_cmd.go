package cli

import (
	"fmt"

	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command, which prints the settings the
// dashboard would run with.
func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration ptop would run with, after merging defaults,
the config file, PTOP_* environment variables and command-line flags.

The output is valid input for --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			out, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if path, _ := config.Find(opts.configPath); path != "" {
				fmt.Fprintf(w, "# loaded from %s\n", path)
			}
			_, err = w.Write(out)
			return err
		},
	}
}
