package cli

import (
	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/spf13/cobra"
)

// AddConfigFlags registers --config, --interval, --layout and --proc as
// persistent flags and binds the last three to their config keys.
func AddConfigFlags(cmd *cobra.Command, opts *rootOptions) {
	def := config.DefaultConfig()
	flags := cmd.PersistentFlags()

	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/ptop/config.yaml)")
	flags.Duration("interval", def.Interval, "refresh interval (e.g., 200ms, 1s)")
	flags.String("layout", def.Layout, "page layout: paged or split")
	flags.String("proc", def.ProcRoot, "proc filesystem root")

	_ = opts.viper.BindPFlag("interval", flags.Lookup("interval"))
	_ = opts.viper.BindPFlag("layout", flags.Lookup("layout"))
	_ = opts.viper.BindPFlag("proc_root", flags.Lookup("proc"))
}
