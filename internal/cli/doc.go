// Package cli implements the ptop command-line interface.
//
// # Command Structure
//
// The root command "ptop" runs the dashboard; two small subcommands report
// on the binary and its settings:
//
//	ptop                - Live process and resource dashboard
//	ptop version        - Print version, commit and build info
//	ptop config         - Print the effective configuration as YAML
//
// # Flag Handling
//
// Persistent flags (--config, --interval, --layout, --proc) are defined on
// the root command and bound to viper keys, so every subcommand sees the same
// merged configuration. Precedence, highest first: flags, PTOP_* environment
// variables, the config file, built-in defaults.
//
// # Errors
//
// Commands return structured errors from internal/errors. Execute prints them
// to stderr and exits 1. The dashboard refuses to start when stdin or stdout
// is not a terminal, or when the proc root cannot be read.
package cli
