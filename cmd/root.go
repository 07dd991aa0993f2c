// Package cmd implements the daemon's minimal CLI front-end, mirroring
// the teacher's cmd/root.go structure: a root command holding global
// flags, with subcommands registered in init.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	socketPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "murmur",
	Short: "Murmur is a background daemon for AI-assisted terminal autocomplete and voice commands",
	Long: `Murmur holds daemon state for shell autocomplete and voice-to-command
translation: a JSON-RPC server over a Unix socket, a provider-routing
layer with failover, a TTL-bounded completion cache, speculative
prefetch, and a voice pipeline.

The shell integration and the stop/status/setup/doctor front-end are
external collaborators. This binary runs the daemon itself with
"murmur start", and an MCP stdio tool server that forwards to a
running daemon with "murmur mcp".`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default: XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "override daemon.socket_path from config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override daemon.log_level from config")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(versionCmd)
}
