package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"murmur/internal/config"
	"murmur/internal/mcpadapter"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP stdio tool server, forwarding calls to a running daemon",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	sp := socketPath
	if sp == "" {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		sp = cfg.Daemon.SocketPath
	}

	client, err := mcpadapter.Dial(sp)
	if err != nil {
		return fmt.Errorf("connect to daemon at %s: %w", sp, err)
	}
	defer client.Close()

	mcpadapter.ServerVersion = Version
	srv := mcpadapter.NewServer(client)
	return srv.Serve(context.Background(), os.Stdin, os.Stdout)
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
