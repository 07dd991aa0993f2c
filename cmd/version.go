package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags; it defaults to "dev" for
// local builds.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the daemon build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("murmur", Version)
	},
}
