package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X marketing-ai-hub/backend/internal/cli.Version=...".
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of marketing-ai-hub",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "marketing-ai-hub version %s (built %s)\n", Version, BuildTime)
		},
	}
}
