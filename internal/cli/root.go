// Package cli wires the command line entry points of the service.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"marketing-ai-hub/backend/internal/config"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "marketing-ai-hub",
		Short:         "Marketing AI Hub backend",
		Long:          `Marketing AI Hub turns marketing briefs into prompts for a hosted language model and serves the results as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", config.DefaultPath, "Path to the YAML config file")

	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}
