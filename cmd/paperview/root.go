// Package main provides the entry point for the paperview CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for paperview.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paperview",
		Short: "Static showcase page builder for the batch scheduling paper",
		Long: `paperview builds a styled single-page site for the paper "Adaptive Batch
Scheduling for Low-Latency Query Pipelines". The page content is fixed;
the tool renders it, exports it, and previews it while the styling
tokens are tuned.

By default, paperview build writes the page and its assets to dist/.
Use paperview serve to preview the page from memory with live rebuilds.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewBuildCmd())
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewViewCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
