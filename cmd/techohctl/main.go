// Command techohctl runs operational tasks against a Tech-OH deployment:
// schema migrations and development tokens.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"tech-oh/internal/logger"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "techohctl",
		Short:         "Operational tooling for the Tech-OH publishing service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newTokenCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
