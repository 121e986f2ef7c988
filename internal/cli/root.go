// Package cli wires the nbsh command tree. Every command reads the
// completion registry that bootstrap populated; none of them mutate it.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nimbusctl/nbsh/internal/completion"
)

// NewRootCommand creates the root command over an already bootstrapped
// registry.
func NewRootCommand(reg *completion.Registry, logger *zap.Logger, buildVersion string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nbsh",
		Short: "nbsh - an interactive shell for the Nimbus control plane",
		Long: `nbsh is an interactive shell and CLI for the Nimbus control plane.

Commands are organized into domains: hand-written ones like login and
cloudstatus, and API-derived ones like load_balancer or dns_zone that
share a common action vocabulary (list, get, create, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newCompletionCommand(reg, logger),
		newDomainsCommand(reg),
		newReplCommand(reg),
		newVersionCommand(buildVersion),
	)

	return cmd
}

func newVersionCommand(buildVersion string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
		},
	}
}
