package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nimbusctl/nbsh/internal/completion"
)

// newCompletionCommand creates the completion script command. The script
// is generated into memory first and only then written, so a generation
// failure exits non-zero without partial output on stdout.
func newCompletionCommand(reg *completion.Registry, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for your shell.

To load completions:

Bash:
  $ source <(nbsh completion bash)

  # To load for every session:
  $ nbsh completion bash > ~/.local/share/bash-completion/completions/nbsh

Zsh:
  $ nbsh completion zsh > "${fpath[1]}/_nbsh"

Fish:
  $ nbsh completion fish > ~/.config/fish/completions/nbsh.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := completion.Shell(args[0])
			script, err := completion.Script(shell, cmd.Root().Name(), reg)
			if err != nil {
				logger.Error("completion generation failed",
					zap.String("shell", args[0]), zap.Error(err))
				return fmt.Errorf("failed to generate completion script: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}
}
