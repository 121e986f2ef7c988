package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nimbusctl/nbsh/internal/completion"
	"github.com/nimbusctl/nbsh/internal/repl"
)

// newReplCommand creates a plain line-oriented loop over the suggestion
// provider. Each input line is treated as a partial command and answered
// with the matching completions; "exit" or EOF ends the session.
func newReplCommand(reg *completion.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Explore command completions interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), reg)
		},
	}
}

func runRepl(in io.Reader, out io.Writer, reg *completion.Registry) error {
	provider := repl.NewProvider(reg)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, `Type a partial command to see completions, "exit" to leave.`)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case "exit", "quit":
			return nil
		}

		suggestions := provider.Suggest(line)
		if len(suggestions) == 0 {
			fmt.Fprintln(out, "no completions")
		}
		for _, s := range suggestions {
			fmt.Fprintf(out, "  %-24s %-12s %s\n", s.Text, s.Category, s.Description)
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}
