package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nimbusctl/nbsh/internal/completion"
)

// newDomainsCommand creates the domains group with its list subcommand.
func newDomainsCommand(reg *completion.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "Inspect the registered command domains",
	}

	var showHidden bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List registered domains",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSOURCE\tALIASES\tDESCRIPTION")
			for _, domain := range reg.Domains() {
				if domain.Hidden && !showHidden {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					domain.Name,
					domain.Source,
					strings.Join(domain.Aliases, ","),
					domain.Description)
			}
			w.Flush()
		},
	}
	list.Flags().BoolVar(&showHidden, "show-hidden", false, "Include hidden domains")

	cmd.AddCommand(list)
	return cmd
}
