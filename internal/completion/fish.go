package completion

import (
	"fmt"
	"strings"
)

// FishGenerator emits one complete(1) invocation per tree entry, using
// fish's condition helpers to scope each level.
type FishGenerator struct{}

func (FishGenerator) Generate(programName string, reg *Registry) string {
	var script strings.Builder

	fmt.Fprintf(&script, `# fish completion for %[1]s

complete -c %[1]s -f
`, programName)

	domains := visibleDomains(reg)

	script.WriteString("\n")
	for _, domain := range domains {
		fmt.Fprintf(&script, "complete -c %s -n '__fish_use_subcommand' %s\n",
			programName, FormatCompletionItem(ShellFish, domain.Name, domain.Description))
	}
	for _, pair := range visibleAliases(reg) {
		fmt.Fprintf(&script, "complete -c %s -n '__fish_use_subcommand' %s\n",
			programName, FormatCompletionItem(ShellFish, pair[0], "alias for "+pair[1]))
	}

	for _, domain := range domains {
		if !domain.HasChildren() {
			continue
		}
		script.WriteString("\n")
		firstWords := strings.Join(append([]string{domain.Name}, domain.Aliases...), " ")
		for _, childName := range ChildNames(domain) {
			child, _ := domain.Child(childName)
			fmt.Fprintf(&script, "complete -c %s -n '__fish_seen_subcommand_from %s' %s\n",
				programName, firstWords,
				FormatCompletionItem(ShellFish, child.Name, child.Description))
		}
		for _, childName := range ChildNames(domain) {
			child, _ := domain.Child(childName)
			if !child.HasChildren() {
				continue
			}
			for _, leafName := range ChildNames(child) {
				leaf, _ := child.Child(leafName)
				fmt.Fprintf(&script,
					"complete -c %s -n '__fish_seen_subcommand_from %s; and __fish_seen_subcommand_from %s' %s\n",
					programName, firstWords, child.Name,
					FormatCompletionItem(ShellFish, leaf.Name, leaf.Description))
			}
		}
	}

	return script.String()
}
