package completion

import (
	"fmt"
	"strings"
)

// ZshGenerator emits a _describe-based completion function with annotated
// 'name:description' items.
type ZshGenerator struct{}

func (ZshGenerator) Generate(programName string, reg *Registry) string {
	var script strings.Builder

	fmt.Fprintf(&script, `#compdef %[1]s
# zsh completion for %[1]s

_%[1]s() {
    local -a domains
    domains=(
`, programName)
	for _, item := range zshDomainItems(reg) {
		fmt.Fprintf(&script, "        %s\n", item)
	}
	script.WriteString(`    )

    if (( CURRENT == 2 )); then
        _describe -t domains 'domain' domains
        return
    fi

    case "${words[2]}" in`)

	for _, domain := range visibleDomains(reg) {
		if !domain.HasChildren() {
			continue
		}
		fmt.Fprintf(&script, `
        %s)`, domainPattern(domain))
		writeZshChildLevel(&script, domain)
		script.WriteString(`
            ;;`)
	}

	fmt.Fprintf(&script, `
    esac
}

_%[1]s "$@"
`, programName)

	return script.String()
}

// writeZshChildLevel emits the second completion level for a domain and,
// where the domain has subcommand groups, the third.
func writeZshChildLevel(script *strings.Builder, domain *Node) {
	script.WriteString(`
            if (( CURRENT == 3 )); then
                local -a cmds
                cmds=(
`)
	for _, item := range ChildCompletions(domain, ShellZsh) {
		fmt.Fprintf(script, "                    %s\n", item)
	}
	script.WriteString(`                )
                _describe -t commands 'command' cmds
                return
            fi`)

	if !HasNestedChildren(domain) {
		return
	}
	script.WriteString(`
            case "${words[3]}" in`)
	for _, childName := range ChildNames(domain) {
		child, _ := domain.Child(childName)
		if !child.HasChildren() {
			continue
		}
		fmt.Fprintf(script, `
                %s)
                    local -a subcmds
                    subcmds=(
`, childName)
		for _, item := range ChildCompletions(child, ShellZsh) {
			fmt.Fprintf(script, "                        %s\n", item)
		}
		script.WriteString(`                    )
                    _describe -t commands 'command' subcmds
                    ;;`)
	}
	script.WriteString(`
            esac`)
}

// zshDomainItems renders the sorted first-level item list: every visible
// domain plus every alias, annotated with its canonical domain.
func zshDomainItems(reg *Registry) []string {
	items := make([]string, 0)
	for _, domain := range visibleDomains(reg) {
		items = append(items, FormatCompletionItem(ShellZsh, domain.Name, domain.Description))
	}
	for _, pair := range visibleAliases(reg) {
		items = append(items, FormatCompletionItem(ShellZsh, pair[0], "alias for "+pair[1]))
	}
	return sortedUnique(items)
}
