package completion

import (
	"fmt"
	"strings"
)

// BashGenerator emits a compgen-based completion function. Bash output is
// name-only: the target completion format has no per-item help text.
type BashGenerator struct{}

func (BashGenerator) Generate(programName string, reg *Registry) string {
	var script strings.Builder

	fmt.Fprintf(&script, `# bash completion for %[1]s

_%[1]s_completion() {
    local cur
    cur="${COMP_WORDS[COMP_CWORD]}"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%[2]s" -- "$cur") )
        return
    fi
`, programName, strings.Join(topLevelWords(reg), " "))

	domains := visibleDomains(reg)

	script.WriteString(`
    if [[ ${COMP_CWORD} -eq 2 ]]; then
        case "${COMP_WORDS[1]}" in`)
	for _, domain := range domains {
		names := ChildNames(domain)
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(&script, `
            %s)
                COMPREPLY=( $(compgen -W "%s" -- "$cur") )
                return
                ;;`, domainPattern(domain), strings.Join(names, " "))
	}
	script.WriteString(`
        esac
    fi
`)

	script.WriteString(`
    if [[ ${COMP_CWORD} -eq 3 ]]; then
        case "${COMP_WORDS[1]} ${COMP_WORDS[2]}" in`)
	for _, domain := range domains {
		if !HasNestedChildren(domain) {
			continue
		}
		for _, childName := range ChildNames(domain) {
			child, _ := domain.Child(childName)
			names := ChildNames(child)
			if len(names) == 0 {
				continue
			}
			fmt.Fprintf(&script, `
            %s)
                COMPREPLY=( $(compgen -W "%s" -- "$cur") )
                return
                ;;`, groupPattern(domain, childName), strings.Join(names, " "))
		}
	}
	script.WriteString(`
        esac
    fi
}
`)

	fmt.Fprintf(&script, `
complete -F _%[1]s_completion %[1]s
`, programName)

	return script.String()
}

// topLevelWords collects the first-word vocabulary: domain names plus
// aliases, sorted.
func topLevelWords(reg *Registry) []string {
	words := make([]string, 0)
	for _, domain := range visibleDomains(reg) {
		words = append(words, domain.Name)
	}
	for _, pair := range visibleAliases(reg) {
		words = append(words, pair[0])
	}
	return sortedUnique(words)
}

// domainPattern builds a case pattern matching the domain name or any of
// its aliases.
func domainPattern(domain *Node) string {
	return strings.Join(append([]string{domain.Name}, domain.Aliases...), "|")
}

// groupPattern matches "<domain-or-alias> <group>" word pairs.
func groupPattern(domain *Node, group string) string {
	alternatives := make([]string, 0, 1+len(domain.Aliases))
	for _, first := range append([]string{domain.Name}, domain.Aliases...) {
		alternatives = append(alternatives, fmt.Sprintf("%q", first+" "+group))
	}
	return strings.Join(alternatives, "|")
}
