package completion

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Generator renders a complete completion script for one shell from the
// registry's tree. Given the same registry state the output is
// deterministic: domains, children and aliases are all emitted in sorted
// order.
type Generator interface {
	Generate(programName string, reg *Registry) string
}

// GeneratorFor returns the generator for a shell, or false for a shell
// this build does not know.
func GeneratorFor(shell Shell) (Generator, bool) {
	switch shell {
	case ShellBash:
		return BashGenerator{}, true
	case ShellZsh:
		return ZshGenerator{}, true
	case ShellFish:
		return FishGenerator{}, true
	default:
		return nil, false
	}
}

// Script generates the completion script for the given shell. Unlike the
// escaping helpers, which pass unknown shells through, Script fails closed:
// an unrecognized shell is a caller bug and returns an error with no
// partial output.
func Script(shell Shell, programName string, reg *Registry) (string, error) {
	gen, ok := GeneratorFor(shell)
	if !ok {
		return "", fmt.Errorf("unsupported shell type: %q", shell)
	}
	return gen.Generate(programName, reg), nil
}

// visibleDomains returns the non-hidden domains sorted by name.
func visibleDomains(reg *Registry) []*Node {
	nodes := make([]*Node, 0, reg.Len())
	for _, node := range reg.Domains() {
		if node.Hidden {
			continue
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func sortedUnique(items []string) []string {
	sort.Strings(items)
	return lo.Uniq(items)
}

// visibleAliases returns sorted alias/canonical pairs whose target domain
// is not hidden.
func visibleAliases(reg *Registry) [][2]string {
	pairs := make([][2]string, 0)
	for _, alias := range reg.AliasNames() {
		canonical := reg.ResolveAlias(alias)
		if target, ok := reg.Get(canonical); ok && !target.Hidden {
			pairs = append(pairs, [2]string{alias, canonical})
		}
	}
	return pairs
}
