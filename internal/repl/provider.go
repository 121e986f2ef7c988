// Package repl contains the interactive consumers of the completion
// registry. The provider here turns a partial input line into suggestion
// lists; it never touches the tree directly.
package repl

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/nimbusctl/nbsh/internal/completion"
)

// Provider routes partial input to the registry's suggestion queries.
type Provider struct {
	registry *completion.Registry
}

// NewProvider creates a Provider reading from the given registry.
func NewProvider(registry *completion.Registry) *Provider {
	return &Provider{registry: registry}
}

// Suggest returns completion candidates for the current input line. The
// last whitespace-delimited word is treated as the partial being typed; a
// trailing space means a new word is starting. Earlier words form the tree
// path.
func (p *Provider) Suggest(line string) []completion.Suggestion {
	words := strings.Fields(line)
	partial := ""
	if len(words) > 0 && !strings.HasSuffix(line, " ") {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}

	switch len(words) {
	case 0:
		return p.domainSuggestions(partial)
	case 1:
		return p.registry.ChildSuggestions(words[0], partial)
	default:
		return p.registry.NestedChildSuggestions(words[0], words[1:], partial)
	}
}

// domainSuggestions prefers exact prefix matches and falls back to fuzzy
// matching so a typo like "lgn" still surfaces "login".
func (p *Provider) domainSuggestions(partial string) []completion.Suggestion {
	suggestions := p.registry.DomainSuggestions(partial)
	if len(suggestions) > 0 || partial == "" {
		return suggestions
	}

	candidates := p.registry.DomainSuggestions("")
	matches := fuzzy.FindFrom(partial, suggestionSource(candidates))
	return lo.Map(matches, func(m fuzzy.Match, _ int) completion.Suggestion {
		return candidates[m.Index]
	})
}

// suggestionSource adapts a suggestion slice to fuzzy.Source.
type suggestionSource []completion.Suggestion

func (s suggestionSource) String(i int) string { return s[i].Text }
func (s suggestionSource) Len() int            { return len(s) }
