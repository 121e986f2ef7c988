package completion

import (
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Category classifies a suggestion for the REPL's renderer.
type Category string

const (
	// CategoryDomain marks top-level domains and their aliases.
	CategoryDomain Category = "domain"
	// CategorySubcommand marks children that have children of their own.
	CategorySubcommand Category = "subcommand"
	// CategoryAction marks childless direct children of a domain.
	CategoryAction Category = "action"
	// CategoryCommand marks children found at arbitrary depth.
	CategoryCommand Category = "command"
)

// Suggestion is one completion candidate offered to the REPL.
type Suggestion struct {
	Text        string
	Description string
	Category    Category
}

// Registry is the merge point for all command sources. It owns the domain
// tree (domain name to node) and the alias table (alias to canonical
// domain name) for the process lifetime.
//
// The lifecycle is two-phase: all registration happens synchronously
// during bootstrap (custom domains first, then API domains the caller has
// checked with Has, then extension merges), after which the registry is
// read by suggestion queries and script generation. MergeChildren may
// still run after bootstrap for lazily loaded extensions; the registry is
// not safe for concurrent use and relies on the caller's single-threaded
// access.
//
// No lookup ever fails: unknown domains, paths and aliases yield empty
// results, since arbitrary partial input is normal traffic for completion.
type Registry struct {
	domains *orderedmap.OrderedMap[string, *Node]
	aliases *orderedmap.OrderedMap[string, string]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		domains: orderedmap.New[string, *Node](),
		aliases: orderedmap.New[string, string](),
	}
}

// RegisterDomain inserts node as a top-level domain, fully replacing any
// previous node with the same name, and records the node's aliases.
// Precedence between sources is the caller's job: the bootstrap sequence
// registers custom domains first and checks Has before registering an API
// domain with the same name.
func (r *Registry) RegisterDomain(node *Node) {
	r.domains.Set(node.Name, node)
	for _, alias := range node.Aliases {
		r.aliases.Set(alias, node.Name)
	}
}

// MergeChildren inserts the given children into an already registered
// domain, overwriting same-named children. Extensions cannot create new
// top-level domains, so an unknown domain name is a silent no-op.
func (r *Registry) MergeChildren(domainName string, children map[string]*Node) {
	node, ok := r.domains.Get(domainName)
	if !ok {
		return
	}
	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		node.AddChild(children[name])
	}
}

// ResolveAlias maps an alias to its canonical domain name. Canonical names
// and unknown strings pass through unchanged, so the function is
// idempotent.
func (r *Registry) ResolveAlias(nameOrAlias string) string {
	if canonical, ok := r.aliases.Get(nameOrAlias); ok {
		return canonical
	}
	return nameOrAlias
}

// Get returns the domain node for a canonical name or alias.
func (r *Registry) Get(nameOrAlias string) (*Node, bool) {
	return r.domains.Get(r.ResolveAlias(nameOrAlias))
}

// Has reports whether a canonical name or alias refers to a registered
// domain.
func (r *Registry) Has(nameOrAlias string) bool {
	_, ok := r.Get(nameOrAlias)
	return ok
}

// Len returns the number of registered domains.
func (r *Registry) Len() int {
	return r.domains.Len()
}

// Domains returns every registered domain node sorted by name, including
// hidden ones. Display-side callers filter on Hidden themselves.
func (r *Registry) Domains() []*Node {
	nodes := make([]*Node, 0, r.domains.Len())
	for pair := r.domains.Oldest(); pair != nil; pair = pair.Next() {
		nodes = append(nodes, pair.Value)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes
}

// AliasNames returns every registered alias sorted lexicographically.
func (r *Registry) AliasNames() []string {
	names := make([]string, 0, r.aliases.Len())
	for pair := r.aliases.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	sort.Strings(names)
	return names
}

// DomainSuggestions returns every non-hidden domain whose name starts with
// prefix (case-insensitive), plus every alias matching the prefix whose
// target domain is not hidden. Aliases are annotated with their canonical
// domain. An empty prefix matches everything. Results are sorted by text.
func (r *Registry) DomainSuggestions(prefix string) []Suggestion {
	lowered := strings.ToLower(prefix)
	suggestions := make([]Suggestion, 0)

	for pair := r.domains.Oldest(); pair != nil; pair = pair.Next() {
		node := pair.Value
		if node.Hidden || !strings.HasPrefix(strings.ToLower(node.Name), lowered) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Text:        node.Name,
			Description: node.Description,
			Category:    CategoryDomain,
		})
	}

	for pair := r.aliases.Oldest(); pair != nil; pair = pair.Next() {
		alias, canonical := pair.Key, pair.Value
		if !strings.HasPrefix(strings.ToLower(alias), lowered) {
			continue
		}
		target, ok := r.domains.Get(canonical)
		if !ok || target.Hidden {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Text:        alias,
			Description: "alias for " + canonical,
			Category:    CategoryDomain,
		})
	}

	sortSuggestions(suggestions)
	return suggestions
}

// ChildSuggestions returns the non-hidden direct children of a domain
// (resolved through the alias table) filtered by prefix. Children that
// themselves have children are tagged as subcommands, the rest as actions.
// An unknown domain yields an empty result.
func (r *Registry) ChildSuggestions(domainName, prefix string) []Suggestion {
	node, ok := r.Get(domainName)
	if !ok {
		return nil
	}
	return childSuggestionsAt(node, prefix, func(child *Node) Category {
		if child.HasChildren() {
			return CategorySubcommand
		}
		return CategoryAction
	})
}

// NestedChildSuggestions walks path one segment at a time below a domain
// and suggests the non-hidden children of the located node, tagged as
// commands. A missing domain or any missing path segment yields an empty
// result.
func (r *Registry) NestedChildSuggestions(domainName string, path []string, prefix string) []Suggestion {
	node, ok := r.Get(domainName)
	if !ok {
		return nil
	}
	for _, segment := range path {
		node, ok = node.Child(segment)
		if !ok {
			return nil
		}
	}
	return childSuggestionsAt(node, prefix, func(*Node) Category {
		return CategoryCommand
	})
}

// Clear removes all domains and aliases. Test use only; the steady state
// has no deletion.
func (r *Registry) Clear() {
	r.domains = orderedmap.New[string, *Node]()
	r.aliases = orderedmap.New[string, string]()
}

func childSuggestionsAt(node *Node, prefix string, categorize func(*Node) Category) []Suggestion {
	lowered := strings.ToLower(prefix)
	suggestions := make([]Suggestion, 0)
	for _, child := range visibleChildren(node) {
		if !strings.HasPrefix(strings.ToLower(child.Name), lowered) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Text:        child.Name,
			Description: child.Description,
			Category:    categorize(child),
		})
	}
	sortSuggestions(suggestions)
	return suggestions
}

func sortSuggestions(suggestions []Suggestion) {
	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Text < suggestions[j].Text
	})
}
