package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDomainReplacesPreviousNode(t *testing.T) {
	r := NewRegistry()

	custom := FromCustomDomain(loginDomain())
	r.RegisterDomain(custom)
	r.RegisterDomain(FromAPIDomain(DomainInfo{Name: "login", Description: "generated"}))

	got, ok := r.Get("login")
	require.True(t, ok)
	assert.Equal(t, SourceAPI, got.Source, "later registration fully replaces the node")
}

func TestCustomPrecedenceViaHasCheck(t *testing.T) {
	r := NewRegistry()

	// The bootstrap sequence registers custom domains first and checks Has
	// before registering API domains.
	custom := FromCustomDomain(loginDomain())
	r.RegisterDomain(custom)
	if !r.Has("login") {
		r.RegisterDomain(FromAPIDomain(DomainInfo{Name: "login"}))
	}

	got, ok := r.Get("login")
	require.True(t, ok)
	assert.Same(t, custom, got)
	assert.Equal(t, SourceCustom, got.Source)
}

func TestAliasResolution(t *testing.T) {
	r := NewRegistry()
	node := FromAPIDomain(DomainInfo{Name: "http_loadbalancer", Aliases: []string{"hlb"}})
	r.RegisterDomain(node)

	assert.Equal(t, "http_loadbalancer", r.ResolveAlias("hlb"))
	assert.Equal(t, "http_loadbalancer", r.ResolveAlias("http_loadbalancer"))
	assert.Equal(t, "unknown", r.ResolveAlias("unknown"))

	byAlias, ok := r.Get("hlb")
	require.True(t, ok)
	byName, ok := r.Get("http_loadbalancer")
	require.True(t, ok)
	assert.Same(t, byName, byAlias)

	assert.Equal(t, r.Has("http_loadbalancer"), r.Has("hlb"))
}

func TestDanglingAliasResolvesToNoOpLookup(t *testing.T) {
	r := NewRegistry()

	// Aliases may be registered without a live target; lookups just miss.
	r.aliases.Set("gh", "ghost")
	assert.Equal(t, "ghost", r.ResolveAlias("gh"))
	assert.False(t, r.Has("gh"))
	_, ok := r.Get("gh")
	assert.False(t, ok)
}

func TestMergeChildren(t *testing.T) {
	r := NewRegistry()
	r.RegisterDomain(FromCustomDomain(loginDomain()))

	children := map[string]*Node{
		"token": NewNode("token", "Print an access token", SourceCustom),
	}
	r.MergeChildren("login", children)

	node, _ := r.Get("login")
	assert.Equal(t, []string{"profile", "show", "token"}, ChildNames(node))
}

func TestMergeChildrenUnknownDomainIsNoOp(t *testing.T) {
	r := NewRegistry()

	r.MergeChildren("missing", map[string]*Node{
		"x": NewNode("x", "", SourceCustom),
	})

	assert.False(t, r.Has("missing"), "extensions cannot create new domains")
	assert.Equal(t, 0, r.Len())
}

func TestMergeChildrenIdempotent(t *testing.T) {
	r := NewRegistry()
	r.RegisterDomain(FromCustomDomain(loginDomain()))

	children := map[string]*Node{
		"token": NewNode("token", "Print an access token", SourceCustom),
	}
	r.MergeChildren("login", children)
	first := ChildNames(mustGet(t, r, "login"))

	r.MergeChildren("login", children)
	second := ChildNames(mustGet(t, r, "login"))

	assert.Equal(t, first, second)
}

func TestMergeChildrenCreatesChildMapLazily(t *testing.T) {
	r := NewRegistry()
	r.RegisterDomain(NewNode("version", "Show version", SourceCustom))

	r.MergeChildren("version", map[string]*Node{
		"check": NewNode("check", "Check for updates", SourceCustom),
	})

	assert.Equal(t, []string{"check"}, ChildNames(mustGet(t, r, "version")))
}

func TestDomainSuggestions(t *testing.T) {
	r := NewRegistry()
	r.RegisterDomain(FromCustomDomain(loginDomain()))
	r.RegisterDomain(FromAPIDomain(DomainInfo{
		Name:        "load_balancer",
		Description: "Load balancing",
		Aliases:     []string{"lb"},
	}))
	hidden := NewNode("debug", "Internal diagnostics", SourceCustom)
	hidden.Hidden = true
	r.RegisterDomain(hidden)

	t.Run("empty prefix matches everything visible", func(t *testing.T) {
		got := r.DomainSuggestions("")
		texts := suggestionTexts(got)
		assert.Equal(t, []string{"lb", "load_balancer", "login"}, texts)
		for _, s := range got {
			assert.Equal(t, CategoryDomain, s.Category)
		}
	})

	t.Run("prefix filter is case-insensitive", func(t *testing.T) {
		got := r.DomainSuggestions("LO")
		assert.Equal(t, []string{"load_balancer", "login"}, suggestionTexts(got))
	})

	t.Run("aliases annotated with canonical domain", func(t *testing.T) {
		got := r.DomainSuggestions("lb")
		require.Len(t, got, 1)
		assert.Equal(t, "lb", got[0].Text)
		assert.Equal(t, "alias for load_balancer", got[0].Description)
	})

	t.Run("hidden domains never suggested", func(t *testing.T) {
		assert.Empty(t, r.DomainSuggestions("debug"))
	})
}

func TestChildSuggestionsCategorization(t *testing.T) {
	r := NewRegistry()
	r.RegisterDomain(FromCustomDomain(loginDomain()))

	got := r.ChildSuggestions("login", "")

	require.Len(t, got, 2)
	assert.Equal(t, "profile", got[0].Text)
	assert.Equal(t, CategorySubcommand, got[0].Category)
	assert.Equal(t, "show", got[1].Text)
	assert.Equal(t, CategoryAction, got[1].Category)
}

func TestChildSuggestionsThroughAlias(t *testing.T) {
	r := NewRegistry()
	r.RegisterDomain(FromAPIDomain(DomainInfo{Name: "dns_zone", Aliases: []string{"dns"}}))

	byAlias := r.ChildSuggestions("dns", "li")
	require.Len(t, byAlias, 1)
	assert.Equal(t, "list", byAlias[0].Text)
	assert.Equal(t, CategoryAction, byAlias[0].Category)
}

func TestAPIDomainActionRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.RegisterDomain(FromAPIDomain(DomainInfo{Name: "origin_pool"}))

	got := r.ChildSuggestions("origin_pool", "")

	texts := suggestionTexts(got)
	for _, action := range Actions {
		assert.Contains(t, texts, action)
	}
	for _, s := range got {
		assert.Equal(t, CategoryAction, s.Category)
	}
}

func TestNestedChildSuggestions(t *testing.T) {
	r := NewRegistry()
	r.RegisterDomain(FromCustomDomain(loginDomain()))

	got := r.NestedChildSuggestions("login", []string{"profile"}, "li")

	require.Len(t, got, 1)
	assert.Equal(t, "list", got[0].Text)
	assert.Equal(t, CategoryCommand, got[0].Category)
}

func TestNestedChildSuggestionsMissingSegment(t *testing.T) {
	r := NewRegistry()
	r.RegisterDomain(FromCustomDomain(loginDomain()))

	assert.Empty(t, r.NestedChildSuggestions("login", []string{"nope"}, ""))
	assert.Empty(t, r.NestedChildSuggestions("login", []string{"profile", "deeper"}, ""))
}

func TestUnknownDomainYieldsEmptySuggestions(t *testing.T) {
	r := NewRegistry()

	assert.Empty(t, r.DomainSuggestions("never"))
	assert.Empty(t, r.ChildSuggestions("never", ""))
	assert.Empty(t, r.NestedChildSuggestions("never", []string{"a"}, ""))
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	r.RegisterDomain(FromCustomDomain(loginDomain()))
	require.Equal(t, 1, r.Len())

	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.AliasNames())
}

func mustGet(t *testing.T, r *Registry, name string) *Node {
	t.Helper()
	node, ok := r.Get(name)
	require.True(t, ok)
	return node
}

func suggestionTexts(suggestions []Suggestion) []string {
	texts := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		texts = append(texts, s.Text)
	}
	return texts
}
