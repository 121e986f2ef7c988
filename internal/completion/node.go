// Package completion implements the unified command-tree completion engine
// for the nbsh shell. It builds an in-memory tree from hand-written custom
// domains and API-generated domains, resolves aliases, merges extension
// commands into existing nodes, and renders bash, zsh and fish completion
// scripts from the same tree.
package completion

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Source tags where a node came from. It is only consulted for precedence
// decisions during registration, never for display.
type Source string

const (
	// SourceCustom marks nodes built from hand-authored domain definitions.
	SourceCustom Source = "custom"
	// SourceAPI marks nodes built from API-spec-derived domain records.
	SourceAPI Source = "api"
)

// Shell identifies a target shell for completion output.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Node is one position in the completion command tree: a domain, an action,
// a subcommand group, or a leaf command. It is pure data.
//
// Children preserve insertion order but every consumer re-sorts before
// display, so ordering is only required to be deterministic. A nil or empty
// child map both mean "no children". Hidden nodes are excluded from all
// suggestion queries and generated scripts but stay addressable by exact
// name, so their own children can still be walked by a caller that already
// knows the path. Aliases are resolved at the domain level only.
type Node struct {
	Name        string
	Description string
	Aliases     []string
	Children    *orderedmap.OrderedMap[string, *Node]
	Hidden      bool
	Source      Source
}

// NewNode creates a childless node.
func NewNode(name, description string, source Source) *Node {
	return &Node{
		Name:        name,
		Description: description,
		Source:      source,
	}
}

// AddChild inserts child under its own name, lazily creating the child map.
// A child with the same name is replaced.
func (n *Node) AddChild(child *Node) {
	if n.Children == nil {
		n.Children = orderedmap.New[string, *Node]()
	}
	n.Children.Set(child.Name, child)
}

// Child looks up a direct child by exact name.
func (n *Node) Child(name string) (*Node, bool) {
	if n.Children == nil {
		return nil, false
	}
	return n.Children.Get(name)
}

// HasChildren reports whether the node has at least one child. A present but
// empty child map counts as childless.
func (n *Node) HasChildren() bool {
	return n.Children != nil && n.Children.Len() > 0
}
