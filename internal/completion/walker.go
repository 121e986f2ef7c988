package completion

import (
	"sort"

	"github.com/samber/lo"
)

// WalkEntry pairs a visited node with the path of names leading to it,
// starting at the walk root.
type WalkEntry struct {
	Node *Node
	Path []string
}

// Walk traverses the tree under root in pre-order and returns the visited
// nodes with their paths. The root itself is always the first entry, at
// depth 0 with its own name as path. maxDepth limits descent: 0 visits the
// root only, 1 adds direct children, and so on. Hidden children are pruned
// together with their entire subtrees. Children are visited in sorted name
// order so the result is deterministic.
func Walk(root *Node, maxDepth int) []WalkEntry {
	entries := make([]WalkEntry, 0, 1)
	walkInto(root, []string{root.Name}, maxDepth, &entries)
	return entries
}

func walkInto(node *Node, path []string, remaining int, entries *[]WalkEntry) {
	*entries = append(*entries, WalkEntry{Node: node, Path: path})
	if remaining <= 0 || !node.HasChildren() {
		return
	}
	for _, name := range ChildNames(node) {
		child, ok := node.Child(name)
		if !ok {
			continue
		}
		childPath := append(append([]string{}, path...), name)
		walkInto(child, childPath, remaining-1, entries)
	}
}

// LeafNodes returns the entries of a full-depth walk whose nodes have no
// children.
func LeafNodes(root *Node) []WalkEntry {
	return lo.Filter(Walk(root, TreeDepth(root)), func(e WalkEntry, _ int) bool {
		return !e.Node.HasChildren()
	})
}

// ChildCompletions formats every non-hidden direct child of node as a
// shell-specific completion item, sorted lexicographically. Every shell's
// item format is name-prefixed, so sorting the formatted strings preserves
// name order.
func ChildCompletions(node *Node, shell Shell) []string {
	items := lo.Map(visibleChildren(node), func(child *Node, _ int) string {
		return FormatCompletionItem(shell, child.Name, child.Description)
	})
	sort.Strings(items)
	return items
}

// ChildNames returns the non-hidden direct child names of node,
// lexicographically sorted.
func ChildNames(node *Node) []string {
	names := lo.Map(visibleChildren(node), func(child *Node, _ int) string {
		return child.Name
	})
	sort.Strings(names)
	return names
}

// HasNestedChildren reports whether at least one direct child of node has
// children of its own. Generators use it to decide whether they need to
// recurse one level deeper.
func HasNestedChildren(node *Node) bool {
	if !node.HasChildren() {
		return false
	}
	for pair := node.Children.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.HasChildren() {
			return true
		}
	}
	return false
}

// TreeDepth returns 0 for a childless node, otherwise one more than the
// deepest child subtree. Hidden children still count toward depth since
// they remain addressable by exact name.
func TreeDepth(node *Node) int {
	if !node.HasChildren() {
		return 0
	}
	deepest := 0
	for pair := node.Children.Oldest(); pair != nil; pair = pair.Next() {
		if d := TreeDepth(pair.Value); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

// visibleChildren collects the non-hidden direct children in insertion
// order. Callers sort as needed.
func visibleChildren(node *Node) []*Node {
	if !node.HasChildren() {
		return nil
	}
	children := make([]*Node, 0, node.Children.Len())
	for pair := node.Children.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Hidden {
			continue
		}
		children = append(children, pair.Value)
	}
	return children
}
