// Package forest implements the unordered-rooted-tree enumeration core:
// the canonical Tree value type, the partition enumerator, the memoized
// recursive generator, the small-leaf specializer, and the parallel
// driver that fans generation out across workers. The package has no
// dependency on the CLI; cmd/vinci and internal/cli are one
// instantiation of its Sink contract.
package forest

import (
	"fmt"
	"slices"
	"strings"
)

// Tree is an immutable unordered rooted tree. It owns its children
// exclusively — no sharing, no cycles — so cloning a Tree is a slice
// copy, cheap because the trees this package builds are small.
type Tree struct {
	children []Tree
}

// Leaf returns the childless tree.
func Leaf() Tree {
	return Tree{}
}

// FromChildren builds a Tree from the given children and canonicalizes
// it. The slice is copied; callers may reuse their argument afterwards.
func FromChildren(children []Tree) Tree {
	t := Tree{children: append([]Tree(nil), children...)}
	t.canonicalize()
	return t
}

// canonicalize recursively canonicalizes every child, then sorts
// t.children by canonical string, ascending.
func (t *Tree) canonicalize() {
	for i := range t.children {
		t.children[i].canonicalize()
	}
	slices.SortFunc(t.children, func(a, b Tree) int {
		return strings.Compare(a.CanonicalString(), b.CanonicalString())
	})
}

// CanonicalString is the unique representative of t's isomorphism
// class, assuming t is already canonical:
//
//	tree     ::= "(" children ")"
//	children ::= ε | tree ("," tree)*
//
// A leaf serializes to "()".
func (t Tree) CanonicalString() string {
	if len(t.children) == 0 {
		return "()"
	}
	parts := make([]string, len(t.children))
	for i, c := range t.children {
		parts[i] = c.CanonicalString()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// String satisfies fmt.Stringer.
func (t Tree) String() string {
	return t.CanonicalString()
}

// NodeCount returns 1 plus the node counts of every child.
func (t Tree) NodeCount() int {
	n := 1
	for _, c := range t.children {
		n += c.NodeCount()
	}
	return n
}

// LeafCount returns 1 if t has no children, else the sum of its
// children's leaf counts.
func (t Tree) LeafCount() int {
	if len(t.children) == 0 {
		return 1
	}
	n := 0
	for _, c := range t.children {
		n += c.LeafCount()
	}
	return n
}

// IsLeaf reports whether t has no children.
func (t Tree) IsLeaf() bool {
	return len(t.children) == 0
}

// Children returns t's children in canonical order. The caller must
// not mutate the returned slice.
func (t Tree) Children() []Tree {
	return t.children
}

// Less reports whether a sorts before b in the total order induced by
// CanonicalString. Tree does not implement sort.Interface directly;
// callers reach for slices.SortFunc over CanonicalString, as the
// package itself does in canonicalize.
func Less(a, b Tree) bool {
	return a.CanonicalString() < b.CanonicalString()
}

// ParseCanonical parses a string produced by CanonicalString back into
// a Tree. It does not re-sort children, so a string already in
// canonical order round-trips to itself exactly.
func ParseCanonical(s string) (Tree, error) {
	t, rest, err := parseTree(s)
	if err != nil {
		return Tree{}, err
	}
	if rest != "" {
		return Tree{}, fmt.Errorf("forest: trailing input after tree: %q", rest)
	}
	return t, nil
}

func parseTree(s string) (Tree, string, error) {
	if !strings.HasPrefix(s, "(") {
		return Tree{}, "", fmt.Errorf("forest: expected '(' at %q", s)
	}
	s = s[1:]
	if strings.HasPrefix(s, ")") {
		return Tree{}, s[1:], nil
	}
	var children []Tree
	for {
		child, rest, err := parseTree(s)
		if err != nil {
			return Tree{}, "", err
		}
		children = append(children, child)
		s = rest
		switch {
		case strings.HasPrefix(s, ","):
			s = s[1:]
		case strings.HasPrefix(s, ")"):
			return Tree{children: children}, s[1:], nil
		default:
			return Tree{}, "", fmt.Errorf("forest: malformed tree string at %q", s)
		}
	}
}
