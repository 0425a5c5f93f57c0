package markup

import (
	"fmt"
	"strings"

	"bml/attrs"
	"bml/layout"
)

// NodeTree is exported node which owns its children. It does not reference
// source text.
type NodeTree struct {
	Name       string
	Type       NodeType
	Attributes attrs.Attributes
	// Text is set for text runs only, trimmed.
	Text     *string
	Layout   layout.Node
	Children []*NodeTree
}

// Export drains arena into recursive trees, one per root, in document order.
// Every node is taken exactly once, the tree must not be used afterwards.
func (t *DocumentTree) Export() []*NodeTree {
	out := make([]*NodeTree, 0, len(t.roots))
	for _, id := range t.roots {
		out = append(out, t.take(id))
	}
	return out
}

func (t *DocumentTree) take(id NodeID) *NodeTree {
	n := t.Node(id)
	if n.taken {
		panic(fmt.Sprintf("document node %d exported twice", id))
	}

	nt := &NodeTree{
		Name:       strings.Clone(n.Name),
		Type:       NodeType{Tag: n.Type.Tag, Custom: strings.Clone(n.Type.Custom)},
		Attributes: n.Attributes.Clone(),
		Layout:     n.Type.Layout(),
	}
	if nt.Name == "" {
		nt.Name = "unknown"
	}
	if n.Type.IsText() {
		text := strings.Clone(strings.TrimSpace(n.Source))
		nt.Text = &text
	}
	if a, ok := n.Attributes.Get(attrs.KindStyle); ok {
		nt.Layout.Apply(a.(attrs.Style).Declarations)
	}

	r := n.children
	*n = DocumentNode{taken: true, Parent: n.Parent}

	if r.end > r.start {
		nt.Children = make([]*NodeTree, 0, r.end-r.start)
		for _, c := range t.children[r.start:r.end] {
			nt.Children = append(nt.Children, t.take(c))
		}
	}
	return nt
}

// Visit walks exported trees depth first in document order handing each node
// with its parent (nil for roots) to fn. Walk stops at first error.
func Visit(roots []*NodeTree, fn func(n, parent *NodeTree) error) error {
	var visit func(n, parent *NodeTree) error
	visit = func(n, parent *NodeTree) error {
		if err := fn(n, parent); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := visit(c, n); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range roots {
		if err := visit(r, nil); err != nil {
			return err
		}
	}
	return nil
}
