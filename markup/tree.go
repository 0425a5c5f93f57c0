package markup

import (
	"fmt"

	"bml/attrs"
	"bml/grammar"
)

// NodeID addresses node in the document arena.
type NodeID int

// NoNode is the parent of root nodes.
const NoNode NodeID = -1

// Span is node location in source.
type Span struct {
	StartByte int
	EndByte   int
	Start     grammar.Point
	End       grammar.Point
}

type childRange struct {
	start, end int
}

// DocumentNode is an arena entry. Source and Preview reference source text
// until the tree is exported.
type DocumentNode struct {
	Type NodeType
	// Name is element name as written, "#text" for text runs and empty when
	// element name could not be extracted.
	Name        string
	Attributes  attrs.Attributes
	Span        Span
	Preview     string
	Source      string
	SelfClosing bool
	Parent      NodeID

	children childRange
	taken    bool
}

// DocumentTree is a flat arena of document nodes. Node ids are allocated in
// document order, child lists are ranges in a single shared index.
type DocumentTree struct {
	roots    []NodeID
	nodes    []DocumentNode
	children []NodeID
}

// Roots returns top level element ids in document order.
func (t *DocumentTree) Roots() []NodeID {
	return t.roots
}

// Len returns number of nodes in the arena.
func (t *DocumentTree) Len() int {
	return len(t.nodes)
}

// Node returns arena entry, it panics when id is out of range.
func (t *DocumentTree) Node(id NodeID) *DocumentNode {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("node id %d is out of range", id))
	}
	return &t.nodes[id]
}

// Children returns child ids of a node in document order.
func (t *DocumentTree) Children(id NodeID) []NodeID {
	r := t.Node(id).children
	return t.children[r.start:r.end]
}

// Parent returns parent id, false for roots.
func (t *DocumentTree) Parent(id NodeID) (NodeID, bool) {
	p := t.Node(id).Parent
	return p, p != NoNode
}

// Walk visits nodes depth first in document order. Returning false from fn
// skips node's children.
func (t *DocumentTree) Walk(fn func(id NodeID, depth int) bool) {
	var walk func(ids []NodeID, depth int)
	walk = func(ids []NodeID, depth int) {
		for _, id := range ids {
			if fn(id, depth) {
				walk(t.Children(id), depth+1)
			}
		}
	}
	walk(t.roots, 0)
}
