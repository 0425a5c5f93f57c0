// Package grammar produces concrete syntax tree for markup documents. Tree
// nodes carry kind, byte range and row/column span, text is always looked up
// in the source text by byte range.
package grammar

import (
	"errors"
	"unicode/utf8"
)

// Node kinds.
const (
	KindDocument           = "document"
	KindElement            = "element"
	KindSelfClosingElement = "self_closing_element"
	KindStartTag           = "start_tag"
	KindEndTag             = "end_tag"
	KindErroneousEndTag    = "erroneous_end_tag"
	KindTagName            = "tag_name"
	KindAttribute          = "attribute"
	KindAttributeName      = "attribute_name"
	KindAttributeValue     = "attribute_value"
	KindText               = "text"
	KindRawText            = "raw_text"
	KindEntity             = "entity"
	KindAmpersand          = "ampersand"
	KindComment            = "comment"
	KindDoctype            = "doctype"
)

// ErrInvalidUTF8 is returned when node text is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("node text is not valid utf-8")

// Point is zero based position in source, column is counted in bytes.
type Point struct {
	Row    int
	Column int
}

// Node is a syntax tree node.
type Node struct {
	kind     string
	start    int
	end      int
	startPos Point
	endPos   Point
	children []*Node
	// whitespace only text
	blank bool
}

func (n *Node) Kind() string            { return n.kind }
func (n *Node) StartByte() int          { return n.start }
func (n *Node) EndByte() int            { return n.end }
func (n *Node) StartPosition() Point    { return n.startPos }
func (n *Node) EndPosition() Point      { return n.endPos }
func (n *Node) ChildCount() int         { return len(n.children) }
func (n *Node) Child(i int) *Node       { return n.children[i] }
func (n *Node) Children() []*Node       { return n.children }
func (n *Node) IsKind(kind string) bool { return n.kind == kind }

// NamedChildCount returns number of children which carry content, whitespace
// only text between tags is not counted.
func (n *Node) NamedChildCount() int {
	count := 0
	for _, c := range n.children {
		if !c.blank {
			count++
		}
	}
	return count
}

// ChildByKind returns first direct child of requested kind or nil.
func (n *Node) ChildByKind(kind string) *Node {
	for _, c := range n.children {
		if c.kind == kind {
			return c
		}
	}
	return nil
}

// Text returns node source text.
func (n *Node) Text(source []byte) (string, error) {
	if n.start < 0 || n.end > len(source) || n.start > n.end {
		return "", errors.New("node range is outside of source")
	}
	b := source[n.start:n.end]
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// Tree is a parsed document.
type Tree struct {
	root *Node
}

// RootNode returns document node.
func (t *Tree) RootNode() *Node {
	return t.root
}
