// Package markup flattens markup syntax tree into typed document arena and
// exports it into the recursive shape consumed by UI hosts.
package markup

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"bml/attrs"
	"bml/grammar"
)

// Parser turns markup text into document trees. It keeps no per document
// state and can be used from multiple goroutines.
type Parser struct {
	log   *zap.Logger
	attrs *attrs.Builder
	opts  Options
}

// NewParser returns parser with default options modified by opts.
func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{
		log:   log.Named("markup"),
		attrs: attrs.NewBuilder(log),
		opts:  DefaultOptions(),
	}
	for _, o := range opts {
		o(&p.opts)
	}
	return p
}

// Parse builds document tree. Only ErrNoParseTree and ErrNoRootElement are
// returned, everything else degrades with a warning.
func (p *Parser) Parse(text string) (*DocumentTree, error) {
	cst := grammar.Parse([]byte(text))
	if cst == nil {
		return nil, ErrNoParseTree
	}

	b := &builder{Parser: p, src: text, tree: &DocumentTree{}}
	for _, n := range cst.RootNode().Children() {
		if isElement(n) {
			b.tree.roots = append(b.tree.roots, b.element(n, NoNode))
		}
	}
	if len(b.tree.roots) == 0 {
		return nil, ErrNoRootElement
	}

	p.log.Debug("Document tree built", zap.Int("roots", len(b.tree.roots)), zap.Int("nodes", len(b.tree.nodes)))
	return b.tree, nil
}

// builder holds state of a single Parse call.
type builder struct {
	*Parser
	src     string
	tree    *DocumentTree
	pending []NodeID
}

func isElement(n *grammar.Node) bool {
	return n.IsKind(grammar.KindElement) || n.IsKind(grammar.KindSelfClosingElement)
}

func isText(n *grammar.Node) bool {
	return n.IsKind(grammar.KindText) || n.IsKind(grammar.KindEntity) || n.IsKind(grammar.KindAmpersand)
}

// text returns borrowed source text of a syntax node, empty when node is
// missing or its text is not valid UTF-8.
func (b *builder) text(n *grammar.Node) string {
	if n == nil {
		return ""
	}
	s := b.src[n.StartByte():n.EndByte()]
	if !utf8.ValidString(s) {
		return ""
	}
	return s
}

func (b *builder) span(n *grammar.Node) Span {
	return Span{
		StartByte: n.StartByte(),
		EndByte:   n.EndByte(),
		Start:     n.StartPosition(),
		End:       n.EndPosition(),
	}
}

// resolve returns syntax node describing the element. Element production
// without tags which wraps self closing element is replaced by the wrapped
// node.
func resolve(n *grammar.Node) (*grammar.Node, bool) {
	if n.IsKind(grammar.KindSelfClosingElement) {
		return n, true
	}
	if n.ChildByKind(grammar.KindStartTag) == nil && n.ChildByKind(grammar.KindEndTag) == nil {
		if sc := n.ChildByKind(grammar.KindSelfClosingElement); sc != nil {
			return sc, true
		}
	}
	return n, false
}

// tagHolder returns node whose children are tag name and attributes.
func tagHolder(n *grammar.Node) *grammar.Node {
	if n.IsKind(grammar.KindSelfClosingElement) {
		return n
	}
	return n.ChildByKind(grammar.KindStartTag)
}

func (b *builder) element(n *grammar.Node, parent NodeID) NodeID {
	info, selfClosing := resolve(n)

	var name string
	if holder := tagHolder(info); holder != nil {
		name = b.text(holder.ChildByKind(grammar.KindTagName))
	}
	nt := NodeType{Tag: TagCustom, Custom: "unknown"}
	if name != "" {
		nt = LookupNodeType(name)
	}
	if nt.IsCustom() && b.opts.WarnCustomTags {
		b.log.Warn("Unknown element", zap.String("name", name), zap.Int("offset", info.StartByte()))
	}

	id := NodeID(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, DocumentNode{
		Type:        nt,
		Name:        name,
		Attributes:  b.attributes(info),
		Span:        b.span(info),
		Preview:     b.preview(info, selfClosing),
		Source:      b.text(info),
		SelfClosing: selfClosing,
		Parent:      parent,
	})

	if selfClosing {
		return id
	}

	mark := len(b.pending)
	for _, c := range n.Children() {
		switch {
		case isElement(c):
			b.pending = append(b.pending, b.element(c, id))
		case isText(c):
			if s := b.text(c); strings.TrimSpace(s) != "" {
				b.pending = append(b.pending, b.textNode(c, s, id))
			}
		}
	}
	start := len(b.tree.children)
	b.tree.children = append(b.tree.children, b.pending[mark:]...)
	b.tree.nodes[id].children = childRange{start: start, end: len(b.tree.children)}
	b.pending = b.pending[:mark]
	return id
}

func (b *builder) textNode(n *grammar.Node, s string, parent NodeID) NodeID {
	id := NodeID(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, DocumentNode{
		Type:    TextType,
		Name:    "#text",
		Span:    b.span(n),
		Preview: s,
		Source:  s,
		Parent:  parent,
	})
	return id
}

func (b *builder) attributes(info *grammar.Node) attrs.Attributes {
	var set attrs.Attributes
	holder := tagHolder(info)
	if holder == nil {
		return set
	}
	for _, a := range holder.Children() {
		if !a.IsKind(grammar.KindAttribute) {
			continue
		}
		nameNode := a.ChildByKind(grammar.KindAttributeName)
		if nameNode == nil {
			continue
		}
		name := b.text(nameNode)
		if name == "" {
			continue
		}
		var value *string
		if v := a.ChildByKind(grammar.KindAttributeValue); v != nil {
			s := unquote(b.text(v))
			value = &s
		}
		b.attrs.Add(&set, name, value)
	}
	return set
}

func unquote(s string) string {
	if len(s) >= 2 {
		if first, last := s[0], s[len(s)-1]; first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// preview produces short diagnostic rendering of the node.
func (b *builder) preview(n *grammar.Node, selfClosing bool) string {
	if selfClosing || !n.IsKind(grammar.KindElement) {
		return b.text(n)
	}
	startTag, endTag := n.ChildByKind(grammar.KindStartTag), n.ChildByKind(grammar.KindEndTag)
	st, et := b.text(startTag), b.text(endTag)
	if st == "" || et == "" {
		return b.text(n)
	}

	if !hasNestedElements(n) {
		inner := strings.TrimSpace(b.innerText(n))
		if inner != "" && utf8.RuneCountInString(inner) <= b.opts.PreviewTextLimit {
			return b.text(n)
		}
	}
	if n.NamedChildCount() > b.opts.InnerContentChildren {
		return st + "..." + et
	}
	return st + et
}

// innerText returns element content between its tags, comments are not
// visible and are left out.
func (b *builder) innerText(n *grammar.Node) string {
	var sb strings.Builder
	for _, c := range n.Children() {
		switch c.Kind() {
		case grammar.KindStartTag, grammar.KindEndTag, grammar.KindComment:
			continue
		}
		sb.WriteString(b.text(c))
	}
	return sb.String()
}

func hasNestedElements(n *grammar.Node) bool {
	for _, c := range n.Children() {
		if isElement(c) {
			return true
		}
	}
	return false
}
