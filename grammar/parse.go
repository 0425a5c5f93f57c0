package grammar

import (
	"bytes"
	"sort"

	"golang.org/x/net/html"
)

type openElement struct {
	node *Node
	name []byte
}

type builder struct {
	src   []byte
	root  *Node
	stack []openElement
}

// Parse builds syntax tree for markup source. It returns nil when source is
// empty. Parsing is error tolerant: unmatched end tags become
// erroneous_end_tag nodes and elements left open are closed at the end of
// input.
func Parse(src []byte) *Tree {
	if len(src) == 0 {
		return nil
	}

	b := &builder{
		src:  src,
		root: &Node{kind: KindDocument, start: 0, end: len(src)},
	}

	z := newPositionedTokenizer(src)
	rawText := false
	for {
		tt, start, end := z.next()
		if tt == html.ErrorToken {
			// tokenizer stops on incomplete tag at the end of input
			if start < len(src) {
				b.appendText(start, len(src), false)
			}
			break
		}
		wasRaw := rawText
		rawText = false

		switch tt {
		case html.TextToken:
			b.appendText(start, end, wasRaw)
		case html.StartTagToken:
			name := b.startTag(start, end)
			rawText = rawTextElements[string(bytes.ToLower(name))]
		case html.SelfClosingTagToken:
			// do not let <script/> swallow the rest of the document
			z.NextIsNotRawText()
			b.selfClosingTag(start, end)
		case html.EndTagToken:
			b.endTag(start, end)
		case html.CommentToken:
			b.append(&Node{kind: KindComment, start: start, end: end})
		case html.DoctypeToken:
			b.append(&Node{kind: KindDoctype, start: start, end: end})
		}
	}

	for len(b.stack) > 0 {
		b.pop(len(src))
	}

	setPositions(b.root, newLineIndex(src))
	return &Tree{root: b.root}
}

func (b *builder) parent() *Node {
	if len(b.stack) == 0 {
		return b.root
	}
	return b.stack[len(b.stack)-1].node
}

func (b *builder) append(n *Node) {
	p := b.parent()
	p.children = append(p.children, n)
}

func (b *builder) pop(end int) {
	top := b.stack[len(b.stack)-1]
	top.node.end = end
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *builder) appendText(start, end int, raw bool) {
	if raw {
		b.append(&Node{kind: KindRawText, start: start, end: end})
		return
	}
	for _, n := range scanText(b.src, start, end) {
		b.append(n)
	}
}

func (b *builder) startTag(start, end int) []byte {
	tag := &Node{kind: KindStartTag, start: start, end: end, children: scanTag(b.src, start, end, false)}
	name := b.src[tag.children[0].start:tag.children[0].end]

	el := &Node{kind: KindElement, start: start, end: end, children: []*Node{tag}}
	b.append(el)
	if !voidElements[string(bytes.ToLower(name))] {
		b.stack = append(b.stack, openElement{node: el, name: name})
	}
	return name
}

func (b *builder) selfClosingTag(start, end int) {
	sc := &Node{kind: KindSelfClosingElement, start: start, end: end, children: scanTag(b.src, start, end, false)}
	b.append(&Node{kind: KindElement, start: start, end: end, children: []*Node{sc}})
}

func (b *builder) endTag(start, end int) {
	parts := scanTag(b.src, start, end, true)
	name := b.src[parts[0].start:parts[0].end]

	for i := len(b.stack) - 1; i >= 0; i-- {
		if !bytes.EqualFold(b.stack[i].name, name) {
			continue
		}
		// elements opened after the matching one are closed implicitly
		for len(b.stack)-1 > i {
			b.pop(start)
		}
		el := b.stack[i].node
		el.children = append(el.children, &Node{kind: KindEndTag, start: start, end: end, children: parts})
		b.pop(end)
		return
	}
	b.append(&Node{kind: KindErroneousEndTag, start: start, end: end, children: parts})
}

// lineIndex holds offsets of line starts.
type lineIndex []int

func newLineIndex(src []byte) lineIndex {
	idx := lineIndex{0}
	for i, c := range src {
		if c == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

func (li lineIndex) point(offset int) Point {
	row := sort.Search(len(li), func(i int) bool { return li[i] > offset }) - 1
	return Point{Row: row, Column: offset - li[row]}
}

func setPositions(n *Node, li lineIndex) {
	n.startPos, n.endPos = li.point(n.start), li.point(n.end)
	for _, c := range n.children {
		setPositions(c, li)
	}
}
