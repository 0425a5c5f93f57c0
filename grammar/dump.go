package grammar

import (
	"bml/utils/debug"
)

// Dump renders syntax tree one node per line as "kind [start..end]: text".
func Dump(t *Tree, source []byte) string {
	tw := debug.NewTreeWriter()
	if t != nil {
		dumpNode(tw, t.root, source, 0)
	}
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, n *Node, source []byte, depth int) {
	text, err := n.Text(source)
	if err != nil {
		text = "<invalid utf8>"
	}
	tw.Line(depth, "%s [%d..%d]: %s", n.kind, n.start, n.end, text)
	for _, c := range n.children {
		dumpNode(tw, c, source, depth+1)
	}
}
