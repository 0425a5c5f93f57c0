package dump

import (
	"io"

	"bml/markup"
	"bml/utils/debug"
)

// Tree writes indented listing of nodes with their attributes, non default
// layout and text.
func Tree(w io.Writer, roots []*markup.NodeTree) error {
	tw := debug.NewTreeWriter()
	for _, r := range roots {
		treeNode(tw, r, 0)
	}
	_, err := io.WriteString(w, tw.String())
	return err
}

func treeNode(tw *debug.TreeWriter, n *markup.NodeTree, depth int) {
	if n.Text != nil {
		tw.TextBlock(depth, "#text", *n.Text)
		return
	}
	if n.Type.IsCustom() {
		tw.Line(depth, "%s (custom)", n.Name)
	} else {
		tw.Line(depth, "%s", n.Name)
	}
	for _, a := range n.Attributes.Items() {
		name, value, ok := a.Render()
		if !ok {
			tw.Line(depth+1, "@%s", name)
			continue
		}
		tw.TextBlock(depth+1, "@"+name, value)
	}
	tw.List(depth+1, "layout", layoutItems(n.Layout))
	for _, c := range n.Children {
		treeNode(tw, c, depth+1)
	}
}
