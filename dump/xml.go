package dump

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"bml/markup"
)

// Xml re-serializes exported trees as markup. Typed attributes are rendered
// back, attributes present without value get empty value.
func Xml(w io.Writer, roots []*markup.NodeTree) error {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	for _, r := range roots {
		xmlNode(&doc.Element, r)
	}
	doc.Indent(2)

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write xml: %w", err)
	}
	return nil
}

func xmlNode(parent *etree.Element, n *markup.NodeTree) {
	if n.Text != nil {
		parent.CreateText(*n.Text)
		return
	}
	el := parent.CreateElement(n.Name)
	for _, a := range n.Attributes.Items() {
		name, value, _ := a.Render()
		el.CreateAttr(name, value)
	}
	for _, c := range n.Children {
		xmlNode(el, c)
	}
}
