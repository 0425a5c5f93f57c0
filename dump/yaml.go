package dump

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"bml/markup"
)

type yamlNode struct {
	Name       string      `yaml:"name"`
	Type       string      `yaml:"type"`
	Attributes *yaml.Node  `yaml:"attributes,omitempty"`
	Text       *string     `yaml:"text,omitempty"`
	Layout     *yaml.Node  `yaml:"layout,omitempty"`
	Children   []*yamlNode `yaml:"children,omitempty"`
}

// Yaml writes roots as yaml sequence. Attribute and layout order is
// preserved, attributes without value are written as null.
func Yaml(w io.Writer, roots []*markup.NodeTree) error {
	out := make([]*yamlNode, 0, len(roots))
	for _, r := range roots {
		out = append(out, toYaml(r))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("unable to encode yaml: %w", err)
	}
	return enc.Close()
}

func toYaml(n *markup.NodeTree) *yamlNode {
	y := &yamlNode{Name: n.Name, Type: typeName(n.Type), Text: n.Text}

	if n.Attributes.Len() > 0 {
		y.Attributes = &yaml.Node{Kind: yaml.MappingNode}
		for _, a := range n.Attributes.Items() {
			name, value, ok := a.Render()
			v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
			if !ok {
				v = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
			}
			y.Attributes.Content = append(y.Attributes.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, v)
		}
	}

	if props := n.Layout.Properties(); len(props) > 0 {
		y.Layout = &yaml.Node{Kind: yaml.MappingNode}
		for _, p := range props {
			y.Layout.Content = append(y.Layout.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: p.Name},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value})
		}
	}

	for _, c := range n.Children {
		y.Children = append(y.Children, toYaml(c))
	}
	return y
}
