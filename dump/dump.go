// Package dump writes exported document trees in one of supported output
// formats.
package dump

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"bml/common"
	"bml/layout"
	"bml/markup"
	"bml/scene"
)

// Write encodes roots in requested format.
func Write(w io.Writer, format common.OutputFmt, roots []*markup.NodeTree, log *zap.Logger) error {
	switch format {
	case common.OutputFmtTree:
		return Tree(w, roots)
	case common.OutputFmtYaml:
		return Yaml(w, roots)
	case common.OutputFmtXml:
		return Xml(w, roots)
	case common.OutputFmtScene:
		world := scene.NewWorld(log)
		if _, err := world.Spawn(roots); err != nil {
			return err
		}
		return Scene(w, world)
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
}

func layoutItems(l layout.Node) []string {
	props := l.Properties()
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.Name+"="+p.Value)
	}
	return out
}

func typeName(nt markup.NodeType) string {
	if nt.IsCustom() {
		return "custom"
	}
	return nt.Tag.String()
}
