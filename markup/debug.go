package markup

import (
	"go.uber.org/zap"

	"bml/utils/debug"
)

func (n *DocumentNode) displayName() string {
	if n.Name == "" {
		return "<unknown>"
	}
	return n.Name
}

// String renders arena as indented list of nodes with their previews.
func (t *DocumentTree) String() string {
	tw := debug.NewTreeWriter()
	t.Walk(func(id NodeID, depth int) bool {
		n := t.Node(id)
		tw.Line(depth, "- node_type=%s element=%s simplified_content=%q", n.Type, n.displayName(), n.Preview)
		return true
	})
	return tw.String()
}

// Log writes the same information as String at debug level, one entry per
// node.
func (t *DocumentTree) Log(log *zap.Logger) {
	if log == nil || !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	t.Walk(func(id NodeID, depth int) bool {
		n := t.Node(id)
		log.Debug("Document node",
			zap.Int("depth", depth),
			zap.Int("id", int(id)),
			zap.Stringer("type", n.Type),
			zap.String("element", n.displayName()),
			zap.String("preview", n.Preview),
		)
		return true
	})
}
