package dump

import (
	"io"

	"bml/scene"
	"bml/utils/debug"
)

// Scene writes entity hierarchy of the world.
func Scene(w io.Writer, world *scene.World) error {
	tw := debug.NewTreeWriter()
	var walk func(e *scene.Entity, depth int)
	walk = func(e *scene.Entity, depth int) {
		tw.Line(depth, "%s [%s] %s", e.Label, e.ID, typeName(e.Type))
		if e.Text != nil {
			tw.TextBlock(depth+1, "text", *e.Text)
		}
		tw.List(depth+1, "layout", layoutItems(e.Layout))
		for _, id := range e.Children {
			if c, ok := world.Entity(id); ok {
				walk(c, depth+1)
			}
		}
	}
	for _, id := range world.Roots() {
		if e, ok := world.Entity(id); ok {
			walk(e, 0)
		}
	}
	_, err := io.WriteString(w, tw.String())
	return err
}
