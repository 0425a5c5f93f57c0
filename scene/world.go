// Package scene is an in memory UI host: it spawns one entity per exported
// document node.
package scene

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"bml/attrs"
	"bml/layout"
	"bml/markup"
)

// Entity is a spawned UI node.
type Entity struct {
	ID uuid.UUID
	// Label is unique human readable entity name.
	Label    string
	Type     markup.NodeType
	Layout   layout.Node
	Text     *string
	Parent   uuid.UUID
	Children []uuid.UUID
}

// IsRoot reports whether entity has no parent.
func (e *Entity) IsRoot() bool {
	return e.Parent == uuid.Nil
}

// World keeps spawned entities. It is not safe for concurrent use.
type World struct {
	log      *zap.Logger
	entities map[uuid.UUID]*Entity
	order    []uuid.UUID
	roots    []uuid.UUID
	// last suffix given per base label
	labels map[string]int
	used   map[string]bool
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		log:      log.Named("scene"),
		entities: make(map[uuid.UUID]*Entity),
		labels:   make(map[string]int),
		used:     make(map[string]bool),
	}
}

// Spawn creates entities for exported trees in document order and returns
// ids of created roots.
func (w *World) Spawn(roots []*markup.NodeTree) ([]uuid.UUID, error) {
	spawned := make(map[*markup.NodeTree]uuid.UUID)
	var created []uuid.UUID

	err := markup.Visit(roots, func(n, parent *markup.NodeTree) error {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("unable to allocate entity id: %w", err)
		}
		e := &Entity{
			ID:     id,
			Label:  w.label(n),
			Type:   n.Type,
			Layout: n.Layout,
			Text:   n.Text,
		}
		if parent != nil {
			pid := spawned[parent]
			e.Parent = pid
			p := w.entities[pid]
			p.Children = append(p.Children, id)
		} else {
			w.roots = append(w.roots, id)
			created = append(created, id)
		}
		spawned[n] = id
		w.entities[id] = e
		w.order = append(w.order, id)
		w.log.Debug("Entity spawned", zap.Stringer("id", id), zap.String("label", e.Label))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// label derives entity name from element name and its id or first class.
func (w *World) label(n *markup.NodeTree) string {
	base := n.Name
	if a, ok := n.Attributes.Get(attrs.KindID); ok {
		base += " " + a.(attrs.Text).Value
	} else if a, ok := n.Attributes.Get(attrs.KindClass); ok {
		if classes := a.(attrs.Class).Classes; len(classes) > 0 {
			base += " " + classes[0]
		}
	}
	label := slug.Make(base)
	if label == "" {
		label = "entity"
	}
	unique := label
	// slug of another base may already end with the same suffix
	for i := max(w.labels[label], 1) + 1; w.used[unique]; i++ {
		unique = label + "-" + strconv.Itoa(i)
		w.labels[label] = i
	}
	w.used[unique] = true
	return unique
}

// Entity returns entity by id.
func (w *World) Entity(id uuid.UUID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Roots returns ids of all spawned roots.
func (w *World) Roots() []uuid.UUID {
	return w.roots
}

// Len returns number of entities.
func (w *World) Len() int {
	return len(w.order)
}

// Entities returns entities in spawn order.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.entities[id])
	}
	return out
}
