package attrs

import (
	"strings"

	"go.uber.org/zap"

	"bml/css"
)

// Builder creates typed attributes from raw name/value pairs.
type Builder struct {
	log    *zap.Logger
	styles *css.Parser
}

// NewBuilder returns attribute builder, style attributes are handed to
// css parser sharing the same logger.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		log:    log.Named("attrs"),
		styles: css.NewParser(log),
	}
}

// Build converts raw attribute. Nil value means attribute was specified
// without value.
func (b *Builder) Build(name string, value *string) Attribute {
	lower := asciiLower(name)

	if k, ok := Lookup(lower); ok {
		switch kinds[k].shape {
		case shapeBool:
			return Bool{K: k, Value: ParseBool(value)}
		case shapeClass:
			return ParseClass(deref(value))
		case shapeStyle:
			return Style{b.styles.ParseStyle(deref(value))}
		case shapeOptional:
			return Download{Value: value}
		default:
			return Text{K: k, Value: deref(value)}
		}
	}

	switch {
	case strings.HasPrefix(lower, "data-"):
		return Data{Key: name[5:], Value: value}
	case strings.HasPrefix(lower, "aria-"):
		return Aria{Name: name[5:], Value: value}
	}
	b.log.Warn("Unknown attribute", zap.String("name", name))
	return Custom{Name: name, Value: value}
}

// Add builds attribute and pushes it into the set.
func (b *Builder) Add(set *Attributes, name string, value *string) {
	set.Push(b.Build(name, value))
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
