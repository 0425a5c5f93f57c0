package css

import (
	"strings"

	"go.uber.org/zap"
)

// Parser parses inline style declarations into typed layout declarations.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new style parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

const important = "!important"

func stripImportant(value string) string {
	if len(value) >= len(important) && strings.EqualFold(value[len(value)-len(important):], important) {
		return strings.TrimRight(value[:len(value)-len(important)], " \t\n\r\f")
	}
	return value
}

// ParseStyle parses content of a "style" attribute. It never fails: anything
// it does not understand ends up in Unsupported and is logged.
func (p *Parser) ParseStyle(raw string) StyleAttribute {
	style := StyleAttribute{Raw: raw}

	for segment := range strings.SplitSeq(raw, ";") {
		decl := strings.TrimSpace(segment)
		if len(decl) == 0 {
			continue
		}
		name, value, found := strings.Cut(decl, ":")
		if !found {
			p.log.Warn("Style declaration missing ':'", zap.String("declaration", decl))
			style.Unsupported = append(style.Unsupported, UnsupportedStyle{Property: decl})
			continue
		}
		name = strings.TrimSpace(name)
		if len(name) == 0 {
			p.log.Warn("Style declaration missing property name", zap.String("declaration", decl))
			continue
		}
		value = stripImportant(strings.TrimSpace(value))
		if len(value) == 0 {
			p.log.Warn("Style declaration missing value", zap.String("property", name))
			style.Unsupported = append(style.Unsupported, UnsupportedStyle{Property: name})
			continue
		}
		p.apply(&style, name, value)
	}
	return style
}

var lengthProperties = map[string]Property{
	"width":          PropWidth,
	"height":         PropHeight,
	"min-width":      PropMinWidth,
	"max-width":      PropMaxWidth,
	"min-height":     PropMinHeight,
	"max-height":     PropMaxHeight,
	"left":           PropLeft,
	"right":          PropRight,
	"top":            PropTop,
	"bottom":         PropBottom,
	"margin-left":    PropMarginLeft,
	"margin-right":   PropMarginRight,
	"margin-top":     PropMarginTop,
	"margin-bottom":  PropMarginBottom,
	"padding-left":   PropPaddingLeft,
	"padding-right":  PropPaddingRight,
	"padding-top":    PropPaddingTop,
	"padding-bottom": PropPaddingBottom,
	"row-gap":        PropRowGap,
	"column-gap":     PropColumnGap,
	"flex-basis":     PropFlexBasis,

	"border-left-width":   PropBorderLeft,
	"border-right-width":  PropBorderRight,
	"border-top-width":    PropBorderTop,
	"border-bottom-width": PropBorderBottom,
}

var borderShorthands = map[string]Property{
	"border":        PropBorder,
	"border-left":   PropBorderLeft,
	"border-right":  PropBorderRight,
	"border-top":    PropBorderTop,
	"border-bottom": PropBorderBottom,
}

func (p *Parser) apply(style *StyleAttribute, name, value string) {
	lower := strings.ToLower(name)

	if prop, ok := lengthProperties[lower]; ok {
		v, err := ParseVal(value)
		if err != nil {
			p.unsupported(style, name, value, err)
			return
		}
		style.Declarations = append(style.Declarations, Declaration{Property: prop, Length: v})
		return
	}

	if prop, ok := borderShorthands[lower]; ok {
		width, extras, err := parseBorderWidth(value)
		if err != nil {
			p.unsupported(style, name, value, err)
			return
		}
		d := Declaration{Property: prop, Length: width}
		if prop == PropBorder {
			d = Declaration{Property: prop, Rect: RectAll(width)}
		}
		style.Declarations = append(style.Declarations, d)
		if extras {
			// width has been applied, the rest is kept for the record
			p.log.Warn("Unsupported extra tokens in border shorthand", zap.String("property", name), zap.String("value", value))
			style.Unsupported = append(style.Unsupported, UnsupportedStyle{Property: name, Value: value})
		}
		return
	}

	var (
		d   Declaration
		err error
	)
	switch lower {
	case "display":
		d.Property = PropDisplay
		d.Display, err = ParseDisplay(value)
	case "margin":
		d.Property = PropMargin
		d.Rect, err = ParseRect(value)
	case "padding":
		d.Property = PropPadding
		d.Rect, err = ParseRect(value)
	case "border-width":
		d.Property = PropBorder
		d.Rect, err = ParseRect(value)
	case "border-radius":
		d.Property = PropBorderRadius
		d.Radius, err = ParseCorners(value)
	case "background-color":
		d.Property = PropBackgroundColor
		d.Color, err = ParseColor(value)
	case "align-items":
		d.Property = PropAlignItems
		d.AlignItems, err = ParseAlignItems(value)
	case "justify-content":
		d.Property = PropJustifyContent
		d.JustifyContent, err = ParseJustifyContent(value)
	case "gap":
		d.Property = PropGap
		d.Row, d.Column, err = ParseGap(value)
	default:
		p.log.Warn("Unsupported style property", zap.String("property", name), zap.String("value", value))
		style.Unsupported = append(style.Unsupported, UnsupportedStyle{Property: name, Value: value})
		return
	}
	if err != nil {
		p.unsupported(style, name, value, err)
		return
	}
	style.Declarations = append(style.Declarations, d)
}

func (p *Parser) unsupported(style *StyleAttribute, name, value string, err error) {
	p.log.Warn("Unsupported style value", zap.String("property", name), zap.String("value", value), zap.Error(err))
	style.Unsupported = append(style.Unsupported, UnsupportedStyle{Property: name, Value: value})
}
