package css

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Unit is a length unit understood by the layout engine.
type Unit int

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
	UnitVw
	UnitVh
	UnitVMin
	UnitVMax
)

var unitNames = [...]string{"auto", "px", "%", "vw", "vh", "vmin", "vmax"}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// Val is a single length: auto or a number with unit.
type Val struct {
	Unit  Unit
	Value float32
}

// Auto is the "auto" length.
var Auto = Val{Unit: UnitAuto}

func Px(v float32) Val      { return Val{Unit: UnitPx, Value: v} }
func Percent(v float32) Val { return Val{Unit: UnitPercent, Value: v} }
func Vw(v float32) Val      { return Val{Unit: UnitVw, Value: v} }
func Vh(v float32) Val      { return Val{Unit: UnitVh, Value: v} }
func VMin(v float32) Val    { return Val{Unit: UnitVMin, Value: v} }
func VMax(v float32) Val    { return Val{Unit: UnitVMax, Value: v} }

func (v Val) String() string {
	if v.Unit == UnitAuto {
		return "auto"
	}
	return strconv.FormatFloat(float64(v.Value), 'f', -1, 32) + v.Unit.String()
}

// Rect holds four side values (margin, padding, border thickness).
type Rect struct {
	Left   Val
	Right  Val
	Top    Val
	Bottom Val
}

// RectAll returns rectangle with the same value on every side.
func RectAll(v Val) Rect {
	return Rect{Left: v, Right: v, Top: v, Bottom: v}
}

func (r Rect) String() string {
	return fmt.Sprintf("%s %s %s %s", r.Top, r.Right, r.Bottom, r.Left)
}

// Corners holds four corner radii.
type Corners struct {
	TopLeft     Val
	TopRight    Val
	BottomRight Val
	BottomLeft  Val
}

// CornersAll returns radii with the same value for every corner.
func CornersAll(v Val) Corners {
	return Corners{TopLeft: v, TopRight: v, BottomRight: v, BottomLeft: v}
}

func (c Corners) String() string {
	return fmt.Sprintf("%s %s %s %s", c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft)
}

// Display is the layout mode of a node.
type Display int

const (
	DisplayFlex Display = iota
	DisplayGrid
	DisplayBlock
	DisplayNone
)

var displayNames = [...]string{"flex", "grid", "block", "none"}

func (d Display) String() string {
	if d < 0 || int(d) >= len(displayNames) {
		return "Display(" + strconv.Itoa(int(d)) + ")"
	}
	return displayNames[d]
}

// AlignItems is cross axis alignment of children.
type AlignItems int

const (
	AlignItemsDefault AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

var alignItemsNames = [...]string{"default", "start", "end", "flex-start", "flex-end", "center", "baseline", "stretch"}

func (a AlignItems) String() string {
	if a < 0 || int(a) >= len(alignItemsNames) {
		return "AlignItems(" + strconv.Itoa(int(a)) + ")"
	}
	return alignItemsNames[a]
}

// JustifyContent is main axis distribution of children.
type JustifyContent int

const (
	JustifyContentDefault JustifyContent = iota
	JustifyContentStart
	JustifyContentEnd
	JustifyContentFlexStart
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentStretch
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
)

var justifyContentNames = [...]string{"default", "start", "end", "flex-start", "flex-end", "center", "stretch",
	"space-between", "space-around", "space-evenly"}

func (j JustifyContent) String() string {
	if j < 0 || int(j) >= len(justifyContentNames) {
		return "JustifyContent(" + strconv.Itoa(int(j)) + ")"
	}
	return justifyContentNames[j]
}

// Property identifies a supported style declaration.
type Property int

const (
	PropDisplay Property = iota
	PropWidth
	PropHeight
	PropMinWidth
	PropMaxWidth
	PropMinHeight
	PropMaxHeight
	PropLeft
	PropRight
	PropTop
	PropBottom
	PropMargin
	PropMarginLeft
	PropMarginRight
	PropMarginTop
	PropMarginBottom
	PropPadding
	PropPaddingLeft
	PropPaddingRight
	PropPaddingTop
	PropPaddingBottom
	PropBorder
	PropBorderLeft
	PropBorderRight
	PropBorderTop
	PropBorderBottom
	PropBorderRadius
	PropBackgroundColor
	PropAlignItems
	PropJustifyContent
	PropRowGap
	PropColumnGap
	PropGap
	PropFlexBasis
)

var propertyNames = [...]string{
	"display", "width", "height", "min-width", "max-width", "min-height", "max-height",
	"left", "right", "top", "bottom",
	"margin", "margin-left", "margin-right", "margin-top", "margin-bottom",
	"padding", "padding-left", "padding-right", "padding-top", "padding-bottom",
	"border", "border-left", "border-right", "border-top", "border-bottom", "border-radius",
	"background-color", "align-items", "justify-content",
	"row-gap", "column-gap", "gap", "flex-basis",
}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return "Property(" + strconv.Itoa(int(p)) + ")"
	}
	return propertyNames[p]
}

// Declaration is one parsed style declaration. Only the payload field
// matching Property is meaningful: Length for single lengths (including
// per-side borders and individual gaps), Rect for margin, padding and border,
// Radius for border-radius, Color, Display, AlignItems, JustifyContent, and
// Row/Column for gap.
type Declaration struct {
	Property       Property
	Length         Val
	Rect           Rect
	Radius         Corners
	Color          color.NRGBA
	Display        Display
	AlignItems     AlignItems
	JustifyContent JustifyContent
	Row            Val
	Column         Val
}

func (d Declaration) String() string {
	var v string
	switch d.Property {
	case PropDisplay:
		v = d.Display.String()
	case PropMargin, PropPadding, PropBorder:
		v = d.Rect.String()
	case PropBorderRadius:
		v = d.Radius.String()
	case PropBackgroundColor:
		v = fmt.Sprintf("#%02x%02x%02x%02x", d.Color.R, d.Color.G, d.Color.B, d.Color.A)
	case PropAlignItems:
		v = d.AlignItems.String()
	case PropJustifyContent:
		v = d.JustifyContent.String()
	case PropGap:
		v = d.Row.String() + " " + d.Column.String()
	default:
		v = d.Length.String()
	}
	return d.Property.String() + ": " + v
}

// UnsupportedStyle keeps a declaration which could not be applied.
// Property retains original casing.
type UnsupportedStyle struct {
	Property string
	Value    string
}

// StyleAttribute is the parsed form of an inline "style" attribute.
type StyleAttribute struct {
	Raw          string
	Declarations []Declaration
	Unsupported  []UnsupportedStyle
}

// Clone returns a copy which shares no memory with the source text.
func (s StyleAttribute) Clone() StyleAttribute {
	out := StyleAttribute{Raw: strings.Clone(s.Raw)}
	if s.Declarations != nil {
		out.Declarations = append([]Declaration(nil), s.Declarations...)
	}
	if s.Unsupported != nil {
		out.Unsupported = make([]UnsupportedStyle, len(s.Unsupported))
		for i, u := range s.Unsupported {
			out.Unsupported[i] = UnsupportedStyle{Property: strings.Clone(u.Property), Value: strings.Clone(u.Value)}
		}
	}
	return out
}

// String renders applied declarations in CSS syntax.
func (s StyleAttribute) String() string {
	parts := make([]string, 0, len(s.Declarations))
	for _, d := range s.Declarations {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "; ")
}
