// Package layout describes UI box of an exported node: tag defaults
// overwritten by inline style declarations.
package layout

import (
	"fmt"
	"image/color"

	"bml/css"
)

// Node is UI box description of a single entity.
type Node struct {
	Display css.Display

	Width     css.Val
	Height    css.Val
	MinWidth  css.Val
	MinHeight css.Val
	MaxWidth  css.Val
	MaxHeight css.Val

	Left   css.Val
	Right  css.Val
	Top    css.Val
	Bottom css.Val

	Margin       css.Rect
	Padding      css.Rect
	Border       css.Rect
	BorderRadius css.Corners

	BackgroundColor color.NRGBA

	AlignItems     css.AlignItems
	JustifyContent css.JustifyContent
	RowGap         css.Val
	ColumnGap      css.Val
	FlexBasis      css.Val
}

// BaseFontPx is used to derive block margins of text elements.
const BaseFontPx float32 = 16

// Default returns layout of an element without any tag specific defaults.
func Default() Node {
	zero := css.Px(0)
	return Node{
		Display:      css.DisplayFlex,
		Width:        css.Auto,
		Height:       css.Auto,
		MinWidth:     css.Auto,
		MinHeight:    css.Auto,
		MaxWidth:     css.Auto,
		MaxHeight:    css.Auto,
		Left:         css.Auto,
		Right:        css.Auto,
		Top:          css.Auto,
		Bottom:       css.Auto,
		Margin:       css.RectAll(zero),
		Padding:      css.RectAll(zero),
		Border:       css.RectAll(zero),
		BorderRadius: css.CornersAll(zero),
		RowGap:       zero,
		ColumnGap:    zero,
		FlexBasis:    css.Auto,
	}
}

// Hidden returns default layout with display set to none.
func Hidden() Node {
	n := Default()
	n.Display = css.DisplayNone
	return n
}

// Block returns default layout with block display.
func Block() Node {
	n := Default()
	n.Display = css.DisplayBlock
	return n
}

// BlockWithMargin returns block layout with equal top and bottom margins.
func BlockWithMargin(px float32) Node {
	n := Block()
	n.Margin.Top, n.Margin.Bottom = css.Px(px), css.Px(px)
	return n
}

// Apply overwrites layout fields with style declarations in order, so the
// last declaration for a field wins.
func (n *Node) Apply(decls []css.Declaration) {
	for _, d := range decls {
		switch d.Property {
		case css.PropDisplay:
			n.Display = d.Display
		case css.PropWidth:
			n.Width = d.Length
		case css.PropHeight:
			n.Height = d.Length
		case css.PropMinWidth:
			n.MinWidth = d.Length
		case css.PropMaxWidth:
			n.MaxWidth = d.Length
		case css.PropMinHeight:
			n.MinHeight = d.Length
		case css.PropMaxHeight:
			n.MaxHeight = d.Length
		case css.PropLeft:
			n.Left = d.Length
		case css.PropRight:
			n.Right = d.Length
		case css.PropTop:
			n.Top = d.Length
		case css.PropBottom:
			n.Bottom = d.Length
		case css.PropMargin:
			n.Margin = d.Rect
		case css.PropMarginLeft:
			n.Margin.Left = d.Length
		case css.PropMarginRight:
			n.Margin.Right = d.Length
		case css.PropMarginTop:
			n.Margin.Top = d.Length
		case css.PropMarginBottom:
			n.Margin.Bottom = d.Length
		case css.PropPadding:
			n.Padding = d.Rect
		case css.PropPaddingLeft:
			n.Padding.Left = d.Length
		case css.PropPaddingRight:
			n.Padding.Right = d.Length
		case css.PropPaddingTop:
			n.Padding.Top = d.Length
		case css.PropPaddingBottom:
			n.Padding.Bottom = d.Length
		case css.PropBorder:
			n.Border = d.Rect
		case css.PropBorderLeft:
			n.Border.Left = d.Length
		case css.PropBorderRight:
			n.Border.Right = d.Length
		case css.PropBorderTop:
			n.Border.Top = d.Length
		case css.PropBorderBottom:
			n.Border.Bottom = d.Length
		case css.PropBorderRadius:
			n.BorderRadius = d.Radius
		case css.PropBackgroundColor:
			n.BackgroundColor = d.Color
		case css.PropAlignItems:
			n.AlignItems = d.AlignItems
		case css.PropJustifyContent:
			n.JustifyContent = d.JustifyContent
		case css.PropRowGap:
			n.RowGap = d.Length
		case css.PropColumnGap:
			n.ColumnGap = d.Length
		case css.PropGap:
			n.RowGap, n.ColumnGap = d.Row, d.Column
		case css.PropFlexBasis:
			n.FlexBasis = d.Length
		}
	}
}

// Property is a single rendered layout field.
type Property struct {
	Name  string
	Value string
}

// Properties lists fields which differ from Default in declaration order,
// used by debug dumps.
func (n Node) Properties() []Property {
	def := Default()
	var out []Property
	add := func(changed bool, name string, v fmt.Stringer) {
		if changed {
			out = append(out, Property{Name: name, Value: v.String()})
		}
	}
	add(n.Display != def.Display, "display", n.Display)
	add(n.Width != def.Width, "width", n.Width)
	add(n.Height != def.Height, "height", n.Height)
	add(n.MinWidth != def.MinWidth, "min-width", n.MinWidth)
	add(n.MinHeight != def.MinHeight, "min-height", n.MinHeight)
	add(n.MaxWidth != def.MaxWidth, "max-width", n.MaxWidth)
	add(n.MaxHeight != def.MaxHeight, "max-height", n.MaxHeight)
	add(n.Left != def.Left, "left", n.Left)
	add(n.Right != def.Right, "right", n.Right)
	add(n.Top != def.Top, "top", n.Top)
	add(n.Bottom != def.Bottom, "bottom", n.Bottom)
	add(n.Margin != def.Margin, "margin", n.Margin)
	add(n.Padding != def.Padding, "padding", n.Padding)
	add(n.Border != def.Border, "border", n.Border)
	add(n.BorderRadius != def.BorderRadius, "border-radius", n.BorderRadius)
	if n.BackgroundColor != def.BackgroundColor {
		c := n.BackgroundColor
		out = append(out, Property{Name: "background-color", Value: fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)})
	}
	add(n.AlignItems != def.AlignItems, "align-items", n.AlignItems)
	add(n.JustifyContent != def.JustifyContent, "justify-content", n.JustifyContent)
	add(n.RowGap != def.RowGap, "row-gap", n.RowGap)
	add(n.ColumnGap != def.ColumnGap, "column-gap", n.ColumnGap)
	add(n.FlexBasis != def.FlexBasis, "flex-basis", n.FlexBasis)
	return out
}
