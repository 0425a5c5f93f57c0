package markup

import (
	"strconv"
	"strings"

	"bml/css"
	"bml/layout"
)

// Tag is a known element name. TagCustom and TagText are not element names,
// they classify unknown elements and text runs.
type Tag int

const (
	TagHtml Tag = iota
	TagHead
	TagBody
	TagTitle
	TagMeta
	TagLink
	TagStyle
	TagScript
	TagDiv
	TagSpan
	TagP
	TagA
	TagImg
	TagButton
	TagInput
	TagLabel
	TagTextarea
	TagSelect
	TagOption
	TagUl
	TagOl
	TagLi
	TagTable
	TagThead
	TagTbody
	TagTfoot
	TagTr
	TagTh
	TagTd
	TagHeader
	TagFooter
	TagNav
	TagMain
	TagSection
	TagArticle
	TagAside
	TagForm
	TagCanvas
	TagSvg
	TagBr
	TagHr
	TagH1
	TagH2
	TagH3
	TagH4
	TagH5
	TagH6
	TagCustom
	TagText
)

var tagNames = [...]string{
	"html", "head", "body", "title", "meta", "link", "style", "script",
	"div", "span", "p", "a", "img", "button", "input", "label", "textarea",
	"select", "option", "ul", "ol", "li", "table", "thead", "tbody", "tfoot",
	"tr", "th", "td", "header", "footer", "nav", "main", "section", "article",
	"aside", "form", "canvas", "svg", "br", "hr", "h1", "h2", "h3", "h4", "h5",
	"h6", "custom", "#text",
}

var tagsByName = func() map[string]Tag {
	m := make(map[string]Tag, TagCustom)
	for t := TagHtml; t < TagCustom; t++ {
		m[tagNames[t]] = t
	}
	return m
}()

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "Tag(" + strconv.Itoa(int(t)) + ")"
	}
	return tagNames[t]
}

// NodeType classifies document node. Custom holds element name as written
// when Tag is TagCustom.
type NodeType struct {
	Tag    Tag
	Custom string
}

// TextType classifies text runs.
var TextType = NodeType{Tag: TagText}

// LookupNodeType maps element name to node type, ASCII case insensitive.
// Unknown names produce TagCustom.
func LookupNodeType(name string) NodeType {
	if t, ok := tagsByName[strings.ToLower(name)]; ok {
		return NodeType{Tag: t}
	}
	return NodeType{Tag: TagCustom, Custom: name}
}

func (nt NodeType) IsCustom() bool { return nt.Tag == TagCustom }

func (nt NodeType) IsText() bool { return nt.Tag == TagText }

func (nt NodeType) String() string {
	if nt.Tag == TagCustom {
		return "custom(" + nt.Custom + ")"
	}
	return nt.Tag.String()
}

// Layout returns default UI box of the node type.
func (nt NodeType) Layout() layout.Node {
	switch nt.Tag {
	case TagHead, TagTitle, TagMeta, TagLink, TagStyle, TagScript:
		return layout.Hidden()
	case TagBody:
		n := layout.Block()
		n.Margin = css.RectAll(css.Px(8))
		n.Width, n.Height = css.Vw(100), css.Vh(100)
		return n
	case TagHtml, TagDiv, TagHeader, TagFooter, TagNav, TagMain, TagSection,
		TagArticle, TagAside, TagForm, TagLi,
		TagTable, TagThead, TagTbody, TagTfoot, TagTr, TagTh, TagTd:
		return layout.Block()
	case TagP, TagH3:
		return layout.BlockWithMargin(layout.BaseFontPx)
	case TagUl, TagOl:
		n := layout.BlockWithMargin(layout.BaseFontPx)
		n.Padding.Left = css.Px(40)
		return n
	case TagHr:
		n := layout.BlockWithMargin(layout.BaseFontPx * 0.5)
		n.Height, n.Width = css.Px(1), css.Percent(100)
		return n
	case TagH1:
		return layout.BlockWithMargin(layout.BaseFontPx * 0.67)
	case TagH2:
		return layout.BlockWithMargin(layout.BaseFontPx * 0.83)
	case TagH4:
		return layout.BlockWithMargin(layout.BaseFontPx * 1.33)
	case TagH5:
		return layout.BlockWithMargin(layout.BaseFontPx * 1.67)
	case TagH6:
		return layout.BlockWithMargin(layout.BaseFontPx * 2.33)
	default:
		return layout.Default()
	}
}
