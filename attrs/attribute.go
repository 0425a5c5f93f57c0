package attrs

import (
	"strconv"
	"strings"

	"bml/css"
)

// Attribute is a single typed attribute. The set of implementations is closed:
// Text, Bool, Class, Style, Download, Data, Aria and Custom.
type Attribute interface {
	Kind() Kind
	// Render returns attribute name and value suitable for serialization,
	// hasValue is false for attributes present without a value.
	Render() (name, value string, hasValue bool)

	clone() Attribute
}

// Text is a string valued attribute (id, href, src...).
type Text struct {
	K     Kind
	Value string
}

func (a Text) Kind() Kind { return a.K }

func (a Text) Render() (string, string, bool) { return a.K.String(), a.Value, true }

func (a Text) clone() Attribute { return Text{K: a.K, Value: strings.Clone(a.Value)} }

// Bool is a flag attribute (hidden, disabled...).
type Bool struct {
	K     Kind
	Value bool
}

func (a Bool) Kind() Kind { return a.K }

func (a Bool) Render() (string, string, bool) {
	return a.K.String(), strconv.FormatBool(a.Value), true
}

func (a Bool) clone() Attribute { return a }

// Class is tokenized "class" attribute.
type Class struct {
	Raw     string
	Classes []string
}

// ParseClass splits raw class list on white space.
func ParseClass(raw string) Class {
	return Class{Raw: raw, Classes: strings.Fields(raw)}
}

func (a Class) Kind() Kind { return KindClass }

func (a Class) Render() (string, string, bool) { return KindClass.String(), a.Raw, true }

// Has reports whether class list contains name.
func (a Class) Has(name string) bool {
	for _, c := range a.Classes {
		if c == name {
			return true
		}
	}
	return false
}

func (a Class) clone() Attribute {
	out := Class{Raw: strings.Clone(a.Raw)}
	if a.Classes != nil {
		out.Classes = make([]string, len(a.Classes))
		for i, c := range a.Classes {
			out.Classes[i] = strings.Clone(c)
		}
	}
	return out
}

// Style is parsed "style" attribute.
type Style struct {
	css.StyleAttribute
}

func (a Style) Kind() Kind { return KindStyle }

func (a Style) Render() (string, string, bool) { return KindStyle.String(), a.Raw, true }

func (a Style) clone() Attribute { return Style{a.StyleAttribute.Clone()} }

// Download may be present with or without value.
type Download struct {
	Value *string
}

func (a Download) Kind() Kind { return KindDownload }

func (a Download) Render() (string, string, bool) {
	return KindDownload.String(), deref(a.Value), a.Value != nil
}

func (a Download) clone() Attribute { return Download{Value: cloneOpt(a.Value)} }

// Data is "data-*" attribute, Key has prefix removed.
type Data struct {
	Key   string
	Value *string
}

func (a Data) Kind() Kind { return KindData }

func (a Data) Render() (string, string, bool) {
	return "data-" + a.Key, deref(a.Value), a.Value != nil
}

func (a Data) clone() Attribute {
	return Data{Key: strings.Clone(a.Key), Value: cloneOpt(a.Value)}
}

// Aria is "aria-*" attribute, Name has prefix removed.
type Aria struct {
	Name  string
	Value *string
}

func (a Aria) Kind() Kind { return KindAria }

func (a Aria) Render() (string, string, bool) {
	return "aria-" + a.Name, deref(a.Value), a.Value != nil
}

func (a Aria) clone() Attribute {
	return Aria{Name: strings.Clone(a.Name), Value: cloneOpt(a.Value)}
}

// Custom is any attribute which is not known.
type Custom struct {
	Name  string
	Value *string
}

func (a Custom) Kind() Kind { return KindCustom }

func (a Custom) Render() (string, string, bool) {
	return a.Name, deref(a.Value), a.Value != nil
}

func (a Custom) clone() Attribute {
	return Custom{Name: strings.Clone(a.Name), Value: cloneOpt(a.Value)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cloneOpt(s *string) *string {
	if s == nil {
		return nil
	}
	c := strings.Clone(*s)
	return &c
}

// ParseBool interprets flag attribute value. Absent or blank value means
// true, as does anything but "false", "0", "no" and "off".
func ParseBool(value *string) bool {
	if value == nil {
		return true
	}
	v := strings.TrimSpace(*value)
	if len(v) == 0 {
		return true
	}
	switch strings.ToLower(v) {
	case "false", "0", "no", "off":
		return false
	}
	return true
}
