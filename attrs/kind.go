// Package attrs turns raw markup attributes into typed values.
package attrs

import "strconv"

// Kind identifies attribute variant.
type Kind int

const (
	KindID Kind = iota
	KindClass
	KindStyle
	KindTitle
	KindLang
	KindDir
	KindHidden
	KindTabIndex
	KindRole
	KindAccessKey
	KindDraggable
	KindContentEditable
	KindSpellCheck
	KindInputMode
	KindEnterKeyHint
	KindTranslate
	KindEnabled
	KindDisabled
	KindChecked
	KindSelected
	KindReadOnly
	KindRequired
	KindMultiple
	KindAutofocus
	KindHref
	KindSrc
	KindAlt
	KindName
	KindValue
	KindType
	KindPlaceholder
	KindMin
	KindMax
	KindStep
	KindWidth
	KindHeight
	KindRows
	KindCols
	KindSize
	KindMaxLength
	KindMinLength
	KindPattern
	KindAccept
	KindAcceptCharset
	KindAutoComplete
	KindAutoCapitalize
	KindFor
	KindAction
	KindMethod
	KindEnctype
	KindTarget
	KindRel
	KindDownload
	KindSrcSet
	KindSizes
	KindMedia
	KindLoading
	KindDecoding
	KindReferrerPolicy
	KindCrossOrigin
	KindAsync
	KindDefer
	KindCharset
	KindContent
	KindHTTPEquiv
	KindControls
	KindAutoplay
	KindLoop
	KindMuted
	KindPlaysInline
	KindPoster
	KindPreload

	// open ended, may repeat
	KindData
	KindAria
	KindCustom
)

type shape int

const (
	shapeText shape = iota
	shapeBool
	shapeClass
	shapeStyle
	shapeOptional
)

var kinds = [...]struct {
	name  string
	shape shape
}{
	KindID:              {"id", shapeText},
	KindClass:           {"class", shapeClass},
	KindStyle:           {"style", shapeStyle},
	KindTitle:           {"title", shapeText},
	KindLang:            {"lang", shapeText},
	KindDir:             {"dir", shapeText},
	KindHidden:          {"hidden", shapeBool},
	KindTabIndex:        {"tabindex", shapeText},
	KindRole:            {"role", shapeText},
	KindAccessKey:       {"accesskey", shapeText},
	KindDraggable:       {"draggable", shapeBool},
	KindContentEditable: {"contenteditable", shapeBool},
	KindSpellCheck:      {"spellcheck", shapeBool},
	KindInputMode:       {"inputmode", shapeText},
	KindEnterKeyHint:    {"enterkeyhint", shapeText},
	KindTranslate:       {"translate", shapeBool},
	KindEnabled:         {"enabled", shapeBool},
	KindDisabled:        {"disabled", shapeBool},
	KindChecked:         {"checked", shapeBool},
	KindSelected:        {"selected", shapeBool},
	KindReadOnly:        {"readonly", shapeBool},
	KindRequired:        {"required", shapeBool},
	KindMultiple:        {"multiple", shapeBool},
	KindAutofocus:       {"autofocus", shapeBool},
	KindHref:            {"href", shapeText},
	KindSrc:             {"src", shapeText},
	KindAlt:             {"alt", shapeText},
	KindName:            {"name", shapeText},
	KindValue:           {"value", shapeText},
	KindType:            {"type", shapeText},
	KindPlaceholder:     {"placeholder", shapeText},
	KindMin:             {"min", shapeText},
	KindMax:             {"max", shapeText},
	KindStep:            {"step", shapeText},
	KindWidth:           {"width", shapeText},
	KindHeight:          {"height", shapeText},
	KindRows:            {"rows", shapeText},
	KindCols:            {"cols", shapeText},
	KindSize:            {"size", shapeText},
	KindMaxLength:       {"maxlength", shapeText},
	KindMinLength:       {"minlength", shapeText},
	KindPattern:         {"pattern", shapeText},
	KindAccept:          {"accept", shapeText},
	KindAcceptCharset:   {"accept-charset", shapeText},
	KindAutoComplete:    {"autocomplete", shapeText},
	KindAutoCapitalize:  {"autocapitalize", shapeText},
	KindFor:             {"for", shapeText},
	KindAction:          {"action", shapeText},
	KindMethod:          {"method", shapeText},
	KindEnctype:         {"enctype", shapeText},
	KindTarget:          {"target", shapeText},
	KindRel:             {"rel", shapeText},
	KindDownload:        {"download", shapeOptional},
	KindSrcSet:          {"srcset", shapeText},
	KindSizes:           {"sizes", shapeText},
	KindMedia:           {"media", shapeText},
	KindLoading:         {"loading", shapeText},
	KindDecoding:        {"decoding", shapeText},
	KindReferrerPolicy:  {"referrerpolicy", shapeText},
	KindCrossOrigin:     {"crossorigin", shapeText},
	KindAsync:           {"async", shapeBool},
	KindDefer:           {"defer", shapeBool},
	KindCharset:         {"charset", shapeText},
	KindContent:         {"content", shapeText},
	KindHTTPEquiv:       {"http-equiv", shapeText},
	KindControls:        {"controls", shapeBool},
	KindAutoplay:        {"autoplay", shapeBool},
	KindLoop:            {"loop", shapeBool},
	KindMuted:           {"muted", shapeBool},
	KindPlaysInline:     {"playsinline", shapeBool},
	KindPoster:          {"poster", shapeText},
	KindPreload:         {"preload", shapeText},
	KindData:            {"data-*", shapeOptional},
	KindAria:            {"aria-*", shapeOptional},
	KindCustom:          {"*", shapeOptional},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, int(KindData))
	for k := range KindData {
		m[kinds[k].name] = k
	}
	return m
}()

// Lookup returns known attribute kind for lowercase name.
func Lookup(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// String returns canonical attribute name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// Multi reports whether attribute of this kind may appear more than once.
func (k Kind) Multi() bool {
	return k == KindData || k == KindAria || k == KindCustom
}

// IsBool reports whether attribute of this kind carries a flag.
func (k Kind) IsBool() bool {
	return k >= 0 && int(k) < len(kinds) && kinds[k].shape == shapeBool
}
