package css

import (
	"image/color"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
)

var unitSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"vmin", UnitVMin},
	{"vmax", UnitVMax},
	{"vw", UnitVw},
	{"vh", UnitVh},
	{"px", UnitPx},
	{"%", UnitPercent},
}

// ParseVal parses single length value: "auto", number with one of px, %, vw,
// vh, vmin, vmax units or bare number which is treated as pixels.
func ParseVal(raw string) (Val, error) {
	s := strings.TrimSpace(raw)
	if len(s) == 0 {
		return Val{}, &ValueError{Kind: ErrEmpty, Input: raw}
	}
	if strings.EqualFold(s, "auto") {
		return Auto, nil
	}
	for _, u := range unitSuffixes {
		if num, ok := strings.CutSuffix(s, u.suffix); ok {
			n, err := parseNumber(num, s)
			if err != nil {
				return Val{}, err
			}
			return Val{Unit: u.unit, Value: n}, nil
		}
	}
	if n, err := parseNumber(s, s); err == nil {
		return Px(n), nil
	}
	// distinguish valid number with unknown unit from garbage
	if num, unit := splitUnit(s); len(unit) > 0 {
		if _, err := parseNumber(num, s); err == nil {
			return Val{}, &ValueError{Kind: ErrUnsupportedUnit, Input: s, Unit: unit}
		}
	}
	return Val{}, &ValueError{Kind: ErrInvalidNumber, Input: s}
}

// splitUnit cuts trailing run of letters and '%' off the value.
func splitUnit(s string) (num, unit string) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c != '%' && !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') {
			break
		}
		i--
	}
	return s[:i], s[i:]
}

func parseNumber(num, input string) (float32, error) {
	num = strings.TrimSpace(num)
	// "5." is a complete float
	digits := strings.TrimSuffix(num, ".")
	if n := parse.Number([]byte(digits)); n == 0 || n != len(digits) {
		return 0, &ValueError{Kind: ErrInvalidNumber, Input: input}
	}
	f, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return 0, &ValueError{Kind: ErrInvalidNumber, Input: input}
	}
	return float32(f), nil
}

func parseValList(raw string, max int, expected string) ([]Val, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, &ValueError{Kind: ErrEmpty, Input: raw}
	}
	if len(fields) > max {
		return nil, &ValueError{Kind: ErrWrongArity, Input: raw, Expected: expected, Found: len(fields)}
	}
	vals := make([]Val, 0, len(fields))
	for _, f := range fields {
		v, err := ParseVal(f)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// ParseRect parses margin/padding style shorthand (1 to 4 values in
// top, right, bottom, left order).
func ParseRect(raw string) (Rect, error) {
	vals, err := parseValList(raw, 4, "1-4")
	if err != nil {
		return Rect{}, err
	}
	switch len(vals) {
	case 1:
		return RectAll(vals[0]), nil
	case 2:
		return Rect{Left: vals[1], Right: vals[1], Top: vals[0], Bottom: vals[0]}, nil
	case 3:
		return Rect{Left: vals[1], Right: vals[1], Top: vals[0], Bottom: vals[2]}, nil
	default:
		return Rect{Left: vals[3], Right: vals[1], Top: vals[0], Bottom: vals[2]}, nil
	}
}

// ParseCorners parses border-radius value. Anything after '/' (elliptical
// radii) is ignored.
func ParseCorners(raw string) (Corners, error) {
	if before, _, found := strings.Cut(raw, "/"); found {
		raw = before
	}
	vals, err := parseValList(raw, 4, "1-4")
	if err != nil {
		return Corners{}, err
	}
	switch len(vals) {
	case 1:
		return CornersAll(vals[0]), nil
	case 2:
		return Corners{TopLeft: vals[0], TopRight: vals[1], BottomRight: vals[0], BottomLeft: vals[1]}, nil
	case 3:
		return Corners{TopLeft: vals[0], TopRight: vals[1], BottomRight: vals[2], BottomLeft: vals[1]}, nil
	default:
		return Corners{TopLeft: vals[0], TopRight: vals[1], BottomRight: vals[2], BottomLeft: vals[3]}, nil
	}
}

// ParseGap parses gap shorthand returning row and column gaps.
func ParseGap(raw string) (row, column Val, err error) {
	vals, err := parseValList(raw, 2, "1-2")
	if err != nil {
		return Val{}, Val{}, err
	}
	if len(vals) == 1 {
		return vals[0], vals[0], nil
	}
	return vals[0], vals[1], nil
}

// parseBorderWidth extracts border width from border shorthand. The first
// token which parses as length wins; extras reports presence of any other
// tokens (style, color, second length).
func parseBorderWidth(raw string) (width Val, extras bool, err error) {
	var (
		found   bool
		unitErr error
	)
	for _, f := range strings.Fields(raw) {
		v, perr := ParseVal(f)
		if perr == nil {
			if !found {
				width, found = v, true
			} else {
				extras = true
			}
			continue
		}
		extras = true
		if ve, ok := perr.(*ValueError); ok && ve.Kind == ErrUnsupportedUnit {
			unitErr = perr
		}
	}
	if !found {
		if unitErr != nil {
			return Val{}, false, unitErr
		}
		return Val{}, false, &ValueError{Kind: ErrInvalidNumber, Input: raw}
	}
	return width, extras, nil
}

// ParseDisplay maps display keywords onto layout modes.
func ParseDisplay(raw string) (Display, error) {
	s := strings.TrimSpace(raw)
	if len(s) == 0 {
		return 0, &ValueError{Kind: ErrEmpty, Input: raw}
	}
	switch strings.ToLower(s) {
	case "flex", "inline-flex":
		return DisplayFlex, nil
	case "grid", "inline-grid":
		return DisplayGrid, nil
	case "block":
		return DisplayBlock, nil
	case "none":
		return DisplayNone, nil
	}
	return 0, &ValueError{Kind: ErrInvalidKeyword, Input: s}
}

var alignItemsKeywords = map[string]AlignItems{
	"default":    AlignItemsDefault,
	"normal":     AlignItemsDefault,
	"auto":       AlignItemsDefault,
	"start":      AlignItemsStart,
	"end":        AlignItemsEnd,
	"flex-start": AlignItemsFlexStart,
	"flex-end":   AlignItemsFlexEnd,
	"center":     AlignItemsCenter,
	"baseline":   AlignItemsBaseline,
	"stretch":    AlignItemsStretch,
}

// ParseAlignItems maps align-items keywords.
func ParseAlignItems(raw string) (AlignItems, error) {
	s := strings.TrimSpace(raw)
	if len(s) == 0 {
		return 0, &ValueError{Kind: ErrEmpty, Input: raw}
	}
	if a, ok := alignItemsKeywords[strings.ToLower(s)]; ok {
		return a, nil
	}
	return 0, &ValueError{Kind: ErrInvalidKeyword, Input: s}
}

var justifyContentKeywords = map[string]JustifyContent{
	"default":       JustifyContentDefault,
	"normal":        JustifyContentDefault,
	"auto":          JustifyContentDefault,
	"start":         JustifyContentStart,
	"end":           JustifyContentEnd,
	"flex-start":    JustifyContentFlexStart,
	"flex-end":      JustifyContentFlexEnd,
	"center":        JustifyContentCenter,
	"stretch":       JustifyContentStretch,
	"space-between": JustifyContentSpaceBetween,
	"space-around":  JustifyContentSpaceAround,
	"space-evenly":  JustifyContentSpaceEvenly,
}

// ParseJustifyContent maps justify-content keywords.
func ParseJustifyContent(raw string) (JustifyContent, error) {
	s := strings.TrimSpace(raw)
	if len(s) == 0 {
		return 0, &ValueError{Kind: ErrEmpty, Input: raw}
	}
	if j, ok := justifyContentKeywords[strings.ToLower(s)]; ok {
		return j, nil
	}
	return 0, &ValueError{Kind: ErrInvalidKeyword, Input: s}
}

// Transparent is fully transparent black.
var Transparent = color.NRGBA{}

var namedColors = map[string]color.NRGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"maroon":  {0x80, 0x00, 0x00, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"fuchsia": {0xff, 0x00, 0xff, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
	"olive":   {0x80, 0x80, 0x00, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"teal":    {0x00, 0x80, 0x80, 0xff},
	"aqua":    {0x00, 0xff, 0xff, 0xff},
}

// ParseColor understands "transparent", #rgb, #rgba, #rrggbb, #rrggbbaa and
// sixteen basic color keywords.
func ParseColor(raw string) (color.NRGBA, error) {
	s := strings.TrimSpace(raw)
	if len(s) == 0 {
		return color.NRGBA{}, &ValueError{Kind: ErrEmpty, Input: raw}
	}
	lower := strings.ToLower(s)
	if lower == "transparent" {
		return Transparent, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if c, ok := parseHexColor(hex); ok {
			return c, nil
		}
		return color.NRGBA{}, &ValueError{Kind: ErrInvalidColor, Input: s}
	}
	if c, ok := namedColors[lower]; ok {
		return c, nil
	}
	return color.NRGBA{}, &ValueError{Kind: ErrInvalidColor, Input: s}
}

func parseHexColor(hex string) (color.NRGBA, bool) {
	var digits [8]byte
	if len(hex) > len(digits) {
		return color.NRGBA{}, false
	}
	for i := range len(hex) {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.NRGBA{}, false
		}
		digits[i] = d
	}
	switch len(hex) {
	case 3, 4:
		c := color.NRGBA{R: digits[0] * 0x11, G: digits[1] * 0x11, B: digits[2] * 0x11, A: 0xff}
		if len(hex) == 4 {
			c.A = digits[3] * 0x11
		}
		return c, true
	case 6, 8:
		c := color.NRGBA{R: digits[0]<<4 | digits[1], G: digits[2]<<4 | digits[3], B: digits[4]<<4 | digits[5], A: 0xff}
		if len(hex) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return c, true
	}
	return color.NRGBA{}, false
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
