package grammar

import (
	"bytes"

	"golang.org/x/net/html"
)

// positionedTokenizer tracks byte offsets of html tokens. Raw token bytes
// partition the input, so cumulative length of Raw is the token start.
type positionedTokenizer struct {
	*html.Tokenizer
	offset int
}

func newPositionedTokenizer(src []byte) *positionedTokenizer {
	return &positionedTokenizer{Tokenizer: html.NewTokenizer(bytes.NewReader(src))}
}

// next advances tokenizer and returns token type with its [start, end) range.
func (pt *positionedTokenizer) next() (html.TokenType, int, int) {
	tt := pt.Next()
	start := pt.offset
	pt.offset += len(pt.Raw())
	return tt, start, pt.offset
}

// Content of these elements comes in a single text token. Only script and
// style content is opaque, title and textarea still hold text.
var rawTextElements = map[string]bool{
	"script":    true,
	"style":     true,
	"xmp":       true,
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
}

var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\n', '\r', '\t', '\f':
		return true
	}
	return false
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// scanTag splits tag token src[start:end] into tag name and attributes.
// Attribute value span includes quotes when present.
func scanTag(src []byte, start, end int, closing bool) []*Node {
	i := start + 1
	if closing && i < end && src[i] == '/' {
		i++
	}
	stop := end
	if stop > i && src[stop-1] == '>' {
		stop--
	}

	j := i
	for j < stop && !isSpace(src[j]) && src[j] != '/' && src[j] != '>' {
		j++
	}
	out := []*Node{{kind: KindTagName, start: i, end: j}}
	if closing {
		return out
	}

	for i = j; i < stop; {
		if c := src[i]; isSpace(c) || c == '/' {
			i++
			continue
		}
		ns := i
		for i++; i < stop && !isSpace(src[i]) && src[i] != '/' && src[i] != '='; i++ {
		}
		attr := &Node{kind: KindAttribute, start: ns, end: i}
		attr.children = append(attr.children, &Node{kind: KindAttributeName, start: ns, end: i})

		k := skipSpace(src, i, stop)
		if k < stop && src[k] == '=' {
			k = skipSpace(src, k+1, stop)
			if k < stop {
				vs := k
				if q := src[k]; q == '"' || q == '\'' {
					for k++; k < stop && src[k] != q; k++ {
					}
					if k < stop {
						k++
					}
				} else {
					for k < stop && !isSpace(src[k]) {
						k++
					}
				}
				attr.children = append(attr.children, &Node{kind: KindAttributeValue, start: vs, end: k})
				attr.end = k
			}
			i = k
		}
		out = append(out, attr)
	}
	return out
}

func isBlank(b []byte) bool {
	for _, c := range b {
		if !isSpace(c) {
			return false
		}
	}
	return true
}

func skipSpace(src []byte, i, stop int) int {
	for i < stop && isSpace(src[i]) {
		i++
	}
	return i
}

// scanText splits character data into text, entity and bare ampersand nodes.
func scanText(src []byte, start, end int) []*Node {
	var out []*Node
	flush := func(s, e int) {
		if e > s {
			out = append(out, &Node{kind: KindText, start: s, end: e, blank: isBlank(src[s:e])})
		}
	}
	last := start
	for i := start; i < end; i++ {
		if src[i] != '&' {
			continue
		}
		flush(last, i)
		if n := entityLen(src[i:end]); n > 0 {
			out = append(out, &Node{kind: KindEntity, start: i, end: i + n})
			i += n - 1
		} else {
			out = append(out, &Node{kind: KindAmpersand, start: i, end: i + 1})
		}
		last = i + 1
	}
	flush(last, end)
	return out
}

// entityLen returns length of character reference at the start of b: "&name;",
// "&#123;" or "&#x1F;", 0 if there is none.
func entityLen(b []byte) int {
	if len(b) < 3 || b[0] != '&' {
		return 0
	}
	i := 1
	switch {
	case b[i] == '#':
		i++
		digit := isDigit
		if i < len(b) && (b[i] == 'x' || b[i] == 'X') {
			digit = isHexDigit
			i++
		}
		s := i
		for i < len(b) && digit(b[i]) {
			i++
		}
		if i == s {
			return 0
		}
	case isAlpha(b[i]):
		for i < len(b) && (isAlpha(b[i]) || isDigit(b[i])) {
			i++
		}
	default:
		return 0
	}
	if i < len(b) && b[i] == ';' {
		return i + 1
	}
	return 0
}
