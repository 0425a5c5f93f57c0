package loader

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

// Extensions lists recognized markup file extensions.
var Extensions = []string{".bevyml", ".html", ".htm"}

var markupType = filetype.NewType("bevyml", "text/html")

func init() {
	filetype.AddMatcher(markupType, looksLikeMarkup)
}

// looksLikeMarkup expects UTF-8 input with BOM already removed.
func looksLikeMarkup(buf []byte) bool {
	buf = bytes.TrimLeft(buf, " \t\r\n\f")
	if len(buf) < 2 || buf[0] != '<' {
		return false
	}
	c := buf[1]
	return c == '!' || c == '?' || c == '/' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

// detectUTF checks for unicode BOM. UTF-32 must be tested first since its
// little endian mark starts with UTF-16 one.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader returns reader producing UTF-8 without BOM for known unicode
// encodings and original reader otherwise.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	default:
		panic(fmt.Sprintf("unknown source encoding %d", enc))
	}
}

// HasMarkupExt reports whether name carries one of recognized extensions.
func HasMarkupExt(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// Detect reports whether header (first bytes of file called name) looks like
// markup. Binary content known to filetype is rejected.
func Detect(name string, header []byte) bool {
	if !HasMarkupExt(name) {
		return false
	}
	enc := detectUTF(header)
	if enc != encUnknown {
		decoded, err := io.ReadAll(selectReader(bytes.NewReader(header), enc))
		if err != nil {
			return false
		}
		header = decoded
	}
	kind, err := filetype.Match(header)
	if err != nil {
		return false
	}
	return kind == markupType
}

const headerSize = 512

func readHeader(r io.Reader) ([]byte, error) {
	header := make([]byte, headerSize)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("unable to read file header: %w", err)
	}
	return header[:n], nil
}

// IsMarkupFile reports whether file on disk is markup document.
func IsMarkupFile(fname string) (bool, error) {
	if !HasMarkupExt(fname) {
		return false, nil
	}
	f, err := os.Open(fname)
	if err != nil {
		return false, fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	header, err := readHeader(f)
	if err != nil {
		return false, err
	}
	return Detect(fname, header), nil
}

// IsMarkupInArchive reports whether archived file is markup document.
func IsMarkupInArchive(f *zip.File) (bool, error) {
	if !HasMarkupExt(f.Name) {
		return false, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, fmt.Errorf("unable to open file in archive: %w", err)
	}
	defer r.Close()

	header, err := readHeader(r)
	if err != nil {
		return false, err
	}
	return Detect(f.Name, header), nil
}
