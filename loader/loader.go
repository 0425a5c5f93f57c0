// Package loader reads markup documents from disk and archives and hands them
// to the parser as UTF-8 text.
package loader

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"

	"bml/archive"
)

// Document is markup source converted to UTF-8.
type Document struct {
	Name    string
	Charset string
	Text    string
}

// Decode converts data to UTF-8. Unicode BOM wins, then html charset sniffing
// (meta tags, utf-8 validity) is used.
func Decode(data []byte) (text, name string, err error) {
	if enc := detectUTF(data); enc != encUnknown {
		out, err := io.ReadAll(selectReader(bytes.NewReader(data), enc))
		if err != nil {
			return "", "", fmt.Errorf("unable to decode unicode source: %w", err)
		}
		return string(out), encodingNames[enc], nil
	}

	e, name, _ := charset.DetermineEncoding(data, "text/html")
	if name == "utf-8" {
		// replaces invalid sequences
		e = unicode.UTF8
	}
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("unable to decode %s source: %w", name, err)
	}
	return string(out), name, nil
}

var encodingNames = map[srcEncoding]string{
	encUTF8:              "utf-8",
	encUTF16BigEndian:    "utf-16be",
	encUTF16LittleEndian: "utf-16le",
	encUTF32BigEndian:    "utf-32be",
	encUTF32LittleEndian: "utf-32le",
}

// Load reads and decodes markup file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read markup: %w", err)
	}
	return newDocument(path, data)
}

// LoadArchived reads and decodes markup file stored in zip archive.
func LoadArchived(f *zip.File) (*Document, error) {
	data, err := archive.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return newDocument(f.Name, data)
}

func newDocument(name string, data []byte) (*Document, error) {
	text, cs, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Document{Name: name, Charset: cs, Text: text}, nil
}

// List returns markup files found under dir in natural order. Unreadable
// entries are logged and skipped.
func List(dir string, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ok, err := IsMarkupFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !ok {
			log.Debug("Skipping file, not recognized as markup", zap.String("file", path))
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(files, func(i, j int) bool {
		return natural.Less(files[i], files[j])
	})
	return files, nil
}
