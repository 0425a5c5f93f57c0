package loader

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

const sample = `<div class="menu"><p>Привет</p></div>`

func encode(t *testing.T, data string, enc transform.Transformer) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, enc)
	if _, err := w.Write([]byte(data)); err != nil {
		t.Fatalf("encode sample: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("finalize encoded sample: %v", err)
	}
	return buf.Bytes()
}

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{"UTF-8 BOM", []byte{0xEF, 0xBB, 0xBF, 0x00}, encUTF8},
		{"UTF-16 Big Endian BOM", []byte{0xFE, 0xFF, 0x00, 0x00}, encUTF16BigEndian},
		{"UTF-16 Little Endian BOM", []byte{0xFF, 0xFE, 0x01, 0x00}, encUTF16LittleEndian},
		{"UTF-32 Big Endian BOM", []byte{0x00, 0x00, 0xFE, 0xFF}, encUTF32BigEndian},
		{"UTF-32 Little Endian BOM", []byte{0xFF, 0xFE, 0x00, 0x00}, encUTF32LittleEndian},
		{"No BOM", []byte("<div>"), encUnknown},
		{"Short", []byte{0xEF}, encUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectReader_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid encoding, but didn't panic")
		}
	}()
	selectReader(bytes.NewReader([]byte("test")), srcEncoding(999))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		header []byte
		want   bool
	}{
		{"bevyml", "a.bevyml", []byte(sample), true},
		{"html uppercase ext", "A.HTML", []byte("\n  <!DOCTYPE html><html></html>"), true},
		{"htm", "a.htm", []byte("</p>"), true},
		{"wrong ext", "a.txt", []byte(sample), false},
		{"plain text", "a.html", []byte("hello <div>"), false},
		{"lone bracket", "a.html", []byte("< div"), false},
		{"empty", "a.html", nil, false},
		{"png", "a.html", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}, false},
		{"utf-8 bom", "a.html", append([]byte{0xEF, 0xBB, 0xBF}, sample...), true},
		{"utf-16le", "a.html", encode(t, sample, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()), true},
		{"utf-32be", "a.html", encode(t, sample, utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewEncoder()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.file, tt.header); got != tt.want {
				t.Errorf("Detect(%s) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	cp1251 := encode(t, `<meta charset="windows-1251"><p>Привет</p>`, charmap.Windows1251.NewEncoder())

	tests := []struct {
		name    string
		data    []byte
		want    string
		charset string
	}{
		{"plain utf-8", []byte(sample), sample, "utf-8"},
		{"ascii", []byte("<p>x</p>"), "<p>x</p>", "windows-1252"},
		{"utf-8 bom stripped", append([]byte{0xEF, 0xBB, 0xBF}, sample...), sample, "utf-8"},
		{"utf-16be", encode(t, sample, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()), sample, "utf-16be"},
		{"utf-16le", encode(t, sample, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()), sample, "utf-16le"},
		{"utf-32le", encode(t, sample, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder()), sample, "utf-32le"},
		{"meta charset", cp1251, `<meta charset="windows-1251"><p>Привет</p>`, "windows-1251"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cs, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
			if cs != tt.charset {
				t.Errorf("Decode() charset = %q, want %q", cs, tt.charset)
			}
		})
	}
}

func TestIsMarkupFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string][]byte{
		"ok.bevyml":  []byte(sample),
		"ok.txt":     []byte(sample),
		"bad.html":   []byte("not markup"),
		"bom.html":   append([]byte{0xEF, 0xBB, 0xBF}, sample...),
		"UPPER.HTML": []byte(sample),
	}
	want := map[string]bool{"ok.bevyml": true, "ok.txt": false, "bad.html": false, "bom.html": true, "UPPER.HTML": true}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatal(err)
		}
	}
	for name, w := range want {
		got, err := IsMarkupFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("IsMarkupFile(%s) error = %v", name, err)
		}
		if got != w {
			t.Errorf("IsMarkupFile(%s) = %v, want %v", name, got, w)
		}
	}
	if _, err := IsMarkupFile("/nonexistent/file.html"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestArchived(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "ui.zip")
	zf, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(zf)
	for _, e := range []struct {
		name string
		data []byte
	}{
		{"menu.bevyml", []byte(sample)},
		{"notes.txt", []byte(sample)},
		{"wide.html", encode(t, sample, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())},
	} {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Store})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(e.data); err != nil {
			t.Fatal(err)
		}
	}
	w.Close()
	zf.Close()

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	wantMarkup := []bool{true, false, true}
	for i, f := range r.File {
		got, err := IsMarkupInArchive(f)
		if err != nil {
			t.Fatalf("IsMarkupInArchive(%s) error = %v", f.Name, err)
		}
		if got != wantMarkup[i] {
			t.Errorf("IsMarkupInArchive(%s) = %v, want %v", f.Name, got, wantMarkup[i])
		}
	}

	doc, err := LoadArchived(r.File[2])
	if err != nil {
		t.Fatalf("LoadArchived() error = %v", err)
	}
	if doc.Name != "wide.html" || doc.Text != sample || doc.Charset != "utf-16le" {
		t.Errorf("LoadArchived() = %+v", doc)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.bevyml")
	if err := os.WriteFile(path, append([]byte{0xEF, 0xBB, 0xBF}, sample...), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Text != sample || doc.Name != path {
		t.Errorf("Load() = %+v", doc)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("Load() should fail on missing file")
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"screen10.bevyml", "screen2.bevyml", "sub/screen1.html", "readme.txt", "broken.html"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		data := []byte(sample)
		if name == "broken.html" {
			data = []byte("plain")
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := List(dir, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "screen2.bevyml"),
		filepath.Join(dir, "screen10.bevyml"),
		filepath.Join(dir, "sub", "screen1.html"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}

	if _, err := List(filepath.Join(dir, "missing"), nil); err == nil {
		t.Error("List() should fail on missing directory")
	}
}
