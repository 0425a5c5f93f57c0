package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// HeaderSize is enough bytes for any signature filetype knows.
const HeaderSize = 262

// IsZip reports whether header has zip signature.
func IsZip(header []byte) bool {
	return filetype.Is(header, "zip")
}

// IsArchiveFile reports whether file has .zip extension and zip content.
func IsArchiveFile(fname string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(fname), ".zip") {
		return false, nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return false, fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, HeaderSize)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("unable to read file header: %w", err)
	}
	return IsZip(header[:n]), nil
}
