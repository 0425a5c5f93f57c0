// Package common holds enums shared between configuration, processing and
// command line.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// Specification of requested output type.
type OutputFmt int

const (
	// OutputFmtTree is an indented debug tree.
	OutputFmtTree OutputFmt = iota
	// OutputFmtYaml is an exported document tree in yaml.
	OutputFmtYaml
	// OutputFmtXml is canonical markup re-serialized from typed tree.
	OutputFmtXml
	// OutputFmtScene is an entity listing produced by reference host.
	OutputFmtScene
)

var ErrInvalidOutputFmt = errors.New("not a valid OutputFmt")

var outputFmtNames = []string{"tree", "yaml", "xml", "scene"}

// OutputFmtNames returns list of possible string values of OutputFmt.
func OutputFmtNames() []string {
	out := make([]string, len(outputFmtNames))
	copy(out, outputFmtNames)
	return out
}

func (o OutputFmt) String() string {
	if o.IsValid() {
		return outputFmtNames[o]
	}
	return fmt.Sprintf("OutputFmt(%d)", o)
}

func (o OutputFmt) IsValid() bool {
	return o >= OutputFmtTree && int(o) < len(outputFmtNames)
}

// ParseOutputFmt attempts to convert a string to OutputFmt, case insensitive.
func ParseOutputFmt(name string) (OutputFmt, error) {
	for i, n := range outputFmtNames {
		if strings.EqualFold(n, name) {
			return OutputFmt(i), nil
		}
	}
	return OutputFmt(0), fmt.Errorf("%s is %w", name, ErrInvalidOutputFmt)
}

func (o OutputFmt) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *OutputFmt) UnmarshalText(text []byte) error {
	v, err := ParseOutputFmt(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtTree:
		return ".txt"
	case OutputFmtYaml:
		return ".yaml"
	case OutputFmtXml:
		return ".xml"
	case OutputFmtScene:
		return ".scene.txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
