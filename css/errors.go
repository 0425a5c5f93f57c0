package css

import "fmt"

// ErrorKind classifies value parsing failures.
type ErrorKind int

const (
	ErrEmpty ErrorKind = iota
	ErrInvalidNumber
	ErrInvalidColor
	ErrInvalidKeyword
	ErrUnsupportedUnit
	ErrWrongArity
)

// ValueError describes why a style value could not be parsed.
type ValueError struct {
	Kind  ErrorKind
	Input string
	// Unit is set for ErrUnsupportedUnit.
	Unit string
	// Expected and Found are set for ErrWrongArity.
	Expected string
	Found    int
}

func (e *ValueError) Error() string {
	switch e.Kind {
	case ErrEmpty:
		return "empty value"
	case ErrInvalidNumber:
		return fmt.Sprintf("invalid number %q", e.Input)
	case ErrInvalidColor:
		return fmt.Sprintf("invalid color %q", e.Input)
	case ErrInvalidKeyword:
		return fmt.Sprintf("invalid keyword %q", e.Input)
	case ErrUnsupportedUnit:
		return fmt.Sprintf("unsupported unit %q in %q", e.Unit, e.Input)
	case ErrWrongArity:
		return fmt.Sprintf("expected %s values, found %d in %q", e.Expected, e.Found, e.Input)
	}
	return fmt.Sprintf("bad value %q", e.Input)
}
