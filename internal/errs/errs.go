// Package errs defines the error taxonomy shared by the build and
// query paths.
package errs

import "errors"

// Kind classifies a docfind error per the taxonomy.
type Kind int

const (
	_ Kind = iota
	InputMalformed
	DuplicateHref
	CorruptIndex
	MissingSentinel
	ModuleInvalid
	IoFailure
)

func (k Kind) String() string {
	switch k {
	case InputMalformed:
		return "InputMalformed"
	case DuplicateHref:
		return "DuplicateHref"
	case CorruptIndex:
		return "CorruptIndex"
	case MissingSentinel:
		return "MissingSentinel"
	case ModuleInvalid:
		return "ModuleInvalid"
	case IoFailure:
		return "IoFailure"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying cause with a taxonomy Kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no wrapped cause.
func New(k Kind, msg string) error {
	return &Error{Kind: k, Msg: msg}
}

// Wrap builds an *Error around a cause.
func Wrap(k Kind, msg string, cause error) error {
	return &Error{Kind: k, Msg: msg, Err: cause}
}

// Is reports whether err carries the given Kind anywhere in its chain.
func Is(err error, k Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == k {
			return true
		}
		err = e.Err
	}
	return false
}
