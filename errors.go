package cmdline

import (
	"fmt"

	"github.com/agext/levenshtein"
)

// Kind identifies the category of a validation, parse, or query failure.
type Kind int

const (
	// KindInvalidDeclaration reports an Option or Parameter declared with an
	// empty or otherwise malformed name.
	KindInvalidDeclaration Kind = iota

	// KindDuplicateName reports a long name, short name, or parameter name
	// that collides with an already-validated declaration.
	KindDuplicateName

	// KindOrdering reports a required parameter declared after an optional
	// one, an option token found after the first positional token, or a
	// value-consuming short option bundled before other short names.
	KindOrdering

	// KindUnknownOption reports a long or short option token with no
	// matching declaration.
	KindUnknownOption

	// KindMissingValue reports a value-consuming option whose following
	// token is absent or itself looks like another option.
	KindMissingValue

	// KindMissingRequiredOption reports a required option with no captured
	// value after a full parse.
	KindMissingRequiredOption

	// KindMissingRequiredParameter reports a required parameter with no
	// positional value at its index after a full parse.
	KindMissingRequiredParameter

	// KindNameNotFound reports a query for a name that matches neither a
	// declared option nor a declared parameter.
	KindNameNotFound
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidDeclaration:
		return "invalid declaration"
	case KindDuplicateName:
		return "duplicate name"
	case KindOrdering:
		return "ordering violation"
	case KindUnknownOption:
		return "unknown option"
	case KindMissingValue:
		return "missing value"
	case KindMissingRequiredOption:
		return "missing required option"
	case KindMissingRequiredParameter:
		return "missing required parameter"
	case KindNameNotFound:
		return "name not found"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single failure type reported by this package. Every violation
// aborts the current operation immediately; nothing is retried internally.
// Callers that need to branch on the failure category should use errors.As
// and inspect Kind.
type Error struct {
	// Kind is the failure category.
	Kind Kind

	// Name is the offending option, parameter, or query name, when known.
	Name string

	// Message is the full human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, name, format string, args ...any) *Error {
	return &Error{Kind: kind, Name: name, Message: fmt.Sprintf(format, args...)}
}

// nameSuggestion returns the candidate closest to the given name, or an
// empty string when nothing is close enough to be a likely typo.
func nameSuggestion(given string, candidates []string) string {
	for _, candidate := range candidates {
		dist := levenshtein.Distance(given, candidate, nil)
		if dist < 3 {
			return candidate
		}
	}
	return ""
}
