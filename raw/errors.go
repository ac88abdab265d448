package raw

import (
	"errors"
	"fmt"

	"github.com/gogpu/obj/internal/lexer"
)

// Sentinel errors for raw package. Statement failures are reported as
// *ParseError values wrapping one of these; match them with errors.Is.
var (
	// ErrWrongNumberOfArguments is returned when a statement has too few or
	// too many arguments.
	ErrWrongNumberOfArguments = errors.New("obj: wrong number of arguments")

	// ErrWrongTypeOfArguments is returned when the vertex references of one
	// element statement do not share the same shape.
	ErrWrongTypeOfArguments = errors.New("obj: wrong type of arguments")

	// ErrUnexpectedStatement is returned for unknown keywords.
	ErrUnexpectedStatement = errors.New("obj: unexpected statement")

	// ErrIndexOutOfRange is returned for zero indices and indices outside
	// the referenced array.
	ErrIndexOutOfRange = errors.New("obj: index out of range")

	// ErrUnimplemented is returned for recognized statements describing
	// features that are not supported (free-form geometry, render
	// attributes, reflection maps, ...).
	ErrUnimplemented = errors.New("obj: statement not implemented")

	// ErrTooBigGroupNumber is returned when a smoothing or merging group id
	// is larger than the configured maximum.
	ErrTooBigGroupNumber = errors.New("obj: group number too big")

	// ErrBackslashAtEOF is returned when the source ends in the middle of a
	// backslash continuation.
	ErrBackslashAtEOF = lexer.ErrBackslashAtEOF
)

// ParseError reports a statement that could not be parsed.
type ParseError struct {
	// Line is the 1-based line the statement starts on.
	Line int
	// Keyword is the statement keyword, e.g. "f" or "Kd".
	Keyword string
	// Err is the underlying error: one of the package sentinels or a
	// *strconv.NumError for malformed numbers.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (line %d, statement %q)", e.Err, e.Line, e.Keyword)
}

func (e *ParseError) Unwrap() error { return e.Err }

// errorf wraps a sentinel with a detail message.
func errorf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
