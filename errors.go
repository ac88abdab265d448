package obj

import (
	"errors"
	"fmt"

	"github.com/gogpu/obj/raw"
)

// Errors returned while parsing, re-exported from package raw so callers can
// match everything Load returns with one import.
var (
	ErrWrongNumberOfArguments = raw.ErrWrongNumberOfArguments
	ErrWrongTypeOfArguments   = raw.ErrWrongTypeOfArguments
	ErrUnexpectedStatement    = raw.ErrUnexpectedStatement
	ErrIndexOutOfRange        = raw.ErrIndexOutOfRange
	ErrUnimplemented          = raw.ErrUnimplemented
	ErrTooBigGroupNumber      = raw.ErrTooBigGroupNumber
	ErrBackslashAtEOF         = raw.ErrBackslashAtEOF
)

// Errors returned while building vertex and index buffers.
var (
	// ErrInsufficientData is returned when an element lacks an attribute the
	// requested vertex type needs, e.g. a face without normals built into
	// Vertex.
	ErrInsufficientData = errors.New("obj: insufficient data to build the vertex type")

	// ErrUntriangulatedModel is returned when a face does not have exactly
	// three vertices.
	ErrUntriangulatedModel = errors.New("obj: model is not triangulated")
)

// ParseError reports a statement that could not be parsed.
type ParseError = raw.ParseError

// BuildError reports an element that could not be converted into buffers.
type BuildError struct {
	// Element is "polygon", "line" or "point".
	Element string
	// Index is the position of the element in its raw.Document list.
	Index int
	// Err is ErrInsufficientData, ErrUntriangulatedModel or
	// ErrIndexOutOfRange.
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%v (%s %d)", e.Err, e.Element, e.Index)
}

func (e *BuildError) Unwrap() error { return e.Err }
