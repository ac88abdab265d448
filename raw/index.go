package raw

import (
	"slices"
	"strconv"
	"strings"
)

// resolveIndex converts an index token into a 0-based index into an array
// of length n.
//
// With n = 5:
//
//	"1" .. "5"   -> 0 .. 4
//	"-5" .. "-1" -> 0 .. 4
//	"0", "6", "-6" -> ErrIndexOutOfRange
func resolveIndex(token string, n int) (int, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, err
	}
	length := int64(n)
	switch {
	case v < -length:
		return 0, errorf(ErrIndexOutOfRange, "index %d is below -%d", v, length)
	case v < 0:
		return int(length + v), nil
	case v == 0:
		return 0, errorf(ErrIndexOutOfRange, "index must not be zero")
	case v <= length:
		return int(v - 1), nil
	default:
		return 0, errorf(ErrIndexOutOfRange, "index %d is above %d", v, length)
	}
}

// splitRef classifies a vertex reference token by its slash-separated parts:
// "p", "p/t", "p//n" or "p/t/n". It returns false for more than three parts.
func splitRef(token string) (parts []string, shape Shape, ok bool) {
	parts = strings.Split(token, "/")
	switch len(parts) {
	case 1:
		return parts, ShapeP, true
	case 2:
		return parts, ShapePT, true
	case 3:
		if parts[1] == "" {
			return parts, ShapePN, true
		}
		return parts, ShapePTN, true
	default:
		return nil, 0, false
	}
}

// arrayLens are the current lengths of the attribute arrays references
// are resolved against.
type arrayLens struct {
	positions int
	texCoords int
	normals   int
}

// parseRefs parses the vertex references of one element statement. The
// first reference fixes the shape; every other reference must match it and
// the shape must be one of allowed.
func parseRefs(args []string, lens arrayLens, allowed ...Shape) (Shape, []VertexRef, error) {
	refs := make([]VertexRef, 0, len(args))
	var shape Shape
	for i, arg := range args {
		parts, s, ok := splitRef(arg)
		if !ok {
			return 0, nil, errorf(ErrWrongTypeOfArguments, "malformed vertex reference %q", arg)
		}
		if i == 0 {
			if !slices.Contains(allowed, s) {
				return 0, nil, errorf(ErrWrongTypeOfArguments, "vertex format %s is not allowed here", s)
			}
			shape = s
		} else if s != shape {
			return 0, nil, errorf(ErrWrongTypeOfArguments, "vertex reference %q is %s, expected %s like the first one", arg, s, shape)
		}

		ref, err := resolveRef(parts, shape, lens)
		if err != nil {
			return 0, nil, err
		}
		refs = append(refs, ref)
	}
	return shape, refs, nil
}

func resolveRef(parts []string, shape Shape, lens arrayLens) (VertexRef, error) {
	ref := VertexRef{Position: None, TexCoord: None, Normal: None}
	var err error
	if ref.Position, err = resolveIndex(parts[0], lens.positions); err != nil {
		return ref, err
	}
	if shape.HasTexCoord() {
		if ref.TexCoord, err = resolveIndex(parts[1], lens.texCoords); err != nil {
			return ref, err
		}
	}
	if shape.HasNormal() {
		if ref.Normal, err = resolveIndex(parts[2], lens.normals); err != nil {
			return ref, err
		}
	}
	return ref, nil
}
