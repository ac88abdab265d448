package obj

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Index is the set of integer types an index buffer can be built with.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// toIndex converts a vertex buffer position to I, failing with
// ErrIndexOutOfRange when it does not fit.
func toIndex[I Index](n int) (I, error) {
	i := I(n)
	if n < 0 || uint64(i) != uint64(n) {
		return 0, fmt.Errorf("%w: unable to convert the index %d", ErrIndexOutOfRange, n)
	}
	return i, nil
}

// IndexFormatOf returns the GPU index format matching I.
// Widths GPUs cannot index with report gputypes.IndexFormatUndefined.
func IndexFormatOf[I Index]() gputypes.IndexFormat {
	switch sizeOf[I]() {
	case 2:
		return gputypes.IndexFormatUint16
	case 4:
		return gputypes.IndexFormatUint32
	default:
		return gputypes.IndexFormatUndefined
	}
}

// sizeOf returns the width of I in bytes.
func sizeOf[I Index]() int {
	n := 0
	for i := ^I(0); i != 0; i >>= 8 {
		n++
	}
	return n
}
