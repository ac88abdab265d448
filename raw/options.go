package raw

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMaxGroupNumber is the largest smoothing or merging group id
// accepted unless WithMaxGroupNumber says otherwise.
const DefaultMaxGroupNumber = 1 << 26

// Option configures ParseOBJ and ParseMTL.
//
// Example:
//
//	doc, err := raw.ParseOBJ(f, raw.WithEncoding(charmap.Windows1252))
type Option func(*options)

type options struct {
	encoding       encoding.Encoding
	maxGroupNumber uint64
}

func newOptions(opts []Option) options {
	o := options{maxGroupNumber: DefaultMaxGroupNumber}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithEncoding decodes the source from enc before parsing. Use it for files
// written by exporters that do not emit UTF-8, typically for object, group
// and material names.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithMaxGroupNumber sets the largest accepted id for the "s" and "mg"
// statements. Larger ids fail with ErrTooBigGroupNumber.
func WithMaxGroupNumber(n uint32) Option {
	return func(o *options) {
		o.maxGroupNumber = uint64(n)
	}
}

// reader wraps r so that a leading byte order mark is dropped and, when an
// encoding is configured, the content is decoded to UTF-8. Errors of r are
// passed through unchanged.
func (o options) reader(r io.Reader) io.Reader {
	var fallback transform.Transformer = transform.Nop
	if o.encoding != nil {
		fallback = o.encoding.NewDecoder()
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback))
}
