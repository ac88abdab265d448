// Package lexer splits line-oriented Wavefront sources (.obj, .mtl) into
// keyword statements.
//
// A statement is one logical line: everything after the first unescaped '#'
// is dropped, a line ending in a backslash is joined with the next one, and
// the remaining text is split on runs of white space. The first field is the
// keyword, the others are its arguments. Lines without fields are skipped.
package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBackslashAtEOF is returned when the source ends while a backslash
// continuation is still waiting for its next line.
var ErrBackslashAtEOF = errors.New("obj: expected a line, but met EOF")

// Statement is a keyword with its arguments.
type Statement struct {
	Keyword string
	Args    []string

	// Line is the 1-based physical line the statement starts on.
	Line int
}

// Lexer reads statements from a source, one at a time.
//
// The zero value is not usable; create lexers with New. A Lexer is a single
// forward pass and cannot be rewound.
type Lexer struct {
	r    *bufio.Reader
	line int
	stmt Statement
	err  error
	done bool
}

// New returns a lexer reading from r. If r is already a *bufio.Reader it is
// used as is.
func New(r io.Reader) *Lexer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Lexer{r: br}
}

// Next advances to the next statement. It returns false at the end of the
// source or on the first error; Err tells the two apart.
func (l *Lexer) Next() bool {
	if l.done {
		return false
	}
	for {
		text, start, err := l.logicalLine()
		if err != nil {
			l.done = true
			if err != io.EOF {
				l.err = err
			}
			return false
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		l.stmt = Statement{Keyword: fields[0], Args: fields[1:], Line: start}
		return true
	}
}

// Statement returns the statement read by the last successful call to Next.
func (l *Lexer) Statement() Statement { return l.stmt }

// Err returns the first error met by Next. Errors of the underlying reader
// are returned unchanged. Reaching the end of the source is not an error.
func (l *Lexer) Err() error { return l.err }

// Line returns the number of physical lines consumed so far.
func (l *Lexer) Line() int { return l.line }

// logicalLine reads one physical line, and the following ones as long as
// they end in a backslash. It returns the joined text and the number of the
// first physical line.
func (l *Lexer) logicalLine() (string, int, error) {
	line, err := l.readLine()
	if err != nil {
		return "", 0, err
	}
	start := l.line

	body, cont := strings.CutSuffix(line, `\`)
	if !cont {
		return unescape(line), start, nil
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteByte(' ')
	for {
		line, err = l.readLine()
		if errors.Is(err, io.EOF) {
			return "", 0, fmt.Errorf("%w (continuation started on line %d)", ErrBackslashAtEOF, start)
		}
		if err != nil {
			return "", 0, err
		}
		body, cont = strings.CutSuffix(line, `\`)
		if !cont {
			b.WriteString(line)
			break
		}
		b.WriteString(body)
		b.WriteByte(' ')
	}
	return unescape(b.String()), start, nil
}

// readLine returns the next physical line with its terminator and comment
// removed. A final line without a newline is still returned; io.EOF comes
// with the following call.
func (l *Lexer) readLine() (string, error) {
	s, err := l.r.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	l.line++
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return stripComment(s), nil
}

// stripComment cuts s at the first '#' that is not preceded by a backslash.
func stripComment(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && (i == 0 || s[i-1] != '\\') {
			return s[:i]
		}
	}
	return s
}

// unescape turns the escaped comment marker `\#` into a plain '#'.
func unescape(s string) string {
	if !strings.Contains(s, `\#`) {
		return s
	}
	return strings.ReplaceAll(s, `\#`, "#")
}
