package generator

import (
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/H2CO3/yajl-sparkling/internal/config"
	"github.com/H2CO3/yajl-sparkling/internal/errors"
)

const hexDigits = "0123456789abcdef"

// emitter renders JSON syntax to a writer: separators between values,
// optional pretty-printing, and string escaping. The tree walk in
// generator.go decides what to emit; the emitter decides how it looks.
//
// counts tracks, per open container, how many values have been written at
// that level (to place commas); keyed is set between a member key and the
// value that follows it, which must not get its own separator.
type emitter struct {
	w           io.Writer
	beautify    bool
	indent      string
	escapeSlash bool
	counts      []int
	keyed       bool
}

func newEmitter(w io.Writer, opts config.GeneratorOptions) *emitter {
	return &emitter{
		w:           w,
		beautify:    opts.Beautify,
		indent:      opts.Indent,
		escapeSlash: opts.EscapeSlash,
	}
}

// sep writes the comma and, when beautifying, the newline and indentation
// owed before the next value at the current nesting level.
func (e *emitter) sep() error {
	if e.keyed {
		e.keyed = false
		return nil
	}
	if len(e.counts) == 0 {
		return nil
	}
	last := len(e.counts) - 1
	if e.counts[last] > 0 {
		if err := e.write([]byte{','}, "separator"); err != nil {
			return err
		}
	}
	e.counts[last]++
	if e.beautify {
		return e.breakLine(len(e.counts))
	}
	return nil
}

// breakLine starts a fresh line indented to the given depth.
func (e *emitter) breakLine(depth int) error {
	line := make([]byte, 0, 1+depth*len(e.indent))
	line = append(line, '\n')
	for i := 0; i < depth; i++ {
		line = append(line, e.indent...)
	}
	return e.write(line, "indentation")
}

func (e *emitter) openObject() error {
	if err := e.sep(); err != nil {
		return err
	}
	if err := e.write([]byte{'{'}, "object open"); err != nil {
		return err
	}
	e.counts = append(e.counts, 0)
	return nil
}

func (e *emitter) closeObject() error {
	return e.close('}', "object close")
}

func (e *emitter) openArray() error {
	if err := e.sep(); err != nil {
		return err
	}
	if err := e.write([]byte{'['}, "array open"); err != nil {
		return err
	}
	e.counts = append(e.counts, 0)
	return nil
}

func (e *emitter) closeArray() error {
	return e.close(']', "array close")
}

func (e *emitter) close(delim byte, what string) error {
	n := e.counts[len(e.counts)-1]
	e.counts = e.counts[:len(e.counts)-1]
	// Empty containers close on the same line.
	if e.beautify && n > 0 {
		if err := e.breakLine(len(e.counts)); err != nil {
			return err
		}
	}
	return e.write([]byte{delim}, what)
}

// key writes an object member key and its colon, and marks the value that
// follows as already separated.
func (e *emitter) key(s string) error {
	if err := e.sep(); err != nil {
		return err
	}
	if err := e.write(escapeString(s, e.escapeSlash), "member key"); err != nil {
		return err
	}
	colon := []byte{':'}
	if e.beautify {
		colon = []byte{':', ' '}
	}
	if err := e.write(colon, "member key"); err != nil {
		return err
	}
	e.keyed = true
	return nil
}

func (e *emitter) null() error {
	if err := e.sep(); err != nil {
		return err
	}
	return e.write([]byte("null"), "null")
}

func (e *emitter) boolean(b bool) error {
	if err := e.sep(); err != nil {
		return err
	}
	lit := "false"
	if b {
		lit = "true"
	}
	return e.write([]byte(lit), "boolean")
}

func (e *emitter) integer(i int64) error {
	if err := e.sep(); err != nil {
		return err
	}
	return e.write(strconv.AppendInt(nil, i, 10), "number")
}

func (e *emitter) double(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.NewGenerationError("cannot represent non-finite number in JSON", nil)
	}
	if err := e.sep(); err != nil {
		return err
	}
	return e.write(strconv.AppendFloat(nil, f, 'g', -1, 64), "number")
}

func (e *emitter) str(s string) error {
	if err := e.sep(); err != nil {
		return err
	}
	return e.write(escapeString(s, e.escapeSlash), "string")
}

// write funnels every emission through one place so a failed primitive is
// reported by name.
func (e *emitter) write(p []byte, what string) error {
	if _, err := e.w.Write(p); err != nil {
		return errors.NewGenerationError("failed writing "+what, err)
	}
	return nil
}

// escapeString renders s as a quoted JSON string. Control characters and the
// JSON metacharacters use the short escapes where they exist and \u00XX
// otherwise; invalid UTF-8 bytes become U+FFFD; everything else passes
// through verbatim.
func escapeString(s string, escapeSlash bool) []byte {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); {
		b := s[i]
		if b < utf8.RuneSelf {
			switch {
			case b == '"':
				out = append(out, '\\', '"')
			case b == '\\':
				out = append(out, '\\', '\\')
			case b == '/' && escapeSlash:
				out = append(out, '\\', '/')
			case b == '\b':
				out = append(out, '\\', 'b')
			case b == '\f':
				out = append(out, '\\', 'f')
			case b == '\n':
				out = append(out, '\\', 'n')
			case b == '\r':
				out = append(out, '\\', 'r')
			case b == '\t':
				out = append(out, '\\', 't')
			case b < 0x20:
				out = append(out, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xf])
			default:
				out = append(out, b)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			out = append(out, "\xef\xbf\xbd"...)
			i++
			continue
		}
		out = append(out, s[i:i+size]...)
		i += size
	}
	return append(out, '"')
}
