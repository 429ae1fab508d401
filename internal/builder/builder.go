// Package builder converts JSON text into a value tree. It consumes the
// token stream of encoding/json's Decoder the way a SAX consumer would:
// instead of recursive descent, an explicit stack of open-container frames
// tracks nesting, so construction needs no call-stack recursion regardless
// of input depth.
package builder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	stderrors "errors"

	"github.com/tailscale/hujson"

	"github.com/H2CO3/yajl-sparkling/internal/config"
	"github.com/H2CO3/yajl-sparkling/internal/errors"
	"github.com/H2CO3/yajl-sparkling/internal/value"
)

// frame is one currently-open, not-yet-closed JSON container. For object
// frames, key holds the most recently seen member key between the key token
// and the value that follows it; hasKey is false at all other times.
type frame struct {
	container *value.Value
	key       string
	hasKey    bool
}

// state is the per-call parser state: the eventual root, the stack of open
// containers, and the null representation selected by parse_null. Each call
// to Parse allocates a fresh state; nothing is shared across calls.
type state struct {
	root         *value.Value
	stack        []frame
	explicitNull bool
}

func (s *state) push(container *value.Value) {
	s.stack = append(s.stack, frame{container: container})
}

func (s *state) pop() *value.Value {
	top := &s.stack[len(s.stack)-1]
	if top.hasKey {
		panic("builder: closing an object with a pending member key")
	}
	container := top.container
	s.stack = s.stack[:len(s.stack)-1]
	return container
}

// setValue deposits a completed value: into the root when no container is
// open, by appending for an open array, by pending-key insertion for an open
// object.
func (s *state) setValue(v *value.Value) {
	if len(s.stack) == 0 {
		s.root = v
		return
	}
	top := &s.stack[len(s.stack)-1]
	switch top.container.Kind() {
	case value.KindArray:
		top.container.Push(v)
	case value.KindObject:
		if !top.hasKey {
			panic("builder: object member value with no pending key")
		}
		top.container.Set(top.key, v)
		top.key = ""
		top.hasKey = false
	default:
		panic("builder: cannot add value to non-collection")
	}
}

// expectingKey reports whether the next string token is an object member key
// rather than a string value.
func (s *state) expectingKey() bool {
	if len(s.stack) == 0 {
		return false
	}
	top := &s.stack[len(s.stack)-1]
	return top.container.Kind() == value.KindObject && !top.hasKey
}

// done reports whether the single top-level value has been fully built.
func (s *state) done() bool {
	return s.root != nil && len(s.stack) == 0
}

func (s *state) nullValue() *value.Value {
	if s.explicitNull {
		return value.Null
	}
	return value.Nil()
}

// apply dispatches one token against the state machine.
func (s *state) apply(tok json.Token) error {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			s.push(value.NewObject())
		case '[':
			s.push(value.NewArray())
		case '}', ']':
			s.setValue(s.pop())
		}
	case string:
		if s.expectingKey() {
			top := &s.stack[len(s.stack)-1]
			top.key = t
			top.hasKey = true
			return nil
		}
		s.setValue(value.NewString(t))
	case json.Number:
		v, err := numberValue(t)
		if err != nil {
			return err
		}
		s.setValue(v)
	case bool:
		s.setValue(value.NewBool(t))
	case nil:
		s.setValue(s.nullValue())
	default:
		return fmt.Errorf("unexpected token %v of type %T", tok, tok)
	}
	return nil
}

// numberValue resolves a numeric literal to an integer when it fits in
// int64, and to a float otherwise.
func numberValue(n json.Number) (*value.Value, error) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return value.NewInt(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number literal %q: %w", n.String(), err)
	}
	return value.NewFloat(f), nil
}

// Parse converts a complete JSON text into a value tree.
//
// config may be nil; when present it must be an object value. Recognized
// keys: "comment" (bool) tolerates C-style comments in the input, and
// "parse_null" (bool) maps JSON null to the value.Null sentinel instead of
// the nil value. Unrecognized or wrong-typed keys are silently ignored.
//
// The input must contain exactly one top-level JSON value; anything but
// whitespace after it is a trailing-data error, distinct from a syntax
// error. On any error the partially-built tree is discarded and never
// returned.
func Parse(input []byte, cfg *value.Value) (*value.Value, error) {
	if cfg != nil && cfg.Kind() != value.KindObject {
		return nil, errors.NewArgumentError("config must be an object", nil)
	}
	opts := config.ParserOptionsFrom(cfg)

	text := input
	if opts.Comment {
		// hujson standardizes JSON-with-comments to plain JSON, playing the
		// role of the tokenizer's comment-tolerance switch.
		standardized, err := hujson.Standardize(input)
		if err != nil {
			return nil, errors.NewSyntaxError(fmt.Sprintf("invalid JSON: %v", err), err)
		}
		text = standardized
	}

	reader := bytes.NewReader(text)
	dec := json.NewDecoder(reader)
	dec.UseNumber() // keep the int/float distinction until resolution

	st := &state{explicitNull: opts.ExplicitNull}
	for !st.done() {
		tok, err := dec.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		if err := st.apply(tok); err != nil {
			return nil, errors.NewSyntaxError(err.Error(), err)
		}
	}

	if trailingData(dec, reader) {
		return nil, errors.NewTrailingDataError("unexpected content after top-level value", nil)
	}

	return st.root, nil
}

// ParseString parses JSON from a string
func ParseString(jsonText string, cfg *value.Value) (*value.Value, error) {
	return Parse([]byte(jsonText), cfg)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string, cfg *value.Value) (*value.Value, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(fmt.Sprintf("file '%s' not found", filePath), err)
		}
		return nil, errors.NewInputError(fmt.Sprintf("failed to read file '%s'", filePath), err)
	}
	return Parse(data, cfg)
}

// trailingData reports whether anything but whitespace remains after the
// top-level value: first in the decoder's read-ahead buffer, then in the
// unconsumed rest of the input.
func trailingData(dec *json.Decoder, reader *bytes.Reader) bool {
	buffered, _ := io.ReadAll(dec.Buffered())
	if len(bytes.TrimSpace(buffered)) > 0 {
		return true
	}
	rest, _ := io.ReadAll(reader)
	return len(bytes.TrimSpace(rest)) > 0
}

// syntaxError translates a tokenizer failure, carrying its diagnostic
// (offset context where the decoder provides one).
func syntaxError(err error) *errors.Error {
	var jsonErr *json.SyntaxError
	if stderrors.As(err, &jsonErr) {
		return errors.NewSyntaxError(
			fmt.Sprintf("%s at offset %d", jsonErr.Error(), jsonErr.Offset),
			err,
		)
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewSyntaxError("unexpected end of input", err)
	}
	return errors.NewSyntaxError(err.Error(), err)
}
