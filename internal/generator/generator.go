// Package generator converts a value tree back into JSON text.
package generator

import (
	"bytes"
	"io"

	"github.com/H2CO3/yajl-sparkling/internal/config"
	"github.com/H2CO3/yajl-sparkling/internal/errors"
	"github.com/H2CO3/yajl-sparkling/internal/value"
)

// Generator walks a value tree and renders it as JSON text through an
// emitter. The walk is recursive: call-stack depth grows with tree nesting
// depth, which is unbounded for pathological inputs.
type Generator struct {
	opts config.GeneratorOptions
}

// New creates a Generator from a config object.
//
// config may be nil; when present it must be an object value. Recognized
// keys: "beautify" (bool), "indent" (string, used only when beautifying) and
// "escape_slash" (bool). Unrecognized or wrong-typed keys are silently
// ignored.
func New(cfg *value.Value) (*Generator, error) {
	if cfg != nil && cfg.Kind() != value.KindObject {
		return nil, errors.NewArgumentError("config must be an object", nil)
	}
	return &Generator{opts: config.GeneratorOptionsFrom(cfg)}, nil
}

// Generate renders v as JSON text.
func Generate(v *value.Value, cfg *value.Value) (string, error) {
	var buf bytes.Buffer
	if err := GenerateTo(&buf, v, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateTo renders v as JSON text into w. The first failure aborts the
// whole walk; nothing written before the failure is taken back.
func GenerateTo(w io.Writer, v *value.Value, cfg *value.Value) error {
	if v == nil {
		return errors.NewArgumentError("value is required", nil)
	}
	g, err := New(cfg)
	if err != nil {
		return err
	}
	return g.emit(newEmitter(w, g.opts), v)
}

// emit dispatches one value by kind, recursing into collections.
func (g *Generator) emit(e *emitter, v *value.Value) error {
	switch v.Kind() {
	case value.KindNil:
		return e.null()
	case value.KindBool:
		return e.boolean(v.Bool())
	case value.KindInt:
		return e.integer(v.Int())
	case value.KindFloat:
		return e.double(v.Float())
	case value.KindString:
		return e.str(v.String())
	case value.KindArray:
		if err := e.openArray(); err != nil {
			return err
		}
		for _, elem := range v.Elems() {
			if err := g.emit(e, elem); err != nil {
				return err
			}
		}
		return e.closeArray()
	case value.KindObject:
		if err := e.openObject(); err != nil {
			return err
		}
		// Iteration order is the map's, not insertion order.
		for k, member := range v.Fields() {
			if err := e.key(k); err != nil {
				return err
			}
			if err := g.emit(e, member); err != nil {
				return err
			}
		}
		return e.closeObject()
	case value.KindOpaque:
		if v == value.Null {
			return e.null()
		}
		return errors.NewNonSerializableError("found non-serializable value", nil)
	default:
		return errors.NewNonSerializableError("found value of unknown type", nil)
	}
}
