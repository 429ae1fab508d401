package value

// Kind identifies which member of the Value union is populated.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
	KindOpaque
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Value is a tagged union representing one JSON-compatible datum: a scalar,
// an array of values, an object mapping string keys to values, or an opaque
// marker with no JSON representation of its own.
//
// A nil *Value is treated as KindNil everywhere.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	a    []*Value
	o    map[string]*Value
	p    any
}

type nullToken struct{}

// Null is the explicit JSON null sentinel. It is a process-wide singleton
// compared by identity (v == Null), never structurally, so it cannot collide
// with an opaque value a caller constructed. The parser produces it for JSON
// null when the parse_null option is set; the generator emits it as null.
var Null = &Value{kind: KindOpaque, p: nullToken{}}

// Nil returns a fresh nil value.
func Nil() *Value { return &Value{kind: KindNil} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewInt returns a 64-bit integer value.
func NewInt(i int64) *Value { return &Value{kind: KindInt, i: i} }

// NewFloat returns a double-precision float value.
func NewFloat(f float64) *Value { return &Value{kind: KindFloat, f: f} }

// NewString returns a string value.
func NewString(s string) *Value { return &Value{kind: KindString, s: s} }

// NewArray returns an empty, mutable array value.
func NewArray() *Value { return &Value{kind: KindArray} }

// NewObject returns an empty, mutable object value.
func NewObject() *Value { return &Value{kind: KindObject, o: make(map[string]*Value)} }

// NewOpaque wraps a host payload that has no JSON representation. Opaque
// values other than the Null sentinel are rejected by the generator.
func NewOpaque(payload any) *Value { return &Value{kind: KindOpaque, p: payload} }

// Kind reports which member of the union is populated.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNil
	}
	return v.kind
}

// IsNil reports whether the value is the nil value.
func (v *Value) IsNil() bool { return v.Kind() == KindNil }

// Bool returns the boolean payload, or false for other kinds.
func (v *Value) Bool() bool {
	if v.Kind() != KindBool {
		return false
	}
	return v.b
}

// Int returns the integer payload, or 0 for other kinds.
func (v *Value) Int() int64 {
	if v.Kind() != KindInt {
		return 0
	}
	return v.i
}

// Float returns the float payload, or 0 for other kinds.
func (v *Value) Float() float64 {
	if v.Kind() != KindFloat {
		return 0
	}
	return v.f
}

// String returns the string payload, or "" for other kinds.
func (v *Value) String() string {
	if v.Kind() != KindString {
		return ""
	}
	return v.s
}

// Payload returns the payload of an opaque value.
func (v *Value) Payload() any {
	if v.Kind() != KindOpaque {
		return nil
	}
	return v.p
}

// Len returns the number of elements of an array or members of an object.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.a)
	case KindObject:
		return len(v.o)
	default:
		return 0
	}
}

// Push appends an element to an array value.
func (v *Value) Push(elem *Value) {
	if v.Kind() != KindArray {
		panic("value: Push on non-array value")
	}
	v.a = append(v.a, elem)
}

// At returns the i-th element of an array value, or nil when out of range.
func (v *Value) At(i int) *Value {
	if v.Kind() != KindArray || i < 0 || i >= len(v.a) {
		return nil
	}
	return v.a[i]
}

// Elems returns the backing slice of an array value. The slice is a view,
// not a copy.
func (v *Value) Elems() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return v.a
}

// Set inserts or replaces a member of an object value.
func (v *Value) Set(key string, member *Value) {
	if v.Kind() != KindObject {
		panic("value: Set on non-object value")
	}
	v.o[key] = member
}

// Get looks up a member of an object value.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}
	member, ok := v.o[key]
	return member, ok
}

// Fields returns the backing map of an object value. The map is a view, not
// a copy; iteration order is unspecified.
func (v *Value) Fields() map[string]*Value {
	if v.Kind() != KindObject {
		return nil
	}
	return v.o
}

// Equal reports structural equality of two value trees. Opaque values
// (including the Null sentinel) are equal only when they are the same value.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNil:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.a) != len(b.a) {
			return false
		}
		for i := range a.a {
			if !Equal(a.a[i], b.a[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.o) != len(b.o) {
			return false
		}
		for k, av := range a.o {
			bv, ok := b.o[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		// Opaque: identity only, already handled by a == b above.
		return false
	}
}
