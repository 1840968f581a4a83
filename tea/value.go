// File: value.go
// Role: Value tagged variant for heterogeneous attribute values.
// AI-HINT (file):
//   - The zero Value is KindInvalid; it never comes out of a successful lookup.
//   - Typed accessors never convert between kinds: Int(3).Float() reports ok=false.

package tea

import "strconv"

// Kind tags the payload carried by a Value.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Value.
	KindInvalid Kind = iota
	// KindString carries a string.
	KindString
	// KindFloat carries a float64.
	KindFloat
	// KindInt carries an int64.
	KindInt
	// KindBool carries a bool.
	KindBool
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is an immutable attribute value of one of the supported kinds.
// Values are comparable with ==.
type Value struct {
	kind Kind
	s    string
	f    float64
	i    int64
	b    bool
}

// String wraps a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Float wraps a float64 value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Int wraps an int64 value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Bool wraps a bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v carries a payload.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Str returns the string payload.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Float returns the float64 payload.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Int returns the int64 payload.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Bool returns the bool payload.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Any returns the payload as an untyped value, or nil for KindInvalid.
// Useful when handing values to containers keyed by interface{}.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindFloat:
		return v.f
	case KindInt:
		return v.i
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String renders the payload in its natural textual form.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}
