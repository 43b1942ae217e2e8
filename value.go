package graft

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies the concrete shape held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the lowercase kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Value is the closed set of shapes a nested mapping can hold.
// The sealed marker keeps the variant set fixed so traversal code can
// switch exhaustively instead of guessing at arbitrary types.
type Value interface {
	Kind() Kind
	sealed()
}

// Null is the absence-of-value scalar.
type Null struct{}

// Bool is a boolean scalar.
type Bool bool

// Number is a numeric scalar. All numbers are float64, mirroring the
// JSON data model the patch literals are parsed from.
type Number float64

// String is a text scalar.
type String string

// List is an ordered sequence of values. Mutating operations replace the
// slice header in the parent map, so callers holding an old List see the
// pre-mutation elements.
type List []Value

// Map is a string-keyed nested mapping. It is a reference type: the
// operations in this package mutate it in place and never copy the
// structure handed to them.
type Map map[string]Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (List) Kind() Kind   { return KindList }
func (Map) Kind() Kind    { return KindMap }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (List) sealed()   {}
func (Map) sealed()    {}

// KindOf reports the kind of v, tolerating a nil interface.
func KindOf(v Value) Kind {
	if v == nil {
		return KindInvalid
	}
	return v.Kind()
}

// FromAny converts the plain Go shapes produced by the standard decoders
// (encoding/json, yaml.v3, go-toml) into a Value tree. Numeric types are
// widened to float64. Timestamps become RFC 3339 strings.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	case int:
		return Number(x), nil
	case int8:
		return Number(x), nil
	case int16:
		return Number(x), nil
	case int32:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint:
		return Number(x), nil
	case uint8:
		return Number(x), nil
	case uint16:
		return Number(x), nil
	case uint32:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("cannot represent number %q: %w", x.String(), err)
		}
		return Number(f), nil
	case time.Time:
		return String(x.Format(time.RFC3339)), nil
	case []any:
		list := make(List, len(x))
		for i, item := range x {
			converted, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			list[i] = converted
		}
		return list, nil
	case map[string]any:
		m := make(Map, len(x))
		for k, item := range x {
			converted, err := FromAny(item)
			if err != nil {
				return nil, err
			}
			m[k] = converted
		}
		return m, nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a value", v)
	}
}

// ToAny converts a Value tree back into the plain Go shapes the standard
// encoders accept.
func ToAny(v Value) any {
	switch x := v.(type) {
	case Null:
		return nil
	case Bool:
		return bool(x)
	case Number:
		return float64(x)
	case String:
		return string(x)
	case List:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = ToAny(item)
		}
		return out
	case Map:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = ToAny(item)
		}
		return out
	default:
		return nil
	}
}

// Equal reports deep structural equality of two values.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Number:
		return av == b.(Number)
	case String:
		return av == b.(String)
	case List:
		bv := b.(List)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Map:
		bv := b.(Map)
		if len(av) != len(bv) {
			return false
		}
		for k, item := range av {
			other, ok := bv[k]
			if !ok || !Equal(item, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of v. Scalars are returned as-is (they are
// value types); lists and maps are copied recursively.
func Clone(v Value) Value {
	switch x := v.(type) {
	case List:
		out := make(List, len(x))
		for i, item := range x {
			out[i] = Clone(item)
		}
		return out
	case Map:
		out := make(Map, len(x))
		for k, item := range x {
			out[k] = Clone(item)
		}
		return out
	default:
		return v
	}
}
