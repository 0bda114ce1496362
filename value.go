package confstore

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/pretty"
)

// Kind identifies the runtime kind of a Value.
type Kind uint8

const (
	// Discarded marks the sentinel returned when a read cannot produce
	// a usable result. It is never a legitimate document value.
	Discarded Kind = iota
	Null
	Bool
	Int
	Float
	String
	Object
	Array
)

// String returns the kind name for log and error messages.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "discarded"
	}
}

// Value is an immutable, kind-tagged JSON fragment copied out of (or
// destined for) a document. The zero Value is the discarded sentinel.
type Value struct {
	kind Kind
	raw  string
}

// Kind returns the runtime kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsDiscarded reports whether v is the discarded sentinel.
func (v Value) IsDiscarded() bool { return v.kind == Discarded }

// Raw returns the dense JSON encoding of v, or the empty string for
// the discarded sentinel.
func (v Value) Raw() string {
	if v.kind == Discarded {
		return ""
	}
	return v.raw
}

// Equal reports whether v and o have the same kind and the same dense
// JSON encoding. Two discarded values are equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == Discarded {
		return true
	}
	return string(pretty.Ugly([]byte(v.raw))) == string(pretty.Ugly([]byte(o.raw)))
}

// FromJSON builds a Value from JSON text. The text is parsed
// permissively: comments and trailing commas are accepted. Invalid
// text yields the discarded sentinel.
func FromJSON(raw string) Value {
	clean := jsonc.ToJSON([]byte(raw))
	if !gjson.ValidBytes(clean) {
		return Value{}
	}
	return valueOf(gjson.ParseBytes(pretty.Ugly(clean)))
}

// valueOf classifies a parsed gjson result. The caller guarantees the
// result exists.
func valueOf(res gjson.Result) Value {
	switch res.Type {
	case gjson.Null:
		return Value{kind: Null, raw: "null"}
	case gjson.False:
		return Value{kind: Bool, raw: "false"}
	case gjson.True:
		return Value{kind: Bool, raw: "true"}
	case gjson.String:
		return Value{kind: String, raw: res.Raw}
	case gjson.Number:
		if tokenIsFloat(res.Raw) {
			return Value{kind: Float, raw: res.Raw}
		}
		return Value{kind: Int, raw: res.Raw}
	default:
		raw := strings.TrimSpace(res.Raw)
		if strings.HasPrefix(raw, "[") {
			return Value{kind: Array, raw: raw}
		}
		return Value{kind: Object, raw: raw}
	}
}

// tokenIsFloat reports whether a JSON number token denotes a floating
// value. Integer and floating kinds are kept apart lexically: a token
// with a fraction or exponent is a float, anything else an integer.
func tokenIsFloat(token string) bool {
	return strings.ContainsAny(token, ".eE")
}
