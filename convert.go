package confstore

import (
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// Typed conversion between document values and Go primitives. The set
// of supported kinds is closed: one entry point per kind, nothing
// generic. A kind mismatch returns the caller's fallback; in
// particular there is no coercion between integer and floating
// numbers, and no parsing of numeric strings.

// ToInt32 extracts a 32-bit integer from v, or returns fallback when v
// is not an integer or does not fit 32 bits.
func ToInt32(v Value, fallback int32) int32 {
	if v.kind != Int {
		return fallback
	}
	n, err := strconv.ParseInt(v.raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}

// ToInt64 extracts a 64-bit integer from v, or returns fallback.
func ToInt64(v Value, fallback int64) int64 {
	if v.kind != Int {
		return fallback
	}
	n, err := strconv.ParseInt(v.raw, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// ToFloat32 extracts a single-precision float from v, or returns
// fallback when v is not a floating number.
func ToFloat32(v Value, fallback float32) float32 {
	if v.kind != Float {
		return fallback
	}
	f, err := strconv.ParseFloat(v.raw, 32)
	if err != nil {
		return fallback
	}
	return float32(f)
}

// ToFloat64 extracts a double-precision float from v, or returns
// fallback when v is not a floating number.
func ToFloat64(v Value, fallback float64) float64 {
	if v.kind != Float {
		return fallback
	}
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return fallback
	}
	return f
}

// ToString extracts a UTF-8 string from v, or returns fallback when v
// is not a string.
func ToString(v Value, fallback string) string {
	if v.kind != String {
		return fallback
	}
	return gjson.Parse(v.raw).Str
}

// FromInt32 injects a 32-bit integer into a document value.
func FromInt32(n int32) Value {
	return Value{kind: Int, raw: strconv.FormatInt(int64(n), 10)}
}

// FromInt64 injects a 64-bit integer into a document value.
func FromInt64(n int64) Value {
	return Value{kind: Int, raw: strconv.FormatInt(n, 10)}
}

// FromFloat32 injects a single-precision float into a document value.
func FromFloat32(f float32) Value {
	return fromFloat(float64(f), 32)
}

// FromFloat64 injects a double-precision float into a document value.
func FromFloat64(f float64) Value {
	return fromFloat(f, 64)
}

// FromString injects a string into a document value.
func FromString(s string) Value {
	return Value{kind: String, raw: string(gjson.AppendJSONString(nil, s))}
}

// fromFloat formats a float as a JSON token that stays lexically
// floating, so narrowing a widened float never falls back. Non-finite
// values have no JSON encoding and widen to null.
func fromFloat(f float64, bits int) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{kind: Null, raw: "null"}
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !tokenIsFloat(s) {
		s += ".0"
	}
	return Value{kind: Float, raw: s}
}
