package confstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromJSONClassification(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
	}{
		{"null", `null`, Null},
		{"true", `true`, Bool},
		{"false", `false`, Bool},
		{"int", `42`, Int},
		{"negative int", `-7`, Int},
		{"float", `3.14`, Float},
		{"exponent is float", `1e3`, Float},
		{"string", `"hello"`, String},
		{"object", `{"a":1}`, Object},
		{"array", `[1,2]`, Array},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromJSON(tt.raw)
			assert.Equal(t, tt.kind, v.Kind())
			assert.False(t, v.IsDiscarded())
		})
	}
}

func TestFromJSONPermissiveInput(t *testing.T) {
	v := FromJSON(`{
		// comment
		"a": 1,
	}`)
	assert.Equal(t, Object, v.Kind())
	assert.Equal(t, `{"a":1}`, v.Raw())
}

func TestFromJSONInvalidIsDiscarded(t *testing.T) {
	for _, raw := range []string{``, `{`, `{"a":}`, `not json at all`} {
		assert.True(t, FromJSON(raw).IsDiscarded(), "input %q", raw)
	}
}

func TestZeroValueIsDiscarded(t *testing.T) {
	var v Value
	assert.True(t, v.IsDiscarded())
	assert.Equal(t, Discarded, v.Kind())
	assert.Equal(t, "", v.Raw())
	assert.Equal(t, "discarded", v.Kind().String())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, FromJSON(`{"a": 1}`).Equal(FromJSON(`{"a":1}`)))
	assert.True(t, Value{}.Equal(Value{}))
	assert.False(t, FromJSON(`1`).Equal(FromJSON(`1.0`)), "int and float differ in kind")
	assert.False(t, FromJSON(`{"a":1}`).Equal(Value{}))
}
