package confstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPointer(t *testing.T) {
	tests := []struct {
		name string
		path string
		segs []string
		ok   bool
	}{
		{"root", "", nil, true},
		{"single", "/a", []string{"a"}, true},
		{"nested", "/a/b/c", []string{"a", "b", "c"}, true},
		{"slash only addresses the empty key", "/", []string{""}, true},
		{"tilde escapes", "/a~1b/~0", []string{"a/b", "~"}, true},
		{"no leading slash", "a/b", nil, false},
		{"relative", "a", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, ok := splitPointer(tt.path)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.segs, segs)
			}
		})
	}
}

func TestEscapeSegment(t *testing.T) {
	assert.Equal(t, "plain", escapeSegment("plain"))
	assert.Equal(t, `dotted\.key`, escapeSegment("dotted.key"))
	assert.Equal(t, `a\*b\?c`, escapeSegment("a*b?c"))
	assert.Equal(t, `\#`, escapeSegment("#"))
}

func TestLookupPathCompilesDottedKeys(t *testing.T) {
	st := New()
	st.Set("/server.host/port", FromInt64(8080))

	assert.Equal(t, `{"server.host":{"port":8080}}`, st.Serialize(false))
	assert.Equal(t, int64(8080), ToInt64(st.Get("/server.host/port"), -1))
}

func TestWritePathArrayDecisions(t *testing.T) {
	doc := `{"arr":[1,2],"obj":{}}`

	path, ok := writePath(doc, []string{"arr", "0"})
	assert.True(t, ok)
	assert.Equal(t, "arr.0", path)

	path, ok = writePath(doc, []string{"arr", "-"})
	assert.True(t, ok)
	assert.Equal(t, "arr.-1", path)

	_, ok = writePath(doc, []string{"arr", "5"})
	assert.False(t, ok, "no auto-extension past the append position")

	_, ok = writePath(doc, []string{"arr", "-", "x"})
	assert.False(t, ok, "the append position has no children")

	path, ok = writePath(doc, []string{"obj", "3"})
	assert.True(t, ok)
	assert.Equal(t, "obj.:3", path)

	// "-" on a non-array is an ordinary key.
	path, ok = writePath(doc, []string{"obj", "-"})
	assert.True(t, ok)
	assert.Equal(t, "obj.-", path)
}
