package confstore

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Paths address nodes in the document as /segment/segment, where /
// denotes traversal from the root and the empty string is the root
// itself. Segments use the JSON-pointer escapes ~0 (tilde) and ~1
// (slash). A path that is non-empty but does not start with a slash
// never resolves.

// splitPointer splits a pointer into its unescaped segments. ok is
// false when the pointer is malformed.
func splitPointer(path string) (segs []string, ok bool) {
	if path == "" {
		return nil, true
	}
	if path[0] != '/' {
		return nil, false
	}
	raw := strings.Split(path[1:], "/")
	segs = make([]string, len(raw))
	for i, s := range raw {
		s = strings.ReplaceAll(s, "~1", "/")
		s = strings.ReplaceAll(s, "~0", "~")
		segs[i] = s
	}
	return segs, true
}

// escapeSegment backslash-escapes the characters that gjson and sjson
// treat as path syntax, so a segment is always matched literally.
func escapeSegment(seg string) string {
	if !strings.ContainsAny(seg, `.*?#|@\:!`) {
		return seg
	}
	var b strings.Builder
	b.Grow(len(seg) + 4)
	for _, r := range seg {
		switch r {
		case '.', '*', '?', '#', '|', '@', '\\', ':', '!':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// lookupPath compiles segments into a gjson read path.
func lookupPath(segs []string) string {
	esc := make([]string, len(segs))
	for i, s := range segs {
		esc[i] = escapeSegment(s)
	}
	return strings.Join(esc, ".")
}

// isArrayIndex reports whether seg is a plain decimal index.
func isArrayIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}

// writePath compiles segments into an sjson write path against the
// current document. Numeric segments index the parent only when it
// already is an array; otherwise they are forced to object keys so that
// missing intermediate nodes are created as objects. On arrays, "-" and
// the index one past the end append; larger indexes do not resolve
// (there is no auto-extension) and ok is false.
func writePath(doc string, segs []string) (path string, ok bool) {
	var compiled strings.Builder
	var lookup string

	for i, seg := range segs {
		esc := escapeSegment(seg)

		if isArrayIndex(seg) || seg == "-" {
			parent := gjson.Parse(doc)
			if lookup != "" {
				parent = gjson.Get(doc, lookup)
			}
			if parent.IsArray() {
				n := len(parent.Array())
				if seg == "-" {
					// Append position; only meaningful as the
					// terminal segment.
					if i != len(segs)-1 {
						return "", false
					}
					esc = "-1"
				} else if idx, err := strconv.Atoi(seg); err != nil || idx > n {
					return "", false
				}
			} else if isArrayIndex(seg) {
				// Force an object key; sjson would otherwise
				// build a null-padded array here.
				esc = ":" + esc
			}
		}

		if i > 0 {
			compiled.WriteByte('.')
			lookup += "."
		}
		compiled.WriteString(esc)
		lookup += escapeSegment(seg)
	}
	return compiled.String(), true
}
