package confstore

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/telnet2/go-confstore/internal/fsio"
	"github.com/telnet2/go-confstore/pkg/errcode"
)

// emptyDoc is the serialization of a fresh document.
const emptyDoc = "{}"

// prettyOptions controls human-readable serialization.
var prettyOptions = &pretty.Options{Indent: "    ", Width: 80}

// Store is a thread-safe configuration document addressed by
// slash-delimited paths.
//
// The document is held as dense JSON text; every read copies the
// resolved node out, so callers never hold references into the store.
// Concurrent readers proceed in parallel, a writer excludes everybody
// else, and a write that completes is observed in full by every later
// read.
//
// A store is either healthy or not. While unhealthy, reads return the
// discarded sentinel, writes are no-ops, and only Reset brings the
// store back. None of the methods panic; internal faults degrade to
// the sentinel, to a no-op, or to an error code, depending on the
// operation.
type Store struct {
	mu             sync.RWMutex
	doc            string
	path           string
	healthy        atomic.Bool
	persistOnClose bool
}

// New returns an empty, healthy store with no backing file.
func New() *Store {
	s := &Store{doc: emptyDoc}
	s.healthy.Store(true)
	return s
}

// Open returns a store backed by the file at path, which is recorded
// as the store's source path for later Persist and Close calls.
//
// The file is read as text and parsed permissively: comments and
// trailing commas are accepted. If the file cannot be read, the store
// keeps its default empty document and stays healthy. If the contents
// do not parse, the document is reset to empty and the store likewise
// stays healthy. Only an unexpected internal fault during the sequence
// marks the store unhealthy.
//
// When persistOnClose is set and path is non-empty, Close flushes the
// document back to path.
func Open(path string, persistOnClose bool) (s *Store) {
	s = &Store{doc: emptyDoc, path: path, persistOnClose: persistOnClose}
	s.healthy.Store(true)
	if path == "" {
		return s
	}

	defer func() {
		if recover() != nil {
			s.doc = emptyDoc
			s.healthy.Store(false)
		}
	}()

	data, err := fsio.ReadFile(path, false)
	if err != nil {
		return s
	}

	clean := jsonc.ToJSON(data)
	if !gjson.ValidBytes(clean) {
		return s
	}
	s.doc = string(pretty.Ugly(clean))
	return s
}

// IsHealthy reports whether the store is in its normal state.
func (s *Store) IsHealthy() bool {
	return s.healthy.Load()
}

// SourcePath returns the file path the store was constructed with, or
// the empty string for a store created without one.
func (s *Store) SourcePath() string {
	return s.path
}

// Get returns a copy of the value at path.
//
// Get never fails: an unhealthy store, a malformed path, or a path
// that does not resolve all yield the discarded sentinel.
func (s *Store) Get(path string) (val Value) {
	defer func() {
		if recover() != nil {
			val = Value{}
		}
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.healthy.Load() {
		return Value{}
	}
	segs, ok := splitPointer(path)
	if !ok {
		return Value{}
	}
	if len(segs) == 0 {
		return valueOf(gjson.Parse(s.doc))
	}
	res := gjson.Get(s.doc, lookupPath(segs))
	if !res.Exists() {
		return Value{}
	}
	return valueOf(res)
}

// Set writes a copy of val at path, creating missing intermediate
// object nodes along the way. Existing array elements are addressed by
// integer segments; "-" or the index one past the end appends.
//
// Set never fails: on an unhealthy store, a malformed path, a
// discarded value, or an internal fault it does nothing.
func (s *Store) Set(path string, val Value) {
	defer func() {
		_ = recover()
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.healthy.Load() || val.IsDiscarded() {
		return
	}
	segs, ok := splitPointer(path)
	if !ok {
		return
	}
	if len(segs) == 0 {
		// Root assignment replaces the whole document.
		s.doc = val.raw
		return
	}
	wpath, ok := writePath(s.doc, segs)
	if !ok {
		return
	}
	doc, err := sjson.SetRaw(s.doc, wpath, val.raw)
	if err != nil {
		return
	}
	s.doc = doc
}

// Serialize returns the document as JSON text: dense when prettyPrint
// is false, indented with four spaces otherwise. An unhealthy store
// serializes as the empty document "{}".
func (s *Store) Serialize(prettyPrint bool) (out string) {
	defer func() {
		if recover() != nil {
			out = emptyDoc
		}
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.healthy.Load() {
		return emptyDoc
	}
	if !prettyPrint {
		return s.doc
	}
	return string(pretty.PrettyOptions([]byte(s.doc), prettyOptions))
}

// Persist writes the dense serialization of the document to a file.
// An explicit non-empty path overrides the store's source path; when
// neither is present Persist fails with errcode.ErrInvalidParameter,
// and on an unhealthy store with errcode.ErrInvalidState.
//
// The write happens under a read lock: concurrent readers proceed,
// writers wait for the flush to finish.
func (s *Store) Persist(path string, appendMode bool) (err error) {
	defer func() {
		if recover() != nil {
			err = fmt.Errorf("%w: %s", errcode.ErrWriteFile, "internal fault during persist")
		}
	}()

	target := path
	if target == "" {
		target = s.path
	}
	if target == "" {
		return errcode.ErrInvalidParameter
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.healthy.Load() {
		return errcode.ErrInvalidState
	}
	return fsio.WriteFile(target, []byte(s.doc), false, appendMode)
}

// Reset replaces the document with a fresh empty one and forces the
// store back to healthy, whatever its prior state. The disk file, if
// any, is not touched.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = emptyDoc
	s.healthy.Store(true)
}

// Close flushes the document to the source path when the store was
// opened with persistOnClose and a path. The flush is best-effort; its
// error is returned so the owner may log it, and the store remains
// usable afterwards.
func (s *Store) Close() error {
	if !s.persistOnClose || s.path == "" {
		return nil
	}
	return s.Persist("", false)
}
