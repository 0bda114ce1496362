// Package confstore implements a concurrent configuration store over a
// JSON document addressed by slash-delimited paths.
//
// A Store owns one document and an optional source file. Values are
// read and written by paths of the form /path/to/val, where / denotes
// the document root and the empty path the root itself:
//
//	st := confstore.Open("config.json", true)
//	st.Set("/logfile", confstore.FromString("log.txt"))
//	name := confstore.ToString(st.Get("/logfile"), "")
//	_ = st.Close()
//
// Reads never fail; a path that cannot produce a value yields the
// discarded sentinel, which the typed converters turn into the
// caller's fallback. Writes are best-effort no-ops on faults. Only
// Persist reports an explicit error, since a failed flush is the one
// condition a caller must be able to react to.
//
// Documents are parsed permissively: // and /* */ comments and
// trailing commas are accepted on input and never written back.
package confstore
