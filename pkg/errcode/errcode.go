// Package errcode defines the failure codes shared by the confstore SDK.
//
// The SDK does not panic across its public boundary. Operations that can
// fail in a way the caller must react to return one of these sentinels,
// possibly wrapped; match with errors.Is.
package errcode

import "errors"

var (
	// ErrNoOperation reports that nothing was carried out. Not
	// necessarily an error (e.g. a zero-length write request).
	ErrNoOperation = errors.New("no operation")

	// ErrInvalidParameter reports bad caller input, such as an empty
	// file path or a nil buffer.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidState reports an operation attempted on an object that
	// is not in a usable state, such as persisting an unhealthy store.
	ErrInvalidState = errors.New("invalid state")

	// ErrOpenFile reports a failure to open a file stream.
	ErrOpenFile = errors.New("cannot open file")

	// ErrReadFile reports an I/O fault while reading an open file.
	ErrReadFile = errors.New("cannot read file")

	// ErrWriteFile reports an I/O fault while writing a file.
	ErrWriteFile = errors.New("cannot write file")
)
