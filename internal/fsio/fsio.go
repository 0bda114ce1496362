// Package fsio provides the file I/O layer used by the confstore SDK.
//
// Failures map onto the pkg/errcode taxonomy so callers can distinguish
// bad parameters from open faults and from read/write faults without
// inspecting error strings.
package fsio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/telnet2/go-confstore/pkg/errcode"
)

// ReadFile reads the full contents of the file at path.
//
// In text mode (binary == false) CRLF and lone CR line breaks are
// normalized to LF. An empty path returns ErrInvalidParameter, a file
// that cannot be opened returns ErrOpenFile, and a fault after opening
// returns ErrReadFile.
func ReadFile(path string, binary bool) ([]byte, error) {
	if path == "" {
		return nil, errcode.ErrInvalidParameter
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errcode.ErrOpenFile, path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errcode.ErrReadFile, path, err)
	}

	if !binary {
		data = normalizeNewlines(data)
	}
	return data, nil
}

// WriteFile writes data to the file at path, creating it if necessary.
// Unless appendMode is set, existing contents are discarded.
//
// An empty path or nil-equivalent target returns ErrInvalidParameter. A
// zero-length buffer returns ErrNoOperation, which is benign: nothing
// was written, but nothing failed either.
func WriteFile(path string, data []byte, binary, appendMode bool) error {
	if path == "" {
		return errcode.ErrInvalidParameter
	}
	if len(data) == 0 {
		return errcode.ErrNoOperation
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errcode.ErrOpenFile, path, err)
	}

	_, werr := f.Write(data)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("%w: %s: %v", errcode.ErrWriteFile, path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("%w: %s: %v", errcode.ErrWriteFile, path, cerr)
	}
	return nil
}

// normalizeNewlines rewrites CRLF and lone CR to LF.
func normalizeNewlines(data []byte) []byte {
	if !bytes.ContainsRune(data, '\r') {
		return data
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
}
