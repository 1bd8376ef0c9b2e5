// SPDX-License-Identifier: Apache-2.0

// Package textenc resolves IANA text encoding names and provides the
// decode/encode plumbing used by every file read and write path. The
// checker treats file content as a character stream in a caller-chosen
// encoding; this package is where characters meet bytes.
package textenc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DefaultName is the encoding assumed when the caller does not pick one.
const DefaultName = "utf-8"

// Encoding wraps a resolved text encoding. A nil inner encoding means
// UTF-8 and takes a fast path that skips the transform layer entirely.
type Encoding struct {
	name string
	enc  encoding.Encoding
}

// Resolve looks up an encoding by its IANA name (e.g. "utf-8",
// "iso-8859-1", "utf-16le"). Lookup is case-insensitive.
func Resolve(name string) (*Encoding, error) {
	if name == "" {
		name = DefaultName
	}
	if isUTF8(name) {
		return &Encoding{name: DefaultName}, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return &Encoding{name: name, enc: enc}, nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return true
	}
	return false
}

// Name returns the encoding name as resolved.
func (e *Encoding) Name() string { return e.name }

// NewReader wraps r so that reads yield UTF-8 text decoded from the
// source encoding.
func (e *Encoding) NewReader(r io.Reader) io.Reader {
	if e.enc == nil {
		return r
	}
	return transform.NewReader(r, e.enc.NewDecoder())
}

// NewWriter wraps w so that UTF-8 writes are encoded back into the
// target encoding. The returned writer must be closed to flush any
// buffered transform state.
func (e *Encoding) NewWriter(w io.Writer) io.WriteCloser {
	if e.enc == nil {
		return nopWriteCloser{w}
	}
	return transform.NewWriter(w, e.enc.NewEncoder())
}

// EncodedLen reports the byte length of s once encoded.
func (e *Encoding) EncodedLen(s string) (int, error) {
	if e.enc == nil {
		return len(s), nil
	}
	out, _, err := transform.String(e.enc.NewEncoder(), s)
	if err != nil {
		return 0, fmt.Errorf("encode %q as %s: %w", s, e.name, err)
	}
	return len(out), nil
}

// DecodeBytes converts raw bytes in the source encoding to a UTF-8 string.
func (e *Encoding) DecodeBytes(b []byte) (string, error) {
	if e.enc == nil {
		return string(b), nil
	}
	out, _, err := transform.Bytes(e.enc.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("decode %s bytes: %w", e.name, err)
	}
	return string(out), nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
