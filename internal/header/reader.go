// SPDX-License-Identifier: Apache-2.0

package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/exp/mmap"

	"github.com/qorix-group/tooling/internal/textenc"
)

type (
	// DirectReader opens the file and decodes window+offset characters
	// from its start.
	DirectReader struct {
		enc    *textenc.Encoding
		window int
	}

	// MappedReader memory-maps the leading bytes of the file instead
	// of reading it through the runtime's buffered I/O. The result is
	// identical to DirectReader on well-formed text; the strategy
	// exists to bound memory and CPU cost on gigabyte-range files.
	MappedReader struct {
		enc    *textenc.Encoding
		window int
	}
)

// NewDirectReader returns a direct reader with the given window budget.
// A window of 0 means the default Window.
func NewDirectReader(enc *textenc.Encoding, window int) *DirectReader {
	if window == 0 {
		window = Window
	}
	return &DirectReader{enc: enc, window: window}
}

// NewMappedReader returns a memory-mapped reader with the given window
// budget. A window of 0 means the default Window.
func NewMappedReader(enc *textenc.Encoding, window int) *MappedReader {
	if window == 0 {
		window = Window
	}
	return &MappedReader{enc: enc, window: window}
}

// ReadWindow reads up to window+offset characters from the start of the
// file and returns them with the leading offset characters removed.
func (r *DirectReader) ReadWindow(path string, offset int) (string, error) {
	total := r.window + offset
	slog.Debug("reading header window", "path", path, "chars", total, "encoding", r.enc.Name())

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(r.enc.NewReader(f))
	var b strings.Builder
	for i := 0; i < total; i++ {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		b.WriteRune(ch)
	}
	return dropLeading(b.String(), offset), nil
}

// ReadWindow maps the first window+offset bytes of the file (clamped to
// its size), decodes them, and returns the result with the leading
// offset characters removed. An empty file yields an empty string and a
// warning, not an error.
func (r *MappedReader) ReadWindow(path string, offset int) (string, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return "", fmt.Errorf("map %s: %w", path, err)
	}
	defer m.Close()

	length := r.window + offset
	if size := m.Len(); size < length {
		length = size
	}
	if length == 0 {
		slog.Warn("file is empty, returning empty header window", "path", path)
		return "", nil
	}

	slog.Debug("memory mapping header window", "path", path, "bytes", length)
	buf := make([]byte, length)
	if _, err := m.ReadAt(buf, 0); err != nil {
		return "", fmt.Errorf("read mapped %s: %w", path, err)
	}
	text, err := r.enc.DecodeBytes(buf)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return dropLeading(text, offset), nil
}

// dropLeading removes the first n characters of s, or everything when s
// is shorter than n.
func dropLeading(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[n:])
}
