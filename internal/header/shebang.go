// SPDX-License-Identifier: Apache-2.0

package header

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/qorix-group/tooling/internal/textenc"
)

// shebangMarker opens an interpreter line.
const shebangMarker = "#!"

// DetectShebangOffset returns the encoded byte length of a file's
// interpreter line, including any blank lines directly following it,
// or 0 when the file does not start with "#!". Detection is a
// best-effort heuristic: I/O failures are logged at debug level and
// reported as "no shebang".
func DetectShebangOffset(path string, enc *textenc.Encoding) int {
	f, err := os.Open(path)
	if err != nil {
		slog.Debug("could not detect shebang", "path", path, "error", err)
		return 0
	}
	defer f.Close()

	br := bufio.NewReader(enc.NewReader(f))
	firstLine, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		slog.Debug("could not detect shebang", "path", path, "error", err)
		return 0
	}
	if !strings.HasPrefix(firstLine, shebangMarker) {
		return 0
	}

	byteLen, err := enc.EncodedLen(firstLine)
	if err != nil {
		slog.Debug("could not detect shebang", "path", path, "error", err)
		return 0
	}
	// Blank lines between the shebang and the header belong to the
	// offset as well.
	for {
		r, _, err := br.ReadRune()
		if err != nil || (r != '\n' && r != '\r') {
			break
		}
		n, err := enc.EncodedLen(string(r))
		if err != nil {
			break
		}
		byteLen += n
	}

	slog.Debug("detected shebang", "path", path, "offset", byteLen)
	return byteLen
}
