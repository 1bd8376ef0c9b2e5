// SPDX-License-Identifier: Apache-2.0

// Package fixer rewrites files in place to insert a rendered copyright
// header, optionally stripping a previously inserted bad header first.
// Every mutation is staged: the original content is copied to a
// temporary file before the target is touched, and full-file operations
// stream in fixed-size chunks so memory use stays bounded regardless of
// file size.
package fixer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/qorix-group/tooling/internal/textenc"
)

// chunkSize is the streaming buffer size for staging and rewriting.
const chunkSize = 4096

// Fixer mutates files using a fixed text encoding.
type Fixer struct {
	enc *textenc.Encoding
}

// OffsetMismatchError reports that the caller-supplied insertion offset
// disagrees with the byte length of the staged copy's first line. The
// fix for that file is aborted before any write; the file is left
// unmodified.
type OffsetMismatchError struct {
	Path string
	Got  int
	Want int
}

func (e *OffsetMismatchError) Error() string {
	return fmt.Sprintf("%s: invalid offset value %d, expected %d", e.Path, e.Got, e.Want)
}

// New returns a Fixer writing in the given encoding.
func New(enc *textenc.Encoding) *Fixer {
	return &Fixer{enc: enc}
}

// stage copies the file's entire content into a fresh temporary file,
// streamed in fixed-size chunks. The caller removes the returned path.
func (f *Fixer) stage(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s for staging: %w", path, err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "crcheck-stage-*")
	if err != nil {
		return "", fmt.Errorf("create staging file: %w", err)
	}
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(tmp, src, buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("stage %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close staging file: %w", err)
	}
	return tmp.Name(), nil
}

// RemoveLeading strips the first n characters from the file and moves
// the remainder over the original. This is a destructive operation
// gated by an explicit non-zero count; it exists to correct previously
// malformed headers, not for routine use.
func (f *Fixer) RemoveLeading(path string, n int) error {
	if n < 0 {
		return fmt.Errorf("remove offset must not be negative, got %d", n)
	}

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	br := bufio.NewReader(f.enc.NewReader(src))
	for i := 0; i < n; i++ {
		if _, _, err := br.ReadRune(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("skip leading characters of %s: %w", path, err)
		}
	}

	// Build the replacement next to the target so the final rename
	// stays on one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".crcheck-*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := f.enc.NewWriter(tmp)
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(w, br, buf); err != nil {
		tmp.Close()
		return fmt.Errorf("copy remainder of %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush remainder of %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}
	if err := preserveMode(path, tmp.Name()); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	slog.Debug("removed leading characters", "path", path, "chars", n)
	return nil
}

// Insert writes the rendered header into the file at the given
// character offset. With a non-zero offset the first line (typically a
// shebang) is preserved unchanged ahead of the header; the offset must
// then equal the recomputed byte length of the staged copy's first
// line, otherwise the fix is aborted with an OffsetMismatchError and
// the file stays untouched.
func (f *Fixer) Insert(path, headerText string, offset int) error {
	staged, err := f.stage(path)
	if err != nil {
		return err
	}
	defer os.Remove(staged)

	sf, err := os.Open(staged)
	if err != nil {
		return fmt.Errorf("open staged copy: %w", err)
	}
	defer sf.Close()

	br := bufio.NewReader(f.enc.NewReader(sf))
	firstLine, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read first line of %s: %w", path, err)
	}
	firstLineLen, err := f.enc.EncodedLen(firstLine)
	if err != nil {
		return err
	}
	if offset > 0 && offset != firstLineLen {
		return &OffsetMismatchError{Path: path, Got: offset, Want: firstLineLen}
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	if err := f.writeWithHeader(dst, br, firstLine, headerText, offset); err != nil {
		dst.Close()
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	slog.Info("fixed missing header", "path", path)
	return nil
}

// writeWithHeader assembles the new file content: with a positive
// offset the first line stays in front of the header, otherwise the
// header goes first. The rest of the staged copy is streamed behind it.
func (f *Fixer) writeWithHeader(dst io.Writer, rest io.Reader, firstLine, headerText string, offset int) error {
	w := f.enc.NewWriter(dst)
	parts := []string{headerText, firstLine}
	if offset > 0 {
		parts = []string{firstLine, headerText}
	}
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(w, rest, buf); err != nil {
		return err
	}
	return w.Close()
}

func preserveMode(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod %s: %w", dst, err)
	}
	return nil
}
