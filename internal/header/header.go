// SPDX-License-Identifier: Apache-2.0

// Package header reads the bounded inspection window from the start of
// a file and detects interpreter (shebang) lines. Two interchangeable
// reader strategies exist: a direct one and a memory-mapped one that
// bounds cost on very large files. Both return the same logical result
// for well-formed text.
package header

// Window is the character budget inspected at the start of each file
// when searching for a header match.
const Window = 4 * 1024

// Reader produces the decoded header window of a file with the leading
// offset characters removed.
type Reader interface {
	ReadWindow(path string, offset int) (string, error)
}
