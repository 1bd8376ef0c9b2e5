// SPDX-License-Identifier: Apache-2.0

// Package testutil provides helper functions for tests that handle
// errors appropriately, reducing boilerplate and ensuring consistent
// error handling.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MustWriteFile writes content to name inside dir and returns the full
// path. The test fails immediately if the write fails.
func MustWriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// MustReadFile returns the content of path as a string. The test fails
// immediately if the read fails.
func MustReadFile(t testing.TB, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(content)
}
