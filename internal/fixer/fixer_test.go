// SPDX-License-Identifier: Apache-2.0

package fixer

import (
	"errors"
	"strings"
	"testing"

	"github.com/qorix-group/tooling/internal/testutil"
	"github.com/qorix-group/tooling/internal/textenc"
)

func newFixer(t *testing.T) *Fixer {
	t.Helper()
	enc, err := textenc.Resolve("utf-8")
	if err != nil {
		t.Fatalf("Resolve(utf-8) returned error: %v", err)
	}
	return New(enc)
}

func TestInsert_AtStart(t *testing.T) {
	fx := newFixer(t)
	path := testutil.MustWriteFile(t, t.TempDir(), "file.py", "print('hi')\n")

	if err := fx.Insert(path, "# Copyright (c) 2026 Author\n", 0); err != nil {
		t.Fatalf("Insert() returned error: %v", err)
	}

	got := testutil.MustReadFile(t, path)
	want := "# Copyright (c) 2026 Author\nprint('hi')\n"
	if got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}

func TestInsert_AfterShebang(t *testing.T) {
	fx := newFixer(t)
	shebang := "#!/usr/bin/env python3\n"
	path := testutil.MustWriteFile(t, t.TempDir(), "file.py", shebang+"print('hi')\n")

	if err := fx.Insert(path, "# header\n", len(shebang)); err != nil {
		t.Fatalf("Insert() returned error: %v", err)
	}

	got := testutil.MustReadFile(t, path)
	want := shebang + "# header\nprint('hi')\n"
	if got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
	if !strings.HasPrefix(got, shebang) {
		t.Error("interpreter line must stay the first line of the file")
	}
}

func TestInsert_EmptyFile(t *testing.T) {
	fx := newFixer(t)
	path := testutil.MustWriteFile(t, t.TempDir(), "file.py", "")

	if err := fx.Insert(path, "# header\n", 0); err != nil {
		t.Fatalf("Insert() returned error: %v", err)
	}
	if got := testutil.MustReadFile(t, path); got != "# header\n" {
		t.Errorf("file content = %q, want just the header", got)
	}
}

func TestInsert_OffsetMismatchLeavesFileUntouched(t *testing.T) {
	fx := newFixer(t)
	content := "#!/usr/bin/env python3\nprint('hi')\n"
	path := testutil.MustWriteFile(t, t.TempDir(), "file.py", content)

	err := fx.Insert(path, "# header\n", 5) // first line is 23 bytes
	if err == nil {
		t.Fatal("Insert() with a wrong offset should return an error")
	}
	var mismatch *OffsetMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want *OffsetMismatchError", err)
	}
	if mismatch.Got != 5 || mismatch.Want != len("#!/usr/bin/env python3\n") {
		t.Errorf("mismatch = got %d want %d, expected got 5 want %d",
			mismatch.Got, mismatch.Want, len("#!/usr/bin/env python3\n"))
	}

	if got := testutil.MustReadFile(t, path); got != content {
		t.Errorf("file was modified on aborted fix: %q", got)
	}
}

func TestInsert_LargeFileStreamsCompletely(t *testing.T) {
	fx := newFixer(t)
	body := strings.Repeat("0123456789abcdef\n", 3000) // well past one chunk
	path := testutil.MustWriteFile(t, t.TempDir(), "file.py", body)

	if err := fx.Insert(path, "# header\n", 0); err != nil {
		t.Fatalf("Insert() returned error: %v", err)
	}
	if got := testutil.MustReadFile(t, path); got != "# header\n"+body {
		t.Errorf("file content length = %d, want %d", len(got), len("# header\n")+len(body))
	}
}

func TestRemoveLeading(t *testing.T) {
	fx := newFixer(t)
	path := testutil.MustWriteFile(t, t.TempDir(), "file.py", "OLD HEADER\nreal content\n")

	if err := fx.RemoveLeading(path, len("OLD HEADER\n")); err != nil {
		t.Fatalf("RemoveLeading() returned error: %v", err)
	}
	if got := testutil.MustReadFile(t, path); got != "real content\n" {
		t.Errorf("file content = %q, want %q", got, "real content\n")
	}
}

func TestRemoveLeading_PastEndYieldsEmptyFile(t *testing.T) {
	fx := newFixer(t)
	path := testutil.MustWriteFile(t, t.TempDir(), "file.py", "short\n")

	if err := fx.RemoveLeading(path, 100); err != nil {
		t.Fatalf("RemoveLeading() returned error: %v", err)
	}
	if got := testutil.MustReadFile(t, path); got != "" {
		t.Errorf("file content = %q, want empty", got)
	}
}

func TestRemoveLeading_NegativeCount(t *testing.T) {
	fx := newFixer(t)
	path := testutil.MustWriteFile(t, t.TempDir(), "file.py", "content\n")

	if err := fx.RemoveLeading(path, -1); err == nil {
		t.Error("RemoveLeading() with a negative count should return an error")
	}
}
