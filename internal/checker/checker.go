// SPDX-License-Identifier: Apache-2.0

// Package checker drives the per-file check/fix decision over a file
// list and aggregates the run counters. Files are processed strictly
// sequentially; any I/O failure halts the run, while a header mismatch
// is a normal counted outcome and an offset-consistency failure only
// skips that file's fix.
package checker

import (
	"errors"
	"log/slog"
	"time"

	"github.com/qorix-group/tooling/internal/fixer"
	"github.com/qorix-group/tooling/internal/header"
	"github.com/qorix-group/tooling/internal/template"
	"github.com/qorix-group/tooling/internal/textenc"
)

type (
	// Options configures a run.
	Options struct {
		// Templates is the compiled template registry. Required.
		Templates *template.Registry
		// Encoding is the text encoding of all processed files. Required.
		Encoding *textenc.Encoding
		// Author is the resolved author substituted into repaired headers.
		Author string
		// Fix enables in-place repair of files missing their header.
		Fix bool
		// UseMmap selects the memory-mapped header reading strategy.
		UseMmap bool
		// Offset, when non-zero, is trusted as the effective offset for
		// every file and disables shebang auto-detection.
		Offset int
		// RemoveOffset, when non-zero in fix mode, strips that many
		// leading characters before inserting the header.
		RemoveOffset int
	}

	// Result aggregates the run counters. NoCopyright counts files that
	// were missing a valid header at scan time, Fixed counts files that
	// were successfully repaired. Both only ever increase during a run.
	Result struct {
		NoCopyright int
		Fixed       int
	}
)

// Run processes files one at a time, start to finish. See the package
// comment for the failure model.
func Run(files []string, opts Options) (Result, error) {
	var reader header.Reader = header.NewDirectReader(opts.Encoding, 0)
	if opts.UseMmap {
		reader = header.NewMappedReader(opts.Encoding, 0)
	}
	fx := fixer.New(opts.Encoding)

	var res Result
	for _, path := range files {
		tmpl, ok := opts.Templates.Lookup(path)
		if !ok {
			slog.Debug("skipped, no template for file", "path", path)
			continue
		}

		// An explicit caller offset is trusted over the heuristic.
		offset := opts.Offset
		if offset == 0 {
			offset = header.DetectShebangOffset(path, opts.Encoding)
		}

		window, err := reader.ReadWindow(path, offset)
		if err != nil {
			return res, err
		}
		if tmpl.Matches(window) {
			slog.Debug("file has copyright", "path", path)
			continue
		}

		res.NoCopyright++
		if !opts.Fix {
			slog.Error("missing copyright header, use --fix to introduce it", "path", path)
			continue
		}

		if opts.RemoveOffset != 0 {
			if err := fx.RemoveLeading(path, opts.RemoveOffset); err != nil {
				return res, err
			}
		}
		rendered := tmpl.Render(time.Now().Year(), opts.Author)
		if err := fx.Insert(path, rendered, offset); err != nil {
			var mismatch *fixer.OffsetMismatchError
			if errors.As(err, &mismatch) {
				// Safe failure: the file was left unmodified and counts
				// as not fixed.
				slog.Error("could not fix header", "path", path, "error", err)
				continue
			}
			return res, err
		}
		res.Fixed++
	}
	return res, nil
}
