// SPDX-License-Identifier: Apache-2.0

// Package collect expands the caller's input paths into the flat file
// list the checker runs over.
package collect

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Collect resolves a mix of file and directory inputs into file paths.
// Directories are walked recursively; empty files are skipped there.
// When exts is non-nil only files whose extension (without the leading
// dot) appears in it are kept, plus files literally named BUILD when
// "BUILD" is listed. An input that is neither file nor directory is
// skipped with a warning; the run continues.
func Collect(inputs, exts []string) ([]string, error) {
	var files []string
	slog.Debug("collecting inputs", "extensions", exts)
	for _, input := range inputs {
		info, err := os.Stat(input)
		switch {
		case err == nil && info.IsDir():
			slog.Debug("processing directory", "path", input)
			found, err := fromDir(input, exts)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		case err == nil && info.Mode().IsRegular() && wanted(input, exts):
			slog.Debug("processing file", "path", input)
			files = append(files, input)
		case err == nil && info.Mode().IsRegular():
			// Filtered out by extension; not worth a warning.
		default:
			slog.Warn("skipped input, not a valid file or directory", "path", input)
		}
	}
	return files, nil
}

func fromDir(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() == 0 || !wanted(path, exts) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return files, nil
}

// wanted applies the extension filter. A nil filter keeps everything.
func wanted(path string, exts []string) bool {
	if exts == nil {
		return true
	}
	name := filepath.Base(path)
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return slices.Contains(exts, ext) ||
		(name == "BUILD" && slices.Contains(exts, "BUILD"))
}
