// SPDX-License-Identifier: Apache-2.0

package template

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Load reads a template file and returns a registry of compiled
// templates. Content before the first section header is ignored (no
// keys are registered for it yet). Each template body is stripped of
// trailing blank lines and stored with exactly one trailing newline.
//
// Opening or reading the file, and compiling any template, fails the
// whole load: a broken template file is a configuration error and must
// abort before any input file is touched.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template file: %w", err)
	}
	defer f.Close()

	reg := newRegistry()
	var (
		keys []string
		body strings.Builder
	)

	flush := func() error {
		if len(keys) == 0 {
			return nil
		}
		text := strings.TrimRight(body.String(), " \t\r\n") + "\n"
		if err := reg.add(keys, text); err != nil {
			return fmt.Errorf("template %v: %w", keys, err)
		}
		return nil
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			if err := flush(); err != nil {
				return nil, err
			}
			body.Reset()
			keys = splitKeys(trimmed[1 : len(trimmed)-1])
			slog.Debug("template section", "keys", keys)
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read template file: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	slog.Debug("loaded templates", "path", path, "keys", reg.Len())
	return reg, nil
}

func splitKeys(s string) []string {
	parts := strings.Split(s, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		keys = append(keys, strings.TrimSpace(p))
	}
	return keys
}
