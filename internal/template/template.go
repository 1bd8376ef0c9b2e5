// SPDX-License-Identifier: Apache-2.0

package template

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

type (
	// Template is one header template together with its compiled
	// matching pattern. Templates are built once at load time and are
	// immutable afterwards, so a single instance is safely shared
	// across all files of a run.
	Template struct {
		text    string
		pattern *regexp.Regexp
	}

	// Registry maps lookup keys to templates. Lookup is two-tier:
	// exact filenames override extension-keyed templates, so an
	// extension that happens to spell "BUILD" can never shadow the
	// BUILD file rule.
	Registry struct {
		byName map[string]*Template
		byExt  map[string]*Template
	}
)

// Text returns the template body, normalized to exactly one trailing
// newline.
func (t *Template) Text() string { return t.text }

// Matches reports whether the header window starts with this template,
// with {year} matching exactly four digits and {author} matching any
// run of characters.
func (t *Template) Matches(window string) bool {
	return t.pattern.MatchString(window)
}

// Render substitutes the {year} and {author} placeholders with concrete
// values, producing the text written into a repaired file.
func (t *Template) Render(year int, author string) string {
	return strings.NewReplacer(
		yearPlaceholder, strconv.Itoa(year),
		authorPlaceholder, author,
	).Replace(t.text)
}

func newRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Template),
		byExt:  make(map[string]*Template),
	}
}

func (r *Registry) add(keys []string, text string) error {
	pattern, err := compilePattern(text)
	if err != nil {
		return err
	}
	t := &Template{text: text, pattern: pattern}
	for _, key := range keys {
		if key == exactNameBuild {
			r.byName[key] = t
			continue
		}
		r.byExt[key] = t
	}
	return nil
}

// exactNameBuild is the one key registered by exact filename rather
// than by extension.
const exactNameBuild = "BUILD"

// Lookup resolves the template for a file path: exact filename first,
// then the extension without its leading dot. The second return value
// is false when no template is registered for the file.
func (r *Registry) Lookup(path string) (*Template, bool) {
	name := filepath.Base(path)
	if t, ok := r.byName[name]; ok {
		return t, true
	}
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	t, ok := r.byExt[ext]
	return t, ok
}

// Len returns the number of registered keys.
func (r *Registry) Len() int { return len(r.byName) + len(r.byExt) }
