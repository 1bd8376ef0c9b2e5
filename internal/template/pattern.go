// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	yearPlaceholder   = "{year}"
	authorPlaceholder = "{author}"

	yearFragment   = `\d{4}`
	authorFragment = `.*`
)

// metacharacters are the regex operators a template may activate with a
// leading backslash. Everything else, backslash-prefixed or not, stays
// literal.
var metacharacters = map[rune]bool{
	'\\': true, '.': true, '*': true, '+': true, '-': true,
	'?': true, '[': true, ']': true, '{': true, '}': true,
	'(': true, ')': true, '^': true, '$': true, '|': true,
}

// compilePattern turns a template body into an anchored match pattern
// in a single forward scan: characters are copied as literals unless
// preceded by a backslash naming a metacharacter, and the {year} and
// {author} placeholders become pre-built regex fragments. The pattern
// is anchored at the start of the window only; trailing content never
// affects the match.
func compilePattern(text string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^(?:")
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], yearPlaceholder) {
			b.WriteString(yearFragment)
			i += len(yearPlaceholder)
			continue
		}
		if strings.HasPrefix(text[i:], authorPlaceholder) {
			b.WriteString(authorFragment)
			i += len(authorPlaceholder)
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\\' {
			next, nsize := utf8.DecodeRuneInString(text[i+size:])
			if metacharacters[next] {
				b.WriteRune(next)
				i += size + nsize
				continue
			}
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
		i += size
	}
	b.WriteByte(')')

	pattern, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compile header pattern: %w", err)
	}
	return pattern, nil
}
