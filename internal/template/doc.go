// SPDX-License-Identifier: Apache-2.0

// Package template loads copyright header templates and compiles them
// into anchored matching patterns.
//
// Template files use INI-like sections: a line of the form
// "[ext1,ext2,...]" starts a new template, and every following line up
// to the next section header is the template body for those keys. A key
// is normally a file extension without the leading dot; the literal key
// "BUILD" registers an exact-filename template instead, since Bazel
// BUILD files carry no extension.
//
// Template bodies may contain the {year} and {author} placeholders and
// follow a literal-by-default matching convention: every character
// matches itself unless prefixed with a backslash, which turns the
// following metacharacter into an active regular expression operator.
package template
