// SPDX-License-Identifier: Apache-2.0

// Package issue holds the user-facing remediation notices the CLI
// renders as markdown. Keeping them here, away from the checker, means
// the core stays silent apart from structured logs and counters.
package issue

import "github.com/charmbracelet/glamour"

type Id int

const (
	MissingHeaderId Id = iota + 1
	RemoveOffsetDangerId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	missingHeaderIssue = &Issue{
		id: MissingHeaderId,
		mdMsg: `
# Files are missing their copyright header

One or more files do not start with the required header.

## How to repair them
Run the same command again with the fix flag:
~~~
$ crcheck --fix -t <template-file> <inputs>
~~~
The header is inserted in place, after any interpreter line.`,
	}

	removeOffsetDangerIssue = &Issue{
		id: RemoveOffsetDangerId,
		mdMsg: `
# !------DANGER ZONE------!

Remove offset set! This can **REMOVE** parts of source files!

Use ONLY if an invalid copyright header is present that needs to be
removed before the correct one is inserted.`,
	}

	issues = map[Id]*Issue{
		MissingHeaderId:      missingHeaderIssue,
		RemoveOffsetDangerId: removeOffsetDangerIssue,
	}
)

// Lookup returns the issue registered under id, or nil.
func Lookup(id Id) *Issue {
	return issues[id]
}
