// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qorix-group/tooling/internal/checker"
)

// printSummary writes the end-of-run report: the missing-header total,
// and in fix mode the fixed / not-fixed split. Counters are green when
// they signal a clean state and red otherwise.
func printSummary(w io.Writer, res checker.Result, fixMode bool) {
	rule := strings.Repeat("=", 64)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Process completed.")
	fmt.Fprintf(w, "Total files without copyright: %s\n", countStyle(res.NoCopyright).Render(strconv.Itoa(res.NoCopyright)))
	if fixMode {
		notFixed := res.NoCopyright - res.Fixed
		fmt.Fprintf(w, "Total files that were fixed: %s\n", SuccessStyle.Render(strconv.Itoa(res.Fixed)))
		fmt.Fprintf(w, "Total files that were NOT fixed: %s\n", countStyle(notFixed).Render(strconv.Itoa(notFixed)))
	}
	fmt.Fprintln(w, rule)
}

func countStyle(n int) lipgloss.Style {
	if n > 0 {
		return ErrorStyle
	}
	return SuccessStyle
}
