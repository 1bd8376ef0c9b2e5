// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/qorix-group/tooling/internal/checker"
	"github.com/qorix-group/tooling/internal/collect"
	"github.com/qorix-group/tooling/internal/config"
	"github.com/qorix-group/tooling/internal/issue"
	"github.com/qorix-group/tooling/internal/template"
	"github.com/qorix-group/tooling/internal/textenc"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	templateFile string
	configFile   string
	verbose      bool
	logFile      string
	extensions   []string
	useMemoryMap bool
	fix          bool
	encodingName string
	offset       int
	removeOffset int

	rootCmd = &cobra.Command{
		Use:   "crcheck [flags] inputs...",
		Short: "Check files for required copyright headers",
		Long: TitleStyle.Render("crcheck") + SubtitleStyle.Render(" - copyright header compliance checker") + `

crcheck verifies that source files begin with the copyright header
registered for their extension and, with --fix, repairs files that
lack one. Interpreter (shebang) lines are detected automatically and
preserved as the first line of repaired files.

` + SubtitleStyle.Render("Examples:") + `
  crcheck -t templates.ini src/            Report missing headers
  crcheck -t templates.ini --fix src/      Insert missing headers
  crcheck -t templates.ini -e py -e sh .   Only check .py and .sh files
  crcheck -t templates.ini @filelist.txt   Read inputs from a file`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&templateFile, "template-file", "t", "", "path to the template file")
	flags.StringVarP(&configFile, "config-file", "c", "", "path to the JSON config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging level")
	flags.StringVarP(&logFile, "log-file", "l", "", "redirect logs from stderr to this file")
	flags.StringSliceVarP(&extensions, "extensions", "e", nil, "extensions to filter when searching for files, e.g. 'h,cpp'")
	flags.BoolVar(&useMemoryMap, "use-memory-map", false, "use a memory map for reading file content (for gigabyte-range files)")
	flags.BoolVarP(&fix, "fix", "f", false, "fix missing copyright headers by inserting them")
	flags.StringVar(&encodingName, "encoding", textenc.DefaultName, "file encoding")
	flags.IntVar(&offset, "offset", 0, "additional length offset to account for characters like a shebang")
	flags.IntVar(&removeOffset, "remove-offset", 0, "offset to remove an old header from the beginning of the file (only with --fix)")
	cobra.CheckErr(rootCmd.MarkFlagRequired("template-file"))
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	closeLogs, err := setupLogging(verbose, logFile)
	if err != nil {
		return err
	}
	defer closeLogs()

	enc, err := textenc.Resolve(encodingName)
	if err != nil {
		return err
	}
	registry, err := template.Load(templateFile)
	if err != nil {
		return fmt.Errorf("failed to load copyright templates: %w", err)
	}
	author, err := config.Author(configFile)
	if err != nil {
		return err
	}
	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}
	files, err := collect.Collect(inputs, extensionFilter())
	if err != nil {
		return err
	}

	if fix && removeOffset != 0 {
		printIssue(cmd, issue.RemoveOffsetDangerId)
	}

	res, err := checker.Run(files, checker.Options{
		Templates:    registry,
		Encoding:     enc,
		Author:       author,
		Fix:          fix,
		UseMmap:      useMemoryMap,
		Offset:       offset,
		RemoveOffset: removeOffset,
	})
	if err != nil {
		return err
	}

	printSummary(cmd.ErrOrStderr(), res, fix)
	if res.NoCopyright > 0 {
		if !fix {
			printIssue(cmd, issue.MissingHeaderId)
		}
		// Nonzero exit signals "files were non-compliant at scan time"
		// even when --fix repaired all of them.
		return &ExitError{Code: 1}
	}
	return nil
}

// extensionFilter returns the extension filter, or nil when no
// --extensions flag was given (meaning: keep every file).
func extensionFilter() []string {
	if len(extensions) == 0 {
		return nil
	}
	return extensions
}

// printIssue renders a remediation notice as markdown, falling back to
// the raw text when rendering fails (e.g. dumb terminals).
func printIssue(cmd *cobra.Command, id issue.Id) {
	i := issue.Lookup(id)
	if i == nil {
		return
	}
	out, err := i.Render("auto")
	if err != nil {
		out = string(i.MarkdownMsg())
	}
	fmt.Fprintln(cmd.ErrOrStderr(), out)
}
