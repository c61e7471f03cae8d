// Copyright © 2015 Kornel Lesiński <kornel@geekhood.net>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package cli builds the cobra command that drives dupekrill: flag
// parsing only. It hands back a fully-resolved Invocation for main to run,
// and never touches the scanner directly.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kornelski/dupe-krill"
	"github.com/kornelski/dupe-krill/internal/config"
)

// Invocation is everything main needs to run one scan.
type Invocation struct {
	Options dupekrill.Options
	Paths   []string
	Quiet   bool
	JSON    bool
}

// UsageError marks a failure in the invocation itself — an unknown flag, a
// bad flag value, or a missing path argument — rather than one encountered
// while actually running a scan. Nothing has touched the filesystem yet
// when one of these is returned. main uses IsUsageError to pick exit code
// 2 over the generic 1.
type UsageError struct {
	err error
}

func (e *UsageError) Error() string { return e.err.Error() }
func (e *UsageError) Unwrap() error { return e.err }

// IsUsageError reports whether err (or something it wraps) is a UsageError.
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

const version = "1.0.0"

// Version returns the tool's version string, for use in e.g. the JSON
// listener's "creator" field.
func Version() string { return version }

// Parse builds the root command, parses args, and returns the resolved
// invocation. A nil error with a nil Invocation means a subcommand like
// --help already ran and printed its own output; the caller should exit 0.
func Parse(args []string) (*Invocation, error) {
	var (
		dryRun        bool
		small         bool
		quiet         bool
		exclude       []string
		asJSON        bool
		reflink       bool
		reflinkOrHard bool
	)

	inv := &Invocation{}

	root := &cobra.Command{
		Use:     "dupekrill [OPTIONS] path...",
		Version: version,
		Short:   "Find duplicate files and replace them with hardlinks (or reflinks)",
		Long: `dupekrill scans one or more paths for byte-identical files and replaces
the duplicates with hardlinks (or, with --reflink, copy-on-write clones),
reclaiming the disk space they'd otherwise waste.`,
		Args: func(cmd *cobra.Command, positional []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, positional); err != nil {
				return &UsageError{err: err}
			}
			return nil
		},
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			defaults, err := config.Load()
			if err != nil {
				return fmt.Errorf("dupekrill: loading config: %w", err)
			}

			opts := dupekrill.DefaultOptions()
			opts.IgnoreSmall = small || defaults.SmallFiles
			if defaults.MinSize > 0 {
				opts.MinFileSize = defaults.MinSize
			}
			opts.MaxFileSize = defaults.MaxSize
			opts.Exclude = config.Merge(defaults.Exclude, exclude)

			switch {
			case reflink:
				opts.RunMode = dupekrill.ModeReflink
			case reflinkOrHard:
				opts.RunMode = dupekrill.ModeReflinkOrHardlink
			case dryRun && asJSON:
				opts.RunMode = dupekrill.ModeDryRunNoMerging
			case dryRun:
				opts.RunMode = dupekrill.ModeDryRun
			}

			inv.Options = opts
			inv.Paths = positional
			inv.Quiet = quiet || defaults.Quiet
			inv.JSON = asJSON
			return nil
		},
	}

	flg := root.Flags()
	flg.BoolVarP(&dryRun, "dry-run", "d", false, "No filesystem mutation; dupes still reported")
	flg.BoolVarP(&small, "small", "s", false, "Disable the block-size gate; dedupe small files too")
	flg.BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	flg.StringArrayVarP(&exclude, "exclude", "e", nil, "Exact filename to skip (may repeat)")
	flg.BoolVar(&asJSON, "json", false, "Emit a single JSON document at scan end")
	flg.BoolVarP(&reflink, "reflink", "C", false, "Strict reflink; fail if the clone syscall fails")
	flg.BoolVarP(&reflinkOrHard, "reflink-or-hardlink", "c", false, "Try reflink, fall back to hardlink")
	flg.SortFlags = false

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{err: err}
	})
	root.SetArgs(args)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		return nil, err
	}
	if inv.Paths == nil {
		// --help, --version, or similar already ran.
		return nil, nil
	}
	return inv, nil
}
