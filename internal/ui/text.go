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

// Package ui holds the two progress renderers (text and JSON) that consume
// dupekrill.Listener. Neither one is part of the core: the core only ever
// calls the interface.
package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/kornelski/dupe-krill"
	"github.com/kornelski/dupe-krill/internal/textfmt"
)

// TextListener prints one throttled progress line per wall-clock second plus
// one line per link/dupe event, in the teacher's terse Text style.
//
// Per-file progress is suppressed entirely when Out isn't a terminal (e.g.
// piped into a log file): a non-interactive consumer has no use for a line
// that's about to be overwritten, and it just bloats the log.
type TextListener struct {
	Out   io.Writer
	Quiet bool

	isTTY bool
	last  time.Time
}

var _ dupekrill.Listener = (*TextListener)(nil)

// NewTextListener wraps out, detecting whether it's an interactive terminal
// so per-file progress lines can be skipped when it isn't.
func NewTextListener(out io.Writer, quiet bool) *TextListener {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = terminal.IsTerminal(int(f.Fd()))
	}
	return &TextListener{Out: out, Quiet: quiet, isTTY: isTTY}
}

func (t *TextListener) FileScanned(path string, stats dupekrill.Stats) {
	if t.Quiet || !t.isTTY {
		return
	}
	now := time.Now()
	if !t.last.IsZero() && now.Sub(t.last) < time.Second {
		return
	}
	t.last = now

	fmt.Fprintf(t.Out, "%d+%d dupes. %d+%d files scanned. %s/…\n",
		stats.Dupes, stats.Hardlinks+stats.Reflinks,
		stats.Added, stats.Skipped,
		filepath.Dir(path))
}

func (t *TextListener) DuplicateFound(src, dst string) {
	if t.Quiet {
		return
	}
	fmt.Fprintf(t.Out, "Found dupe %s\n", textfmt.CombinedPaths(dst, src))
}

func (t *TextListener) Hardlinked(src, dst string) {
	if t.Quiet {
		return
	}
	fmt.Fprintf(t.Out, "Hardlinked %s\n", textfmt.CombinedPaths(dst, src))
}

func (t *TextListener) Reflinked(src, dst string) {
	if t.Quiet {
		return
	}
	fmt.Fprintf(t.Out, "Reflinked %s\n", textfmt.CombinedPaths(dst, src))
}

func (t *TextListener) ScanOver(stats dupekrill.Stats, duration time.Duration) {
	if t.Quiet {
		return
	}
	fmt.Fprintf(t.Out, "%d+%d dupes. %d+%d files scanned. %s saved. Done in %s.\n",
		stats.Dupes, stats.Hardlinks+stats.Reflinks,
		stats.Added, stats.Skipped,
		humanize.Bytes(stats.BytesSavedByHardlinks+stats.BytesSavedByReflinks),
		duration.Round(time.Millisecond))
}
