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

package dupekrill

// RunMode selects what the merge planner and link-replacement protocol are
// allowed to do once a duplicate is found.
type RunMode int

const (
	// ModeHardlink replaces duplicates with hardlinks. The default.
	ModeHardlink RunMode = iota
	// ModeDryRun reports duplicates via the Listener but never touches the
	// filesystem; merges still happen in memory so the reported groups match
	// what a real run would produce.
	ModeDryRun
	// ModeDryRunNoMerging is like ModeDryRun but skips the in-memory merge
	// entirely, so no duplicate_found events are produced either. Used when
	// --json is combined with --dry-run.
	ModeDryRunNoMerging
	// ModeReflink requires the platform clone primitive to succeed; a failed
	// clone aborts that one merge instead of falling back to a hardlink.
	ModeReflink
	// ModeReflinkOrHardlink tries the clone primitive and silently falls back
	// to a hardlink on any failure.
	ModeReflinkOrHardlink
)

// DefaultMinFileSize is the smallest file size ever considered, even with
// the block-size gate disabled via Options.IgnoreSmall.
const DefaultMinFileSize = 1

// blockSizeGateCap bounds the "ignore small files" gate against filesystems
// that report unreasonably large logical block sizes (observed: 4 MiB on
// some). See Options.IgnoreSmall.
const blockSizeGateCap = 16 * 1024

// deferredFlushInitialThreshold is the number of deferred merges that
// accumulate before the scanner proactively flushes them, to bound memory
// held by not-yet-merged groups. It doubles after each flush.
const deferredFlushInitialThreshold = 4096

// Options controls the operation of a Scanner.
type Options struct {
	// RunMode selects hardlink/reflink/dry-run behavior. Zero value is
	// ModeHardlink.
	RunMode RunMode

	// IgnoreSmall disables the block-size gate, so files smaller than a
	// filesystem block are still considered for deduplication. Deduping
	// such a file reclaims no disk blocks, so the gate is on by default.
	IgnoreSmall bool

	// Quiet is not read by the Scanner, and internal/cli does not set it:
	// the --quiet flag travels in cli.Invocation.Quiet, which main passes
	// to the text listener.
	Quiet bool

	// Exclude lists exact filenames (no wildcards) to skip, matched per
	// directory entry.
	Exclude []string

	// MinFileSize and MaxFileSize additionally bound which regular files
	// are considered, beneath and above the block-size gate. A zero
	// MaxFileSize means unbounded.
	MinFileSize uint64
	MaxFileSize uint64
}

// DefaultOptions returns an Options with sane defaults: hardlink mode, the
// block-size gate enabled, no exclusions.
func DefaultOptions() Options {
	return Options{
		RunMode:     ModeHardlink,
		MinFileSize: DefaultMinFileSize,
	}
}

// dryRun reports whether the run mode should avoid mutating the filesystem.
func (o Options) dryRun() bool {
	return o.RunMode == ModeDryRun || o.RunMode == ModeDryRunNoMerging
}
