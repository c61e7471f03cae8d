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

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/karrick/godirwalk"

	"github.com/kornelski/dupe-krill/internal/inode"
)

// StopCounter is polled by the Scanner at two well-defined points: between
// directory pops in the top-level loop, and between entries within one
// directory's enumeration. A value >= 1 ends the scan loop early and
// proceeds to the final deferred flush; a value >= 2 also skips that final
// flush. The Scanner only ever reads it; something else (typically a signal
// handler, see internal/signalstop) is expected to increment it.
type StopCounter interface {
	Load() uint32
}

type nullStopCounter struct{}

func (nullStopCounter) Load() uint32 { return 0 }

// Scanner is the top-level deduplication engine. Use NewScanner, optionally
// SetListener/SetStopCounter/Exclude, then Enqueue one or more paths and
// call Flush (or just call Scan once per path).
type Scanner struct {
	opts        Options
	idx         *index
	sched       *scheduler
	deferred    *deferredController
	listener    Listener
	exclude     map[string]struct{}
	stopCounter StopCounter
	stats       Stats
}

// NewScanner builds a Scanner ready to accept Enqueue calls.
func NewScanner(opts Options) *Scanner {
	return &Scanner{
		opts:        opts,
		idx:         newIndex(),
		sched:       newScheduler(),
		deferred:    newDeferredController(),
		listener:    NoopListener{},
		exclude:     make(map[string]struct{}),
		stopCounter: nullStopCounter{},
	}
}

// SetListener overrides the scanner's listener. Only one listener is
// supported at a time; compose a fan-out listener if more than one
// renderer needs the events.
func (s *Scanner) SetListener(l Listener) {
	if l == nil {
		l = NoopListener{}
	}
	s.listener = l
}

// SetStopCounter wires in the cooperative-cancellation counter. Without one,
// the scanner always runs to completion.
func (s *Scanner) SetStopCounter(c StopCounter) {
	if c == nil {
		c = nullStopCounter{}
	}
	s.stopCounter = c
}

// Exclude sets the exact filenames (no wildcards) to skip, matched per
// directory entry.
func (s *Scanner) Exclude(names []string) {
	s.exclude = make(map[string]struct{}, len(names))
	for _, n := range names {
		s.exclude[n] = struct{}{}
	}
}

// Stats returns the current running snapshot.
func (s *Scanner) Stats() Stats {
	return s.stats
}

// Dupes returns every content group found so far: groups of filesets that
// compared equal, each fileset's paths listed in discovery order. Callers
// that want the end-of-scan renderer view (empty filesets and singleton
// groups omitted) should filter this themselves; the scanner hands back
// everything it knows.
func (s *Scanner) Dupes() [][]Fileset {
	var groups [][]Fileset
	s.idx.forEachBucket(func(filesets []*Fileset, _ uint64) {
		group := make([]Fileset, 0, len(filesets))
		for _, fs := range filesets {
			group = append(group, *fs)
		}
		groups = append(groups, group)
	})
	return groups
}

// Scan enqueues path and drains the scan to completion in one call.
func (s *Scanner) Scan(path string) error {
	if err := s.Enqueue(path); err != nil {
		return err
	}
	return s.Flush()
}

// Enqueue resolves path (which may be a file or a directory) and classifies
// it. Directories are pushed onto the scheduler; Flush is what actually
// walks them.
func (s *Scanner) Enqueue(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("dupekrill: resolving %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fmt.Errorf("dupekrill: resolving %s: %w", path, err)
	}
	st, err := inode.Lstat(resolved)
	if err != nil {
		return fmt.Errorf("dupekrill: stat %s: %w", resolved, err)
	}
	return s.classifyAndAdd(resolved, st)
}

// Flush drains the directory scheduler, classifying and indexing every
// entry it finds, then runs the final deferred-merge flush (unless the
// cooperative-stop counter has reached 2), and finally reports ScanOver.
func (s *Scanner) Flush() error {
	start := time.Now()

	for s.stopCounter.Load() < 1 {
		path, ok := s.sched.pop()
		if !ok {
			break
		}
		if err := s.scanDir(path); err != nil {
			log.Printf("dupekrill: error scanning %s: %v", path, err)
		}
	}

	if s.stopCounter.Load() < 2 {
		s.flushAllDeferred()
	}

	s.listener.ScanOver(s.stats, time.Since(start))
	return nil
}

// scanDir enumerates one directory's entries (non-recursively — any
// subdirectories found are pushed back onto the scheduler rather than
// descended into here) and classifies each one.
func (s *Scanner) scanDir(dirPath string) error {
	entries, err := godirwalk.ReadDirents(dirPath, nil)
	if err != nil {
		s.stats.ClassificationErrors++
		return err
	}

	for _, entry := range entries {
		if s.stopCounter.Load() >= 1 {
			break
		}

		name := entry.Name()
		if _, excluded := s.exclude[name]; excluded {
			s.stats.Skipped++
			continue
		}

		fullPath := filepath.Join(dirPath, name)
		st, err := inode.Lstat(fullPath)
		if err != nil {
			log.Printf("dupekrill: stat %s: %v", fullPath, err)
			s.stats.ClassificationErrors++
			continue
		}
		if err := s.classifyAndAdd(fullPath, st); err != nil {
			log.Printf("dupekrill: %s: %v", fullPath, err)
		}
	}
	return nil
}

// classifyAndAdd gates, classifies, and indexes a single entry already
// stat'd by the caller.
func (s *Scanner) classifyAndAdd(path string, st inode.Info) error {
	s.listener.FileScanned(path, s.stats)

	switch {
	case st.Mode.IsDir():
		s.sched.push(st.Inode, path)
		return nil
	case st.Mode&os.ModeSymlink != 0:
		// Following symlinks would require loop detection; out of scope.
		s.stats.Skipped++
		return nil
	case !st.Mode.IsRegular():
		// Devices, sockets, FIFOs: deduping /dev/ would be funny.
		s.stats.Skipped++
		return nil
	case st.Mode&(os.ModeSetuid|os.ModeSetgid) != 0:
		s.stats.Skipped++
		return nil
	}

	if st.Size == 0 {
		s.stats.Skipped++
		return nil
	}

	blockGate := st.Blksize
	if blockGate <= 0 || blockGate > blockSizeGateCap {
		blockGate = blockSizeGateCap
	}
	if !s.opts.IgnoreSmall && st.Size < uint64(blockGate) {
		s.stats.Skipped++
		return nil
	}
	if st.Size < s.opts.MinFileSize {
		s.stats.Skipped++
		return nil
	}
	if s.opts.MaxFileSize > 0 && st.Size > s.opts.MaxFileSize {
		s.stats.Skipped++
		return nil
	}

	s.stats.Added++

	fs, isNew := s.idx.addInode(st.Device, st.Inode, st.Nlink, path)
	if !isNew {
		// path is already a hardlink of an inode this scan has seen before:
		// no merge is needed, but the filesystem has already done the work
		// a merge would have, so it counts toward stats.Hardlinks same as a
		// merge performed by this run would.
		s.stats.Hardlinks++
		s.stats.ExistingLinks++
		s.stats.ExistingLinkSizes += st.Size
		return nil
	}

	key := newContentKey(path, newMetadata(st.Device, st.Size))
	bucket := s.idx.addContent(key, fs)
	if len(bucket) <= 1 {
		return nil
	}

	s.stats.Dupes++
	if readyNow(bucket) {
		mergeGroup(bucket, st.Size, s.opts.RunMode, s.listener, &s.stats)
		return nil
	}
	if s.deferred.deferOne() {
		s.flushAllDeferred()
	}
	return nil
}

// flushAllDeferred runs the merge planner over every content-index bucket.
// Buckets that are already fully merged (all their non-canonical filesets
// drained) are a cheap no-op, so it's safe to call this both periodically
// and once more at end-of-scan.
func (s *Scanner) flushAllDeferred() {
	s.idx.forEachBucket(func(filesets []*Fileset, size uint64) {
		mergeGroup(filesets, size, s.opts.RunMode, s.listener, &s.stats)
	})
	s.deferred.afterFlush()
}
