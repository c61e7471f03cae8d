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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func scanOpts() Options {
	o := DefaultOptions()
	o.IgnoreSmall = true // the test files are all well under a filesystem block
	return o
}

// S1: a hardlink already exists before the scan starts; no new link
// operation should be needed, but the existing link should still be
// counted.
func TestScanHardlinkAlreadyExists(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("dupe"), 0o644))
	require.NoError(t, os.Link(a, b))

	s := NewScanner(scanOpts())
	require.NoError(t, s.Scan(dir))

	stats := s.Stats()
	require.Equal(t, uint64(1), stats.ExistingLinks)
	require.Equal(t, uint64(1), stats.Hardlinks)

	groups := s.Dupes()
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
	require.Len(t, groups[0][0].Paths, 2)
}

// S2: two distinct files with identical bytes get merged into one inode.
func TestScanIdenticalDistinctFilesGetHardlinked(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("hello"), 0o644))

	listener := &recordingListener{}
	s := NewScanner(scanOpts())
	s.SetListener(listener)
	require.NoError(t, s.Scan(dir))

	stats := s.Stats()
	require.Equal(t, uint64(1), stats.Dupes)
	require.Equal(t, uint64(1), stats.Hardlinks)
	require.Len(t, listener.hardlinked, 1)

	infoA, err := os.Stat(a)
	require.NoError(t, err)
	infoB, err := os.Stat(b)
	require.NoError(t, err)
	require.True(t, os.SameFile(infoA, infoB))
}

// S5: a symlink to a regular file is never merged.
func TestScanSymlinkIsSkippedNotMerged(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("hello"), 0o644))
	require.NoError(t, os.Symlink(a, b))

	s := NewScanner(scanOpts())
	require.NoError(t, s.Scan(dir))

	stats := s.Stats()
	require.Equal(t, uint64(0), stats.Dupes)
	require.Equal(t, uint64(0), stats.Hardlinks)

	infoA, err := os.Lstat(a)
	require.NoError(t, err)
	infoB, err := os.Lstat(b)
	require.NoError(t, err)
	require.False(t, os.SameFile(infoA, infoB))
}

// S6: excluding one of two identical files by name, in dry-run-no-merging
// mode, leaves exactly one fileset with exactly one path, and counts the
// excluded file as skipped.
func TestScanExclusionInDryRunNoMerging(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("hello"), 0o644))

	opts := scanOpts()
	opts.RunMode = ModeDryRunNoMerging
	s := NewScanner(opts)
	s.Exclude([]string{"b"})
	require.NoError(t, s.Scan(dir))

	stats := s.Stats()
	require.GreaterOrEqual(t, stats.Skipped, uint64(1))

	groups := s.Dupes()
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
	require.Equal(t, []string{a}, groups[0][0].Paths)
}
