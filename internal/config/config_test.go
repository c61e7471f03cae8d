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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsZeroDefaults(t *testing.T) {
	t.Setenv("DUPEKRILL_CONFIG", filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	d, err := Load()
	require.NoError(t, err)
	require.Equal(t, Defaults{}, d)
}

func TestLoadReadsExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dupekrillrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("small: true\nquiet: true\nexclude:\n  - .git\n  - node_modules\nmin-size: 100\n"), 0o644))
	t.Setenv("DUPEKRILL_CONFIG", path)

	d, err := Load()
	require.NoError(t, err)
	require.True(t, d.SmallFiles)
	require.True(t, d.Quiet)
	require.Equal(t, []string{".git", "node_modules"}, d.Exclude)
	require.Equal(t, uint64(100), d.MinSize)
}

func TestMergeDedupesPreservingOrder(t *testing.T) {
	got := Merge([]string{".git", "node_modules"}, []string{"node_modules", ".DS_Store"})
	require.Equal(t, []string{".git", "node_modules", ".DS_Store"}, got)
}
