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

package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kornelski/dupe-krill"
)

func TestParseDefaultsToHardlinkMode(t *testing.T) {
	t.Setenv("DUPEKRILL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	inv, err := Parse([]string{"."})
	require.NoError(t, err)
	require.NotNil(t, inv)
	require.Equal(t, dupekrill.ModeHardlink, inv.Options.RunMode)
	require.Equal(t, []string{"."}, inv.Paths)
}

func TestParseJSONWithDryRunForcesNoMerging(t *testing.T) {
	t.Setenv("DUPEKRILL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	inv, err := Parse([]string{"--dry-run", "--json", "."})
	require.NoError(t, err)
	require.Equal(t, dupekrill.ModeDryRunNoMerging, inv.Options.RunMode)
	require.True(t, inv.JSON)
}

func TestParseExcludeRepeats(t *testing.T) {
	t.Setenv("DUPEKRILL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	inv, err := Parse([]string{"-e", ".git", "-e", "node_modules", "."})
	require.NoError(t, err)
	require.Equal(t, []string{".git", "node_modules"}, inv.Options.Exclude)
}

func TestParseReflinkOrHardlinkMode(t *testing.T) {
	t.Setenv("DUPEKRILL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	inv, err := Parse([]string{"-c", "."})
	require.NoError(t, err)
	require.Equal(t, dupekrill.ModeReflinkOrHardlink, inv.Options.RunMode)
}

func TestParseUnknownFlagIsUsageError(t *testing.T) {
	t.Setenv("DUPEKRILL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	inv, err := Parse([]string{"--not-a-real-flag", "."})
	require.Error(t, err)
	require.Nil(t, inv)
	require.True(t, IsUsageError(err))
}

func TestParseMissingPathIsUsageError(t *testing.T) {
	t.Setenv("DUPEKRILL_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	inv, err := Parse(nil)
	require.Error(t, err)
	require.Nil(t, inv)
	require.True(t, IsUsageError(err))
}
