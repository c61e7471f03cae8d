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

package ui

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kornelski/dupe-krill"
)

type fakeDupesSource struct {
	groups [][]dupekrill.Fileset
}

func (f fakeDupesSource) Dupes() [][]dupekrill.Fileset { return f.groups }

func TestJSONListenerOmitsEmptyFilesetsAndSingletonGroups(t *testing.T) {
	var buf bytes.Buffer
	listener := &JSONListener{
		Out:     &buf,
		Creator: "dupekrill test",
		Scanner: fakeDupesSource{groups: [][]dupekrill.Fileset{
			{
				{Paths: []string{"/a", "/b"}},
				{Paths: nil},
			},
			{
				{Paths: []string{"/only-one"}},
			},
		}},
	}

	listener.ScanOver(dupekrill.Stats{Hardlinks: 1}, 2500*time.Millisecond)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	dupes := doc["dupes"].([]interface{})
	require.Len(t, dupes, 1, "the singleton group must be omitted, and the empty fileset dropped from the surviving group")

	duration := doc["scanDuration"].(map[string]interface{})
	require.Equal(t, float64(2), duration["secs"])
	require.Equal(t, float64(500_000_000), duration["nanos"])
}
