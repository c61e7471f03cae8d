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
	"encoding/json"
	"io"
	"time"

	"github.com/kornelski/dupe-krill"
)

// JSONListener is silent during the scan (FileScanned/DuplicateFound/
// Hardlinked/Reflinked are no-ops) and emits exactly one document on
// ScanOver, per the JSON schema: creator, dupes (groups of filesets of
// paths, with empty filesets and singleton groups dropped), stats, and
// scanDuration.
type JSONListener struct {
	Out     io.Writer
	Creator string
	Scanner interface {
		Dupes() [][]dupekrill.Fileset
	}
}

type jsonDuration struct {
	Secs  int64 `json:"secs"`
	Nanos int64 `json:"nanos"`
}

type jsonDocument struct {
	Creator      string          `json:"creator"`
	Dupes        [][][]string    `json:"dupes"`
	Stats        dupekrill.Stats `json:"stats"`
	ScanDuration jsonDuration    `json:"scanDuration"`
}

func (j *JSONListener) FileScanned(string, dupekrill.Stats) {}
func (j *JSONListener) DuplicateFound(string, string)       {}
func (j *JSONListener) Hardlinked(string, string)           {}
func (j *JSONListener) Reflinked(string, string)            {}

func (j *JSONListener) ScanOver(stats dupekrill.Stats, duration time.Duration) {
	doc := jsonDocument{
		Creator: j.Creator,
		Stats:   stats,
		ScanDuration: jsonDuration{
			Secs:  int64(duration / time.Second),
			Nanos: int64(duration % time.Second),
		},
	}

	for _, group := range j.Scanner.Dupes() {
		nonSingleton := false
		var paths [][]string
		for _, fs := range group {
			if len(fs.Paths) == 0 {
				continue
			}
			if len(fs.Paths) > 1 {
				nonSingleton = true
			}
			paths = append(paths, fs.Paths)
		}
		if !nonSingleton {
			continue
		}
		doc.Dupes = append(doc.Dupes, paths)
	}

	enc := json.NewEncoder(j.Out)
	enc.SetIndent("", "  ")
	enc.Encode(doc)
}

var _ dupekrill.Listener = (*JSONListener)(nil)
