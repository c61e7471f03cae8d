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
	"log"
)

// mergeGroup drives the link-replacement protocol for one content-index
// bucket: every fileset in filesets has compared equal, so every path in
// every non-canonical fileset gets atomically replaced by a link to the
// canonical fileset's first path.
//
// The canonical fileset is the one with the most links already, ties
// broken by first-seen: redirecting a small group into a large one needs
// fewer link operations over the life of the scan than the reverse.
//
// A per-path failure drops that one path (it's neither merged nor restored
// to its old fileset) and logs the error; the rest of the group still gets
// processed. This is looser than "abort the whole merge on first error" —
// one bad path shouldn't cost every other duplicate in the group its merge.
func mergeGroup(filesets []*Fileset, fileSize uint64, mode RunMode, listener Listener, stats *Stats) {
	if mode == ModeDryRunNoMerging {
		return
	}

	largest := 0
	nonEmpty := 0
	for i, fs := range filesets {
		if len(fs.Paths) > 0 {
			nonEmpty++
		}
		if fs.Links() > filesets[largest].Links() {
			largest = i
		}
	}
	if nonEmpty == 0 {
		return // already merged
	}

	canonical := filesets[largest]
	sourcePath := canonical.Paths[0]

	for i, fs := range filesets {
		if i == largest {
			continue
		}
		for _, destPath := range fs.Paths {
			if mode == ModeDryRun {
				listener.DuplicateFound(sourcePath, destPath)
				canonical.Paths = append(canonical.Paths, destPath)
				continue
			}

			linkType, err := replaceWithLink(sourcePath, destPath, mode)
			if err != nil {
				log.Printf("dupekrill: failed to link %s to %s: %v", destPath, sourcePath, err)
				continue
			}
			switch linkType {
			case LinkTypeHardlink:
				stats.Hardlinks++
				stats.BytesSavedByHardlinks += fileSize
				listener.Hardlinked(sourcePath, destPath)
			case LinkTypeReflink:
				stats.Reflinks++
				stats.BytesSavedByReflinks += fileSize
				listener.Reflinked(sourcePath, destPath)
			}
			stats.BytesDeduplicated += fileSize
			canonical.Paths = append(canonical.Paths, destPath)
		}
		fs.Paths = nil
	}
}
