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

// deferredController decides whether a newly-grown content-index bucket
// merges immediately or waits for a flush.
//
// A bucket merges immediately only if every fileset in it currently has
// Links() == 1: if any member already has pre-existing hardlinks, some of
// its siblings may not have been scanned yet, and merging now risks
// hardlinking into the wrong (smaller) group, which would just need
// redoing once the rest of the siblings turn up. Waiting until the scan
// ends guarantees the full hardlink topology is known before any such
// group merges.
//
// Deferred merges are flushed periodically so memory held by not-yet-merged
// buckets doesn't grow without bound on a tree with many pre-linked
// duplicates: the counter starts needing deferredFlushInitialThreshold
// deferrals before its first flush, then doubles the bar each time.
type deferredController struct {
	threshold int
	count     int
}

func newDeferredController() *deferredController {
	return &deferredController{threshold: deferredFlushInitialThreshold}
}

// readyNow reports whether a bucket with these filesets may merge right
// away rather than being deferred.
func readyNow(filesets []*Fileset) bool {
	for _, fs := range filesets {
		if fs.Links() != 1 {
			return false
		}
	}
	return true
}

// deferOne records one more deferred bucket and reports whether the
// accumulated count has reached the flush threshold.
func (d *deferredController) deferOne() (shouldFlush bool) {
	d.count++
	return d.count >= d.threshold
}

// afterFlush resets the counter and doubles the threshold, per invariant 6:
// the threshold only ever grows.
func (d *deferredController) afterFlush() {
	d.count = 0
	d.threshold *= 2
}
