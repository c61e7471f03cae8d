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

// Stats is a running (and, at ScanOver, final) snapshot of what a scan has
// found and done.
type Stats struct {
	Added   uint64 `json:"added"`
	Skipped uint64 `json:"skipped"`
	Dupes   uint64 `json:"dupes"`

	// ClassificationErrors counts stat/readdir/permission failures,
	// broken out from Skipped so a summary can tell "intentionally
	// excluded" apart from "couldn't even look at it".
	ClassificationErrors uint64 `json:"classificationErrors"`

	BytesDeduplicated uint64 `json:"bytesDeduplicated"`

	Hardlinks             uint64 `json:"hardlinks"`
	BytesSavedByHardlinks uint64 `json:"bytesSavedByHardlinks"`

	Reflinks             uint64 `json:"reflinks"`
	BytesSavedByReflinks uint64 `json:"bytesSavedByReflinks"`

	// ExistingLinks counts paths found to be an additional hardlink of an
	// inode this scan had already seen, and ExistingLinkSizes sums the size
	// of each such path (the bytes those pre-existing links already save).
	ExistingLinks     uint64 `json:"existingLinks"`
	ExistingLinkSizes uint64 `json:"existingLinkSizes"`
}
