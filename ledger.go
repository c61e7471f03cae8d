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

const (
	initialWindow = 4096
	maxWindow     = 128 * 1024 * 1024
)

// ledger is a file's append-only sequence of chunk digests, one per compared
// range. Slot i covers the i-th range ever compared against this file,
// against whichever other file first reached that slot; since two files
// that previously compared equal up to slot i must have used the same
// range size there, the slot's size is unambiguous.
//
// poisoned marks that an I/O error occurred computing some slot; once set,
// every further comparison involving this file reports "greater" rather
// than crashing, so a damaged file sorts away from potential partners
// instead of aborting the scan.
type ledger struct {
	slots    []chunkDigest
	poisoned bool
}

// compareLedgers compares two files of the given (equal, already-checked)
// size, reading and hashing only as many bytes as needed to find the first
// difference. It mutates both ledgers in place, appending any newly
// computed slots, so repeated comparisons reuse earlier work.
func compareLedgers(a, b *ledger, size int64, aPath, bPath string) int {
	if a.poisoned || b.poisoned {
		return 1
	}

	aFile := newLazyFile(aPath)
	bFile := newLazyFile(bPath)
	defer aFile.close()
	defer bFile.close()

	var offset int64
	window := int64(initialWindow)

	for index := 0; offset < size; index++ {
		var slotSize int64
		switch {
		case index < len(a.slots):
			slotSize = int64(a.slots[index].size)
		case index < len(b.slots):
			slotSize = int64(b.slots[index].size)
		default:
			remaining := size - offset
			if remaining < window {
				slotSize = remaining
			} else {
				slotSize = window
			}
		}

		if index >= len(a.slots) {
			d, err := computeChunkDigest(aFile, offset, slotSize)
			if err != nil {
				a.poisoned = true
				return 1
			}
			a.slots = append(a.slots, d)
		}
		if index >= len(b.slots) {
			d, err := computeChunkDigest(bFile, offset, slotSize)
			if err != nil {
				b.poisoned = true
				return 1
			}
			b.slots = append(b.slots, d)
		}

		if cmp := a.slots[index].compare(b.slots[index]); cmp != 0 {
			return cmp
		}

		offset += slotSize
		window = slotSize * 8
		if window > maxWindow {
			window = maxWindow
		}
	}
	return 0
}
