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

import "container/heap"

// dirEntry is one pending directory, ordered by orderKey.
type dirEntry struct {
	orderKey uint64
	path     string
}

// dirHeap is a max-priority-queue of directories left to scan, keyed by
// bitwise_not(inode >> 8). On many filesystems the inode number approximates
// allocation time, which approximates physical position, so scanning in
// descending bit-truncated order keeps neighborhoods together while still
// exposing some traversal order; the shift groups nearby inodes into
// buckets of 256 so siblings aren't micro-shuffled against each other.
type dirHeap []dirEntry

func (h dirHeap) Len() int            { return len(h) }
func (h dirHeap) Less(i, j int) bool  { return h[i].orderKey > h[j].orderKey }
func (h dirHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *dirHeap) Push(x interface{}) { *h = append(*h, x.(dirEntry)) }
func (h *dirHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// scheduler wraps dirHeap behind Push/Pop, doing the inode-truncation math
// itself so callers never need to see the heap internals.
type scheduler struct {
	h dirHeap
}

func newScheduler() *scheduler {
	s := &scheduler{}
	heap.Init(&s.h)
	return s
}

func dirOrderKey(ino uint64) uint64 {
	return ^(ino >> 8)
}

func (s *scheduler) push(ino uint64, path string) {
	heap.Push(&s.h, dirEntry{orderKey: dirOrderKey(ino), path: path})
}

// pop returns the next directory and true, or ("", false) when drained.
func (s *scheduler) pop() (string, bool) {
	if s.h.Len() == 0 {
		return "", false
	}
	e := heap.Pop(&s.h).(dirEntry)
	return e.path, true
}
