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

// contentKey is the sortable proxy for a file's bytes used as the content
// index's key. path is the first path this content signature was ever seen
// at; it stays valid for the lifetime of the key because once two paths
// compare equal they're never written to again by this tool (a successful
// merge doesn't change either file's bytes).
//
// Equality and ordering are defined by metadata first (device, then size),
// then by incremental content hashing via the ledger. Two keys that have
// already compared equal keep comparing equal forever: the ledger only ever
// grows, and growth only refines knowledge of bytes that were always there.
type contentKey struct {
	path   string
	meta   metadata
	ledger *ledger
}

func newContentKey(path string, meta metadata) *contentKey {
	return &contentKey{path: path, meta: meta, ledger: &ledger{}}
}

// less defines the total order used by the content index. It is safe to use
// as a btree less-function: it's consistent (same two keys always land on
// the same side) even though it performs I/O and mutates the ledger, because
// the underlying bytes being measured never change once a key exists.
func (k *contentKey) less(other *contentKey) bool {
	if k == other {
		return false
	}
	if cmp := k.meta.compare(other.meta); cmp != 0 {
		return cmp < 0
	}
	cmp := compareLedgers(k.ledger, other.ledger, int64(k.meta.size), k.path, other.path)
	// A key whose file could not be read sorts after every readable key,
	// and damaged keys order among themselves by path, so a damaged file
	// never compares equal to another key and never shares its bucket.
	switch kBad, otherBad := k.ledger.poisoned, other.ledger.poisoned; {
	case kBad && otherBad:
		return k.path < other.path
	case kBad:
		return false
	case otherBad:
		return true
	}
	return cmp < 0
}
