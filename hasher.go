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
	"crypto/sha1"
	"io"
)

// hashSalt is concatenated in front of every range's bytes before hashing.
// It isn't a secret; its only purpose is to keep published SHA-1 collision
// exemplars (e.g. the "shattered" PDFs) from deduplicating against each
// other by accident.
const hashSalt = "ISpent$75KToCollideWithThisStringAndAllIGotWasADeletedFile"

// chunkDigest is a fixed-size digest of one [start, start+size) range of a
// file, salted with hashSalt. Two chunkDigests are ordered lexicographically
// by (size, hash); since the incremental comparator only ever compares
// digests computed with the same agreed size at a given slot, in practice
// the size component never decides the order.
type chunkDigest struct {
	size uint64
	hash [sha1.Size]byte
}

func (d chunkDigest) compare(other chunkDigest) int {
	if d.size != other.size {
		if d.size < other.size {
			return -1
		}
		return 1
	}
	for i := range d.hash {
		if d.hash[i] != other.hash[i] {
			if d.hash[i] < other.hash[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// computeChunkDigest seeks to start, reads exactly size bytes, and hashes
// salt||bytes. A short read or any I/O error is returned as-is; the caller
// is responsible for poisoning the owning ledger.
func computeChunkDigest(lf *lazyFile, start int64, size int64) (chunkDigest, error) {
	f, err := lf.fd()
	if err != nil {
		return chunkDigest{}, err
	}
	buf := make([]byte, size)
	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return chunkDigest{}, err
	}
	if _, err := io.ReadFull(f, buf); err != nil {
		return chunkDigest{}, err
	}
	h := sha1.New()
	h.Write([]byte(hashSalt))
	h.Write(buf)
	var sum [sha1.Size]byte
	copy(sum[:], h.Sum(nil))
	return chunkDigest{size: uint64(size), hash: sum}, nil
}
