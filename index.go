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

import "github.com/tidwall/btree"

// devIno identifies a file by the pair the filesystem itself uses to decide
// "same file": its device and inode number.
type devIno struct {
	device uint64
	inode  uint64
}

// contentBucket is the content-index's value type: every fileset whose
// content key has compared equal to key so far.
type contentBucket struct {
	key      *contentKey
	filesets []*Fileset
}

// index is the two-stage lookup at the heart of a scan: byInode lets an
// already-known inode skip content hashing entirely; byContent is a sorted
// map keyed by the (impure, lazily-hashing) content key, so equal content
// lands in the same bucket without ever comparing every file to every other
// file.
type index struct {
	byInode   map[devIno]*Fileset
	byContent *btree.BTree
}

func newIndex() *index {
	return &index{
		byInode: make(map[devIno]*Fileset),
		byContent: btree.New(func(a, b interface{}) bool {
			return a.(*contentBucket).key.less(b.(*contentBucket).key)
		}),
	}
}

// addInode looks up (device, inode). If it's new, it creates and returns a
// fresh fileset plus true. If it's known, it appends path to the existing
// fileset and returns it plus false — the caller must not content-index a
// path that was already a known hardlink of a previously seen file.
func (ix *index) addInode(device, inode, nlink uint64, path string) (fs *Fileset, isNew bool) {
	key := devIno{device: device, inode: inode}
	if existing, ok := ix.byInode[key]; ok {
		existing.push(path, nlink)
		return existing, false
	}
	fs = newFileset(path, nlink)
	ix.byInode[key] = fs
	return fs, true
}

// addContent inserts fileset under key. If key's bucket already exists, the
// fileset is appended to it and the (now multi-member) bucket is returned
// so the caller can decide whether to merge now or defer. If the bucket was
// just created, filesets is returned as a single-element slice and the
// caller has nothing to merge yet.
func (ix *index) addContent(key *contentKey, fs *Fileset) []*Fileset {
	probe := &contentBucket{key: key}
	if existing := ix.byContent.Get(probe); existing != nil {
		bucket := existing.(*contentBucket)
		bucket.filesets = append(bucket.filesets, fs)
		return bucket.filesets
	}
	probe.filesets = []*Fileset{fs}
	ix.byContent.Set(probe)
	return probe.filesets
}

// forEachBucket calls fn once per content-index bucket, in key order, along
// with the byte size every fileset in that bucket shares.
func (ix *index) forEachBucket(fn func(filesets []*Fileset, size uint64)) {
	ix.byContent.Ascend(nil, func(item interface{}) bool {
		b := item.(*contentBucket)
		fn(b.filesets, b.key.meta.size)
		return true
	})
}
