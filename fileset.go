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

// Fileset is a group of paths known to share identical content (or, before
// any comparison, just the paths sharing one inode). MaxHardlinks is seeded
// from stat's nlink the first time an inode is seen, and is max-merged
// whenever a later stat on the same inode reports a larger value, so it
// never under-reports the filesystem's own idea of the link count even if
// some of those links live outside the scanned trees.
type Fileset struct {
	MaxHardlinks uint64
	Paths        []string
}

func newFileset(path string, nlink uint64) *Fileset {
	return &Fileset{MaxHardlinks: nlink, Paths: []string{path}}
}

// push records another path known to share this inode.
func (fs *Fileset) push(path string, nlink uint64) {
	if nlink > fs.MaxHardlinks {
		fs.MaxHardlinks = nlink
	}
	fs.Paths = append(fs.Paths, path)
}

// Links returns the number of known hardlinks to this content: the larger
// of the filesystem's own link count and the number of paths this scan has
// found so far (the latter can exceed the former right after a merge, and
// the former can exceed the latter when links exist outside the scanned
// trees).
func (fs *Fileset) Links() uint64 {
	n := uint64(len(fs.Paths))
	if fs.MaxHardlinks > n {
		return fs.MaxHardlinks
	}
	return n
}
