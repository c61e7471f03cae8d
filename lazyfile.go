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

import "os"

// lazyFile opens a path only on the first range read, and is expected to be
// closed by its owner once the comparison that created it is done. Most
// content keys end up being compared against very few others, so opening on
// first byte-read keeps the open-fd count bounded during a scan of a large
// tree.
type lazyFile struct {
	path string
	f    *os.File
}

func newLazyFile(path string) *lazyFile {
	return &lazyFile{path: path}
}

// fd returns the open file, opening it read-only on first use.
func (lf *lazyFile) fd() (*os.File, error) {
	if lf.f != nil {
		return lf.f, nil
	}
	f, err := os.Open(lf.path)
	if err != nil {
		return nil, err
	}
	lf.f = f
	return lf.f, nil
}

// close releases the descriptor, if one was ever opened. Safe to call
// multiple times.
func (lf *lazyFile) close() {
	if lf.f != nil {
		lf.f.Close()
		lf.f = nil
	}
}
