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

// Package reflink provides a single cross-platform "clone src to dst"
// primitive. The merge planner only ever sees Clone and ErrUnsupported; the
// platform-specific syscalls are build-tag-separated so the rest of the
// module never imports anything OS-specific.
package reflink

import "errors"

// ErrUnsupported is returned by Clone on a platform, or filesystem, that
// doesn't support copy-on-write clones.
var ErrUnsupported = errors.New("reflink: not supported on this platform or filesystem")

// Clone creates dst as a copy-on-write clone of src. dst must not already
// exist; Clone never overwrites. On any failure dst is left absent.
func Clone(src, dst string) error {
	return cloneFile(src, dst)
}
