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

// Package dupekrill finds files with byte-identical content under one or more
// directory trees and collapses the duplicates into a shared physical extent,
// either by hardlinking or by reflinking (copy-on-write clone).
//
// The package is built around a two-stage index: files are first grouped by
// (device, inode) so that existing hardlinks never cost a byte of I/O, then
// grouped by content using an incremental, lazily-hashed comparator that
// rejects most non-matches within the first few kilobytes while letting
// genuinely identical files stream through at full speed. Merges found during
// a scan are either applied immediately or deferred to the end of the scan,
// depending on whether the group already contains pre-existing hardlinks.
//
// Everything in this package runs on a single goroutine and is only ever
// interrupted cooperatively: callers poll a shared counter and the scanner
// checks it between directories and between directory entries. Argument
// parsing, progress rendering, and signal handling live in the internal
// subpackages and the cmd/dupekrill binary; this package only defines the
// Scanner and the Listener interface it reports events through.
package dupekrill
