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

import "time"

// Listener is the sink for progress events. The core only ever calls a
// Listener; it never knows whether it's writing to a terminal, a JSON
// buffer, or nothing at all.
type Listener interface {
	// FileScanned is called once per classified file, with a live snapshot
	// of the running stats.
	FileScanned(path string, stats Stats)
	// DuplicateFound is only emitted in dry-run mode, in place of
	// Hardlinked/Reflinked, since no filesystem mutation happens.
	DuplicateFound(src, dst string)
	// Hardlinked is called after dst has been successfully replaced by a
	// hardlink to src.
	Hardlinked(src, dst string)
	// Reflinked is called after dst has been successfully replaced by a
	// reflink clone of src.
	Reflinked(src, dst string)
	// ScanOver is called exactly once, after the final deferred flush, with
	// the terminal stats snapshot and the wall-clock scan duration.
	ScanOver(stats Stats, duration time.Duration)
}

// NoopListener discards every event. It's the Scanner's default so a caller
// that never wires up a Listener still gets a working scan.
type NoopListener struct{}

func (NoopListener) FileScanned(string, Stats)     {}
func (NoopListener) DuplicateFound(string, string) {}
func (NoopListener) Hardlinked(string, string)     {}
func (NoopListener) Reflinked(string, string)      {}
func (NoopListener) ScanOver(Stats, time.Duration) {}
