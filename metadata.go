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

// metadata is the minimal set of stat facts needed to reject a pairing of
// two files cheaply, before any bytes are read: the device they live on
// (hardlinks can't cross devices, so different devices can never merge) and
// their size (different sizes can never compare equal).
type metadata struct {
	device uint64
	size   uint64
}

func newMetadata(device, size uint64) metadata {
	return metadata{device: device, size: size}
}

// compare returns -1, 0 or 1, ordering first by device then by size.
func (m metadata) compare(other metadata) int {
	if m.device != other.device {
		if m.device < other.device {
			return -1
		}
		return 1
	}
	if m.size != other.size {
		if m.size < other.size {
			return -1
		}
		return 1
	}
	return 0
}
