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

import "testing"

func TestMetadataCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b metadata
		want int
	}{
		{"equal", newMetadata(1, 100), newMetadata(1, 100), 0},
		{"device lt", newMetadata(1, 100), newMetadata(2, 100), -1},
		{"device gt", newMetadata(2, 100), newMetadata(1, 100), 1},
		{"size lt, same device", newMetadata(1, 50), newMetadata(1, 100), -1},
		{"size gt, same device", newMetadata(1, 150), newMetadata(1, 100), 1},
		{"device dominates size", newMetadata(1, 999), newMetadata(2, 1), -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.compare(c.b); got != c.want {
				t.Errorf("compare(%+v, %+v) = %d, want %d", c.a, c.b, got, c.want)
			}
		})
	}
}
