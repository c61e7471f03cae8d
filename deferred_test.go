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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadyNowRequiresEveryFilesetSingleLink(t *testing.T) {
	allSingle := []*Fileset{newFileset("/a", 1), newFileset("/b", 1)}
	require.True(t, readyNow(allSingle))

	onePrelinked := []*Fileset{newFileset("/a", 1), newFileset("/b", 2)}
	require.False(t, readyNow(onePrelinked))
}

func TestDeferredControllerFlushesAtThresholdAndDoublesIt(t *testing.T) {
	d := newDeferredController()
	d.threshold = 3

	require.False(t, d.deferOne())
	require.False(t, d.deferOne())
	require.True(t, d.deferOne())

	d.afterFlush()
	require.Equal(t, 0, d.count)
	require.Equal(t, 6, d.threshold)
}
