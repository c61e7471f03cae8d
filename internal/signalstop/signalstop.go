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

// Package signalstop wires SIGINT/SIGTERM into an atomic counter that
// satisfies the scanner's StopCounter interface. The first signal asks the
// scan loop to stop early but still flush whatever merges it already knows
// about; a second signal (an impatient second Ctrl-C) skips that flush too.
package signalstop

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Counter is a *Counter-typed StopCounter: Load() returns the number of
// stop signals received so far (0, 1, or 2+).
type Counter struct {
	n uint32
}

// New installs a signal handler for SIGINT and SIGTERM and returns the
// counter it increments. Call the returned function to remove the handler once the scan
// that was guarding against interruption has finished.
func New() (*Counter, func()) {
	c := &Counter{}
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				atomic.AddUint32(&c.n, 1)
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		signal.Stop(ch)
		close(done)
	}
	return c, stop
}

// Load implements dupekrill.StopCounter.
func (c *Counter) Load() uint32 {
	return atomic.LoadUint32(&c.n)
}
