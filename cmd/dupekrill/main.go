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

package main

import (
	"fmt"
	"os"

	"github.com/kornelski/dupe-krill"
	"github.com/kornelski/dupe-krill/internal/cli"
	"github.com/kornelski/dupe-krill/internal/signalstop"
	"github.com/kornelski/dupe-krill/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	inv, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if cli.IsUsageError(err) {
			return 2
		}
		return 1
	}
	if inv == nil {
		return 0
	}

	scanner := dupekrill.NewScanner(inv.Options)
	scanner.Exclude(inv.Options.Exclude)

	stopCounter, stopSignals := signalstop.New()
	defer stopSignals()
	scanner.SetStopCounter(stopCounter)

	var listener dupekrill.Listener
	if inv.JSON {
		listener = &ui.JSONListener{
			Out:     os.Stdout,
			Creator: "dupekrill " + cli.Version(),
			Scanner: scanner,
		}
	} else {
		listener = ui.NewTextListener(os.Stderr, inv.Quiet)
	}
	scanner.SetListener(listener)

	for _, path := range inv.Paths {
		if err := scanner.Enqueue(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if err := scanner.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
