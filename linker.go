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
	"os"
	"path/filepath"

	"github.com/kornelski/dupe-krill/internal/reflink"
)

// tempSentinel is the fixed temp filename used by the atomic link-replace
// swap. It's not randomized: two concurrent dedupers mutating the same
// directory are not supported, so a fixed name is fine and makes a leftover
// temp file instantly recognizable after a crash.
const tempSentinel = ".tmp-dupe-e1iIQcBFn5pC4MUSm-xkcd-221"

// LinkType records which mechanism a successful merge used.
type LinkType int

const (
	LinkTypeHardlink LinkType = iota
	LinkTypeReflink
)

// replaceWithLink atomically substitutes destPath with a link (hardlink or
// reflink, per mode) to sourcePath: link-or-clone into a fixed temp name in
// destPath's directory, then rename the temp name over destPath. POSIX
// link(2) refuses to overwrite an existing name, and rename(2) replaces
// atomically, so the pair is crash-safe: at every moment destPath refers to
// either the old inode or the new one, and the temp name exists only
// transiently.
//
// On any failure the temp path is best-effort removed and the error is
// returned; destPath is left untouched.
func replaceWithLink(sourcePath, destPath string, mode RunMode) (LinkType, error) {
	tempPath := filepath.Join(filepath.Dir(destPath), tempSentinel)

	var linkType LinkType
	switch mode {
	case ModeReflink:
		if err := reflink.Clone(sourcePath, tempPath); err != nil {
			os.Remove(tempPath)
			return 0, err
		}
		linkType = LinkTypeReflink

	case ModeReflinkOrHardlink:
		if err := reflink.Clone(sourcePath, tempPath); err == nil {
			linkType = LinkTypeReflink
		} else if err := os.Link(sourcePath, tempPath); err != nil {
			os.Remove(tempPath)
			return 0, err
		} else {
			linkType = LinkTypeHardlink
		}

	default: // ModeHardlink
		if err := os.Link(sourcePath, tempPath); err != nil {
			os.Remove(tempPath)
			return 0, err
		}
		linkType = LinkTypeHardlink
	}

	if err := os.Rename(tempPath, destPath); err != nil {
		os.Remove(tempPath)
		return 0, err
	}
	return linkType, nil
}
