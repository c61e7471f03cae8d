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

// Package inode wraps the raw stat fields the scanner needs to classify and
// index a directory entry: device, inode, size, link count, block size, and
// mode. It exists so the rest of the module only ever deals with a small,
// platform-independent struct instead of syscall.Stat_t.
package inode

import (
	"fmt"
	"os"
	"syscall"
)

// Info holds the subset of a stat(2) result the scanner cares about.
type Info struct {
	Device  uint64
	Inode   uint64
	Size    uint64
	Nlink   uint64
	Blksize int64
	Mode    os.FileMode
}

// Lstat stats pathname without following a trailing symlink, so the caller
// can classify symlinks instead of silently following them.
func Lstat(pathname string) (Info, error) {
	fi, err := os.Lstat(pathname)
	if err != nil {
		return Info{}, err
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return Info{}, fmt.Errorf("inode: no syscall.Stat_t for %s", pathname)
	}
	return Info{
		Device:  uint64(st.Dev),
		Inode:   uint64(st.Ino),
		Size:    uint64(st.Size),
		Nlink:   uint64(st.Nlink),
		Blksize: int64(st.Blksize),
		Mode:    fi.Mode(),
	}, nil
}
