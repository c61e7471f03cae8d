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

// Package textfmt renders pairs of paths the way the text listener needs
// to: instead of printing two long, mostly-identical paths in full, it
// factors out the common prefix and suffix and shows only the part that
// differs.
package textfmt

import "strings"

func splitComponents(p string) []string {
	if p == "" {
		return nil
	}
	abs := strings.HasPrefix(p, "/")
	trimmed := strings.Trim(p, "/")
	var parts []string
	if trimmed != "" {
		parts = strings.Split(trimmed, "/")
	}
	if abs {
		return append([]string{"/"}, parts...)
	}
	return parts
}

// CombinedPaths renders the longest common prefix and suffix of base and
// relativize verbatim, and shows the divergent middles as
// "{middleOfBase => middleOfRelativize}". An empty middle renders as ".".
//
//	CombinedPaths("foo/bar/baz/a.txt", "foo/baz/quz/zzz/a.txt")
//	  == "foo/{bar/baz => baz/quz/zzz}/a.txt"
func CombinedPaths(base, relativize string) string {
	baseParts := splitComponents(base)
	relParts := splitComponents(relativize)

	var out strings.Builder

	prefixLen := 0
	for prefixLen < len(baseParts) && prefixLen < len(relParts) && baseParts[prefixLen] == relParts[prefixLen] {
		comp := baseParts[prefixLen]
		out.WriteString(comp)
		if comp != "/" {
			out.WriteByte('/')
		}
		prefixLen++
	}

	suffixLen := 0
	for suffixLen < len(baseParts)-prefixLen && suffixLen < len(relParts)-prefixLen {
		bi := len(baseParts) - 1 - suffixLen
		ri := len(relParts) - 1 - suffixLen
		if baseParts[bi] != relParts[ri] {
			break
		}
		suffixLen++
	}

	baseUnique := baseParts[prefixLen : len(baseParts)-suffixLen]
	relUnique := relParts[prefixLen : len(relParts)-suffixLen]

	out.WriteByte('{')
	if len(baseUnique) == 0 {
		out.WriteByte('.')
	} else {
		out.WriteString(strings.Join(baseUnique, "/"))
	}
	out.WriteString(" => ")
	if len(relUnique) == 0 {
		out.WriteByte('.')
	} else {
		out.WriteString(strings.Join(relUnique, "/"))
	}
	out.WriteByte('}')

	for i := len(baseParts) - suffixLen; i < len(baseParts); i++ {
		out.WriteByte('/')
		out.WriteString(baseParts[i])
	}

	return out.String()
}
