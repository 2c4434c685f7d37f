// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package builder

import (
	"regexp"
	"strings"
)

// tagPattern matches one HTML-like tag, non-greedy.
var tagPattern = regexp.MustCompile(`<[^<]+?>`)

// entityReplacer decodes the named entities the renderer emits. The
// replacements run in order, so "&amp;" is decoded first.
var entityReplacer = []struct{ from, to string }{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&nbsp;", " "},
}

// Clean strips all tags from s, decodes a fixed set of named entities, and
// trims surrounding whitespace. It is a best-effort cleaner, not an HTML
// parser: unterminated tags may over- or under-strip.
func Clean(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	for _, r := range entityReplacer {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	return strings.TrimSpace(s)
}
