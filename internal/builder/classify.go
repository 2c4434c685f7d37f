// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package builder

import (
	"regexp"
	"strings"

	"github.com/pdiddy/doc-converter/pkg/types"
)

const codeClose = "</code></pre>"

var (
	// openTagPattern captures the name of the tag a segment opens with.
	openTagPattern = regexp.MustCompile(`^<([a-zA-Z][a-zA-Z0-9]*)(?:\s[^>]*)?/?>`)

	// codeOpenPattern matches the <pre><code> opener, with or without
	// attributes on either tag.
	codeOpenPattern = regexp.MustCompile(`^<pre(?:\s[^>]*)?><code(?:\s[^>]*)?>`)

	// listOpenPattern matches a <ul> or <ol> opening tag anywhere in a segment.
	listOpenPattern = regexp.MustCompile(`<(?:ul|ol)(?:\s[^>]*)?>`)

	// itemOpenPattern matches an <li> opening tag.
	itemOpenPattern = regexp.MustCompile(`<li(?:\s[^>]*)?>`)
)

// spanning lists the block tags whose content may continue over several
// lines. Each maps to the tag names counted when balancing open and close
// tags; lists nest across both list kinds.
var spanning = map[string][]string{
	"p":          {"p"},
	"pre":        {"pre"},
	"blockquote": {"blockquote"},
	"dl":         {"dl"},
	"ul":         {"ul", "ol"},
	"ol":         {"ul", "ol"},
}

var headingLevels = map[string]int{"h1": 1, "h2": 2, "h3": 3}

// Classify turns a stretch of rendered markup that contains no tables into
// blocks, in source order. Blank segments produce nothing, and content with
// an unrecognized opening tag becomes a paragraph when it has any text left
// after cleaning.
func Classify(fragment string) []types.Block {
	var blocks []types.Block
	for _, seg := range segments(fragment) {
		blocks = append(blocks, classifySegment(seg)...)
	}
	return blocks
}

func classifySegment(seg string) []types.Block {
	tag := openTag(seg)

	if level, ok := headingLevels[tag]; ok {
		return []types.Block{types.Heading(level, Clean(seg))}
	}

	if tag == "pre" {
		if loc := codeOpenPattern.FindStringIndex(seg); loc != nil {
			inner := strings.TrimSuffix(seg[loc[1]:], codeClose)
			return []types.Block{types.Code(Clean(inner))}
		}
	}

	if tag == "ul" || tag == "ol" {
		return listBlocks(seg)
	}

	if text := Clean(seg); text != "" {
		return []types.Block{types.Paragraph(text)}
	}
	return nil
}

// listBlocks emits one bullet list per list opening tag found in seg. Items
// are the text between each <li> and the next </li>, cleaned. Nested lists
// therefore flatten into their own list blocks in document order.
func listBlocks(seg string) []types.Block {
	var blocks []types.Block
	opens := listOpenPattern.FindAllStringIndex(seg, -1)
	for i, loc := range opens {
		end := len(seg)
		if i+1 < len(opens) {
			end = opens[i+1][0]
		}
		items := listItems(seg[loc[1]:end])
		if len(items) > 0 {
			blocks = append(blocks, types.BulletList(items...))
		}
	}
	return blocks
}

func listItems(list string) []string {
	parts := itemOpenPattern.Split(list, -1)
	items := make([]string, 0, len(parts))
	for _, part := range parts[1:] {
		text, _, _ := strings.Cut(part, "</li>")
		items = append(items, Clean(text))
	}
	return items
}

// segments splits fragment on newlines, dropping blank lines. A line that
// opens a spanning block without closing it is joined with the lines that
// follow until the block is balanced or the fragment ends.
func segments(fragment string) []string {
	lines := strings.Split(fragment, "\n")
	var out []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}

		names, ok := spanning[openTag(line)]
		if !ok || balanced(line, names) {
			out = append(out, line)
			continue
		}

		var b strings.Builder
		b.WriteString(line)
		for i+1 < len(lines) {
			i++
			b.WriteByte('\n')
			b.WriteString(lines[i])
			if balanced(b.String(), names) {
				break
			}
		}
		out = append(out, b.String())
	}
	return out
}

// balanced reports whether s closes every tag in names it opens.
func balanced(s string, names []string) bool {
	depth := 0
	for _, name := range names {
		depth += countOpen(s, name)
		depth -= strings.Count(s, "</"+name+">")
	}
	return depth <= 0
}

// countOpen counts opening tags named name, with or without attributes.
func countOpen(s, name string) int {
	n := 0
	prefix := "<" + name
	for {
		idx := strings.Index(s, prefix)
		if idx < 0 {
			return n
		}
		s = s[idx+len(prefix):]
		if s != "" && (s[0] == '>' || s[0] == ' ' || s[0] == '\t' || s[0] == '\n') {
			n++
		}
	}
}

// openTag returns the lowercase name of the tag s starts with, or "" when s
// does not start with a tag.
func openTag(s string) string {
	m := openTagPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}
