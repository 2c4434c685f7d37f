// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// typographer emits Unicode punctuation instead of named entities, so the
// builder's cleaner does not have to know about &ldquo; and friends.
var typographer = extension.NewTypographer(
	extension.WithTypographicSubstitutions(extension.TypographicSubstitutions{
		extension.LeftSingleQuote:  []byte("‘"),
		extension.RightSingleQuote: []byte("’"),
		extension.LeftDoubleQuote:  []byte("“"),
		extension.RightDoubleQuote: []byte("”"),
		extension.EnDash:           []byte("–"),
		extension.EmDash:           []byte("—"),
		extension.Ellipsis:         []byte("…"),
		extension.LeftAngleQuote:   []byte("«"),
		extension.RightAngleQuote:  []byte("»"),
		extension.Apostrophe:       []byte("’"),
	}),
)

// extensionRegistry maps extension names to goldmark extenders.
var extensionRegistry = map[string]goldmark.Extender{
	"tables":        extension.Table,
	"table":         extension.Table,
	"footnotes":     extension.Footnote,
	"footnote":      extension.Footnote,
	"def_list":      extension.DefinitionList,
	"definition":    extension.DefinitionList,
	"smarty":        typographer,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"gfm":           extension.GFM,
}

// parserOnly lists names handled by parser options or by the renderer
// itself rather than by an extender. Names mapped to "" need nothing.
var parserOnly = map[string]string{
	"attr_list":   "attribute",
	"toc":         "heading_id",
	"meta":        "meta",
	"fenced_code": "",
	"sane_lists":  "",
	"codehilite":  "",
	"abbr":        "",
}

// GoldmarkRenderer renders Markdown in-process with goldmark. It is safe
// for concurrent use.
type GoldmarkRenderer struct {
	engine goldmark.Markdown
	meta   bool
}

// NewGoldmarkRenderer builds a renderer with the named extensions enabled.
// It returns ErrUnknownExtension for names it cannot map.
func NewGoldmarkRenderer(names []string) (*GoldmarkRenderer, error) {
	var (
		exts    []goldmark.Extender
		popts   []parser.Option
		useMeta bool
	)
	seen := map[string]bool{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		if ext, ok := extensionRegistry[key]; ok {
			exts = append(exts, ext)
			continue
		}
		opt, ok := parserOnly[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
		}
		switch opt {
		case "attribute":
			popts = append(popts, parser.WithAttribute())
		case "heading_id":
			popts = append(popts, parser.WithAutoHeadingID())
		case "meta":
			useMeta = true
		}
	}

	engine := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(popts...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &GoldmarkRenderer{engine: engine, meta: useMeta}, nil
}

// Render converts source to HTML. With the meta extension enabled, front
// matter is stripped first and returned in Rendered.Meta.
func (g *GoldmarkRenderer) Render(source []byte) (Rendered, error) {
	var out Rendered
	body := source
	if g.meta {
		meta, rest, err := splitMeta(source)
		if err != nil {
			return Rendered{}, err
		}
		out.Meta, body = meta, rest
	}

	var buf bytes.Buffer
	if err := g.engine.Convert(body, &buf); err != nil {
		return Rendered{}, fmt.Errorf("%w: %v", ErrRender, err)
	}
	out.HTML = buf.String()
	return out, nil
}
