// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package builder turns rendered Markdown HTML into a structured document:
// headings, paragraphs, code blocks, bullet lists, and tables.
//
// The builder is a single forward pass over the markup. It splits the input
// on table markers, extracts a grid from each table region, and classifies
// the content between tables line by line. It performs no I/O and holds no
// state, so it is safe to call from any goroutine.
package builder

import (
	"strings"

	"github.com/pdiddy/doc-converter/pkg/types"
)

const (
	tableOpen  = "<table>"
	tableClose = "</table>"
)

// Build assembles a document from rendered markup. A title block carrying
// title is always first. Fragments that open a table without closing it are
// dropped whole, and table regions without rows contribute no block.
func Build(title, markup string) types.Document {
	doc := types.Document{
		Title:  title,
		Blocks: []types.Block{types.Title(title)},
	}

	fragments := strings.Split(markup, tableOpen)
	doc.Blocks = append(doc.Blocks, Classify(fragments[0])...)

	for _, frag := range fragments[1:] {
		body, rest, ok := strings.Cut(frag, tableClose)
		if !ok {
			continue
		}
		if table, ok := ExtractTable(body); ok {
			doc.Blocks = append(doc.Blocks, types.TableBlock(table))
		}
		doc.Blocks = append(doc.Blocks, Classify(rest)...)
	}
	return doc
}
