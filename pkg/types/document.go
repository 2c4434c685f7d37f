// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlockKind identifies the variant carried by a Block.
type BlockKind string

const (
	BlockTitle      BlockKind = "title"
	BlockHeading    BlockKind = "heading"
	BlockParagraph  BlockKind = "paragraph"
	BlockCode       BlockKind = "code"
	BlockBulletList BlockKind = "bullet_list"
	BlockTable      BlockKind = "table"
)

// Block is one block-level element of a converted document. Only the fields
// relevant to Kind are set.
type Block struct {
	Kind BlockKind `json:"kind" yaml:"kind"`

	// Level is the heading level (1-3). Zero for the document title.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	// Text holds heading, paragraph, and code content.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Items holds bullet list entries in source order.
	Items []string `json:"items,omitempty" yaml:"items,omitempty"`

	// Table holds the grid for table blocks.
	Table *Table `json:"table,omitempty" yaml:"table,omitempty"`
}

// Table is a header row plus data rows. Rows keep their full cell count even
// when wider than the header.
type Table struct {
	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// Records pairs each row's cells with header names by position. Cells past
// the last header have no name and are dropped. A table without a header
// produces no records.
func (t Table) Records() []map[string]string {
	if len(t.Header) == 0 {
		return nil
	}
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]string, len(t.Header))
		for i, cell := range row {
			if i >= len(t.Header) {
				break
			}
			rec[t.Header[i]] = cell
		}
		records = append(records, rec)
	}
	return records
}

// Document is the ordered block sequence produced from one source file.
type Document struct {
	// Title is the source file's base name without extension.
	Title string `json:"title" yaml:"title"`

	// Meta holds front matter metadata stripped by the renderer, if any.
	Meta map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`

	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Count returns the number of blocks of the given kind.
func (d Document) Count(kind BlockKind) int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// Tables returns the table blocks in document order.
func (d Document) Tables() []Table {
	var out []Table
	for _, b := range d.Blocks {
		if b.Kind == BlockTable && b.Table != nil {
			out = append(out, *b.Table)
		}
	}
	return out
}

// Title returns a title block.
func Title(text string) Block {
	return Block{Kind: BlockTitle, Text: text}
}

// Heading returns a heading block at level.
func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

// Paragraph returns a paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

// Code returns a code block rendered in a fixed-width font.
func Code(text string) Block {
	return Block{Kind: BlockCode, Text: text}
}

// BulletList returns a bullet list block.
func BulletList(items ...string) Block {
	return Block{Kind: BlockBulletList, Items: items}
}

// TableBlock wraps t in a table block.
func TableBlock(t Table) Block {
	return Block{Kind: BlockTable, Table: &t}
}
