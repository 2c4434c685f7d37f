// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx writes converted documents as Office Open XML word
// processing files.
package docx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"github.com/pdiddy/doc-converter/pkg/types"
)

// Extension is the file extension of documents produced by Writer.
const Extension = ".docx"

const (
	defaultBodyFont = "Calibri"
	defaultBodySize = 11
	defaultCodeFont = "Courier New"
	defaultCodeSize = 10
)

// Writer serializes a Document into a .docx file.
type Writer struct {
	style types.StyleConfig
}

// NewWriter returns a Writer using style, filling unset fields with the
// defaults: Calibri 11pt body, Courier New 10pt code.
func NewWriter(style types.StyleConfig) *Writer {
	if style.BodyFont == "" {
		style.BodyFont = defaultBodyFont
	}
	if style.BodySize <= 0 {
		style.BodySize = defaultBodySize
	}
	if style.CodeFont == "" {
		style.CodeFont = defaultCodeFont
	}
	if style.CodeSize <= 0 {
		style.CodeSize = defaultCodeSize
	}
	return &Writer{style: style}
}

// Write renders doc and saves it to path, creating parent directories.
func (w *Writer) Write(doc types.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := w.Encode(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode renders doc and writes the .docx archive to out.
func (w *Writer) Encode(doc types.Document, out io.Writer) error {
	d := w.render(doc)
	if err := d.Save(out); err != nil {
		return fmt.Errorf("saving document %q: %w", doc.Title, err)
	}
	return nil
}

func (w *Writer) render(doc types.Document) *document.Document {
	d := document.New()
	setProperties(d, doc)

	var bullets document.NumberingDefinition
	haveBullets := false

	for _, b := range doc.Blocks {
		switch b.Kind {
		case types.BlockTitle:
			p := d.AddParagraph()
			p.SetStyle("Title")
			p.AddRun().AddText(b.Text)
		case types.BlockHeading:
			p := d.AddParagraph()
			p.SetStyle(fmt.Sprintf("Heading%d", b.Level))
			p.AddRun().AddText(b.Text)
		case types.BlockParagraph:
			w.bodyRun(d.AddParagraph(), b.Text)
		case types.BlockCode:
			p := d.AddParagraph()
			p.SetStyle("NoSpacing")
			run := p.AddRun()
			run.Properties().SetFontFamily(w.style.CodeFont)
			run.Properties().SetSize(measurement.Distance(w.style.CodeSize) * measurement.Point)
			run.AddText(b.Text)
		case types.BlockBulletList:
			if !haveBullets {
				bullets = addBulletDefinition(d)
				haveBullets = true
			}
			for _, item := range b.Items {
				p := d.AddParagraph()
				p.SetStyle("ListBullet")
				p.SetNumberingDefinition(bullets)
				p.SetNumberingLevel(0)
				w.bodyRun(p, item)
			}
		case types.BlockTable:
			if b.Table != nil {
				w.addTable(d, *b.Table)
				d.AddParagraph()
			}
		}
	}
	return d
}

func (w *Writer) bodyRun(p document.Paragraph, text string) document.Run {
	run := p.AddRun()
	run.Properties().SetFontFamily(w.style.BodyFont)
	run.Properties().SetSize(measurement.Distance(w.style.BodySize) * measurement.Point)
	run.AddText(text)
	return run
}

// addTable writes t as a bordered grid. The grid is as wide as the header;
// a table without a header is as wide as its widest row. Short rows are
// padded with empty cells and cells past the grid width are dropped.
func (w *Writer) addTable(d *document.Document, t types.Table) {
	cols := gridWidth(t)
	if cols == 0 {
		return
	}

	table := d.AddTable()
	table.Properties().SetWidthPercent(100)
	table.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 1*measurement.Point)

	if len(t.Header) > 0 {
		row := table.AddRow()
		for _, name := range t.Header {
			run := w.bodyRun(row.AddCell().AddParagraph(), name)
			run.Properties().SetBold(true)
		}
	}

	for _, cells := range t.Rows {
		row := table.AddRow()
		for i := 0; i < cols; i++ {
			text := ""
			if i < len(cells) {
				text = cells[i]
			}
			w.bodyRun(row.AddCell().AddParagraph(), text)
		}
	}
}

func gridWidth(t types.Table) int {
	if len(t.Header) > 0 {
		return len(t.Header)
	}
	width := 0
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func addBulletDefinition(d *document.Document) document.NumberingDefinition {
	def := d.Numbering.AddDefinition()
	lvl := def.AddLevel()
	lvl.SetFormat(wml.ST_NumberFormatBullet)
	lvl.SetAlignment(wml.ST_JcLeft)
	lvl.SetText("•")
	lvl.Properties().SetLeftIndent(0.25 * measurement.Inch)
	return def
}

// setProperties copies the title and selected front matter fields into the
// package core properties.
func setProperties(d *document.Document, doc types.Document) {
	d.CoreProperties.SetTitle(doc.Title)
	if author, ok := doc.Meta["author"].(string); ok && author != "" {
		d.CoreProperties.SetAuthor(author)
	}
	if summary, ok := doc.Meta["summary"].(string); ok && summary != "" {
		d.CoreProperties.SetDescription(summary)
	}
}
