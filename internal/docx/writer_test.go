// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/doc-converter/pkg/types"
)

// readPart returns the named part of a .docx archive.
func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func sampleDoc() types.Document {
	return types.Document{
		Title: "report",
		Meta:  map[string]any{"author": "Jane Roe"},
		Blocks: []types.Block{
			types.Title("report"),
			types.Heading(2, "Results"),
			types.Paragraph("Numbers below."),
			types.TableBlock(types.Table{
				Header: []string{"Metric", "Value"},
				Rows:   [][]string{{"Sensitivity", "75.0%", "dropped"}, {"Specificity"}},
			}),
			types.Code("go test ./..."),
			types.BulletList("first item", "second item"),
		},
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(types.StyleConfig{}).Encode(sampleDoc(), &buf))

	body := readPart(t, buf.Bytes(), "word/document.xml")
	for _, want := range []string{
		"report", "Results", "Numbers below.",
		"Metric", "Value", "Sensitivity", "75.0%", "Specificity",
		"go test ./...", "first item", "second item",
		"Heading2", "Courier New", "Calibri",
	} {
		assert.Contains(t, body, want)
	}
	assert.NotContains(t, body, "dropped", "cells past the header width are not written")
}

func TestEncode_CustomFonts(t *testing.T) {
	doc := types.Document{
		Title:  "fonts",
		Blocks: []types.Block{types.Paragraph("body"), types.Code("code")},
	}
	var buf bytes.Buffer
	w := NewWriter(types.StyleConfig{BodyFont: "Georgia", CodeFont: "Menlo"})
	require.NoError(t, w.Encode(doc, &buf))

	body := readPart(t, buf.Bytes(), "word/document.xml")
	assert.Contains(t, body, "Georgia")
	assert.Contains(t, body, "Menlo")
	assert.NotContains(t, body, "Courier New")
}

func TestEncode_CoreProperties(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(types.StyleConfig{}).Encode(sampleDoc(), &buf))

	core := readPart(t, buf.Bytes(), "docProps/core.xml")
	assert.Contains(t, core, "report")
	assert.Contains(t, core, "Jane Roe")
}

func TestGridWidth(t *testing.T) {
	tests := []struct {
		name  string
		table types.Table
		want  int
	}{
		{name: "header decides", table: types.Table{Header: []string{"a", "b"}, Rows: [][]string{{"1", "2", "3"}}}, want: 2},
		{name: "widest row without header", table: types.Table{Rows: [][]string{{"1"}, {"1", "2", "3"}}}, want: 3},
		{name: "empty", table: types.Table{}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gridWidth(tt.table))
		})
	}
}

func TestWrite_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "report"+Extension)
	require.NoError(t, NewWriter(types.StyleConfig{}).Write(sampleDoc(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PK"), "output should be a zip archive")
}
