// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render converts Markdown source into HTML for the document
// builder. Two backends exist: an in-process goldmark engine and a pandoc
// container driven through internal/container.
package render

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
)

var (
	// ErrRender wraps every failure to turn Markdown into HTML. A render
	// failure aborts conversion of the file being processed.
	ErrRender = errors.New("render failed")

	// ErrUnknownExtension is returned when a configured extension name has
	// no mapping.
	ErrUnknownExtension = errors.New("unknown markdown extension")
)

// Rendered is the output of a Renderer.
type Rendered struct {
	// HTML is the rendered markup.
	HTML string

	// Meta holds the front matter stripped from the source when the meta
	// extension is enabled. Nil otherwise.
	Meta map[string]any
}

// Renderer turns Markdown source into HTML.
type Renderer interface {
	Render(source []byte) (Rendered, error)
}

// splitMeta separates YAML or TOML front matter from the Markdown body.
// Sources without front matter come back unchanged with nil metadata.
func splitMeta(source []byte) (map[string]any, []byte, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parsing front matter: %v", ErrRender, err)
	}
	if len(meta) == 0 {
		meta = nil
	}
	return meta, body, nil
}
