// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"

	"github.com/pdiddy/doc-converter/internal/container"
)

// DefaultPandocImage is the container image used when none is configured.
const DefaultPandocImage = "pandoc/core:latest"

// pandocArgs selects pandoc's Markdown reader with the extensions that
// match the goldmark set, writing an HTML fragment.
var pandocArgs = []string{
	"--from", "markdown+pipe_tables+fenced_code_blocks+footnotes+definition_lists+smart",
	"--to", "html",
	"--wrap", "none",
}

// PandocRenderer renders Markdown by piping it through a pandoc container.
type PandocRenderer struct {
	runtime container.Runtime
	image   string
}

// NewPandocRenderer creates a renderer that runs image on rt. It verifies
// that the image exists locally before returning.
func NewPandocRenderer(rt container.Runtime, image string) (*PandocRenderer, error) {
	if image == "" {
		image = DefaultPandocImage
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("pandoc image not available in %s: %w", rt.Name(), err)
	}
	return &PandocRenderer{runtime: rt, image: image}, nil
}

// Render strips front matter, then converts the body with pandoc.
func (p *PandocRenderer) Render(source []byte) (Rendered, error) {
	meta, body, err := splitMeta(source)
	if err != nil {
		return Rendered{}, err
	}

	var out bytes.Buffer
	if err := p.runtime.Run(p.image, pandocArgs, bytes.NewReader(body), &out); err != nil {
		return Rendered{}, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return Rendered{HTML: out.String(), Meta: meta}, nil
}
