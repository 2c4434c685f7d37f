// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doc-converter/internal/container"
	"github.com/pdiddy/doc-converter/internal/convert"
	"github.com/pdiddy/doc-converter/internal/docx"
	"github.com/pdiddy/doc-converter/internal/history"
	"github.com/pdiddy/doc-converter/internal/render"
	"github.com/pdiddy/doc-converter/pkg/types"
)

// newRenderer builds the renderer selected by cfg.
func newRenderer(cfg types.RenderConfig) (render.Renderer, error) {
	switch cfg.Backend {
	case types.RendererGoldmark, "":
		return render.NewGoldmarkRenderer(cfg.Extensions)
	case types.RendererPandoc:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		return render.NewPandocRenderer(rt, cfg.PandocImage)
	default:
		return nil, fmt.Errorf("unknown renderer %q: use goldmark or pandoc", cfg.Backend)
	}
}

// newPipeline wires renderer, writer, and history store. The returned
// close function releases the history database.
func newPipeline(cfg types.ConverterConfig, recordHistory bool) (*convert.Pipeline, func(), error) {
	r, err := newRenderer(cfg.Render)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {}
	var opts []convert.Option
	if recordHistory && cfg.History.Enabled {
		store, err := history.Open(cfg.History.Dir)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() { store.Close() }
		opts = append(opts, convert.WithRecorder(store))
	}

	p := convert.NewPipeline(r, docx.NewWriter(cfg.Style), cfg.Conversion, opts...)
	return p, closeFn, nil
}

// encode writes v to w as YAML or JSON.
func encode(w io.Writer, v any, format string) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q: use yaml or json", format)
	}
}
