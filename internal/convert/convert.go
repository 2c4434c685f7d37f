// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives Markdown-to-document conversion for single files
// and batches: read the source, render it to HTML, build the block model,
// and hand the result to a sink.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/doc-converter/internal/builder"
	"github.com/pdiddy/doc-converter/internal/docx"
	"github.com/pdiddy/doc-converter/internal/render"
	"github.com/pdiddy/doc-converter/pkg/types"
)

// ErrUnsupported is returned for source files that are not Markdown.
var ErrUnsupported = errors.New("unsupported file type")

// markdownExts lists the source extensions the pipeline converts.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// Sink persists a finished document.
type Sink interface {
	Write(doc types.Document, path string) error
}

// Recorder stores conversion results. The history store implements it.
type Recorder interface {
	Record(ctx context.Context, r types.ConversionResult) error
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted   int
	Skipped     int
	Failed      int
	Unsupported int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed + r.Unsupported
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Pipeline converts Markdown files into documents.
type Pipeline struct {
	renderer render.Renderer
	sink     Sink
	recorder Recorder
	cfg      types.ConversionConfig
	now      func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRecorder records every result, including skips and failures.
func WithRecorder(r Recorder) Option {
	return func(p *Pipeline) { p.recorder = r }
}

// NewPipeline returns a pipeline that renders with r and writes with sink.
func NewPipeline(r render.Renderer, sink Sink, cfg types.ConversionConfig, opts ...Option) *Pipeline {
	p := &Pipeline{renderer: r, sink: sink, cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Supported reports whether path has a Markdown extension.
func Supported(path string) bool {
	return markdownExts[strings.ToLower(filepath.Ext(path))]
}

// Title returns the document title for a source path: its base name
// without extension.
func Title(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath returns where the document for src is written: the configured
// output directory, or the source's own directory when none is set.
func (p *Pipeline) OutputPath(src string) string {
	dir := p.cfg.OutputDir
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, Title(src)+docx.Extension)
}

// Decode reads a Markdown file and returns its document model without
// writing anything.
func (p *Pipeline) Decode(src string) (types.Document, error) {
	if !Supported(src) {
		return types.Document{}, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(src))
	}
	source, err := os.ReadFile(src)
	if err != nil {
		return types.Document{}, fmt.Errorf("reading %s: %w", src, err)
	}
	rendered, err := p.renderer.Render(source)
	if err != nil {
		return types.Document{}, fmt.Errorf("rendering %s: %w", filepath.Base(src), err)
	}
	doc := builder.Build(Title(src), rendered.HTML)
	doc.Meta = rendered.Meta
	return doc, nil
}

// ConvertFile converts one source file, writing a status line to w. If the
// output already exists and Force is not set, it skips the file.
func (p *Pipeline) ConvertFile(ctx context.Context, src string, w io.Writer) types.ConversionResult {
	name := filepath.Base(src)
	res := types.ConversionResult{Source: src, ConvertedAt: p.now().UTC()}

	if !Supported(src) {
		res.Status = types.ConversionUnsupported
		res.Error = fmt.Sprintf("%v: %s", ErrUnsupported, filepath.Ext(src))
		fmt.Fprintf(w, "unsupported: %s (%s)\n", name, res.Error)
		p.record(ctx, res, w)
		return res
	}

	res.Output = p.OutputPath(src)
	if _, err := os.Stat(res.Output); err == nil && !p.cfg.Force {
		res.Status = types.ConversionSkipped
		fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
		p.record(ctx, res, w)
		return res
	}

	doc, err := p.Decode(src)
	if err == nil {
		err = p.sink.Write(doc, res.Output)
	}
	if err != nil {
		res.Status = types.ConversionFailed
		res.Error = err.Error()
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		p.record(ctx, res, w)
		return res
	}

	res.Status = types.ConversionDone
	res.Blocks = len(doc.Blocks)
	res.Tables = doc.Count(types.BlockTable)
	fmt.Fprintf(w, "converted: %s -> %s (%d blocks, %d tables)\n", name, res.Output, res.Blocks, res.Tables)
	p.record(ctx, res, w)
	return res
}

func (p *Pipeline) record(ctx context.Context, res types.ConversionResult, w io.Writer) {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.Record(ctx, res); err != nil {
		fmt.Fprintf(w, "warning: history write failed: %v\n", err)
	}
}

// ConvertBatch converts each path in order, printing per-file status to w
// and returning a summary. It stops early when ctx is cancelled.
func (p *Pipeline) ConvertBatch(ctx context.Context, paths []string, w io.Writer) (BatchResult, error) {
	var result BatchResult
	for _, src := range paths {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		switch p.ConvertFile(ctx, src, w).Status {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionSkipped:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		case types.ConversionUnsupported:
			result.Unsupported++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed, %d unsupported (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Unsupported, result.Total())
	return result, nil
}

// ConvertDir converts every Markdown file under dir, in lexical order.
// Files with other extensions are not visited.
func (p *Pipeline) ConvertDir(ctx context.Context, dir string, w io.Writer) (BatchResult, error) {
	paths, err := FindSources(dir)
	if err != nil {
		return BatchResult{}, err
	}
	return p.ConvertBatch(ctx, paths, w)
}

// FindSources returns the Markdown files under dir, sorted.
func FindSources(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && Supported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
