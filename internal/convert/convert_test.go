// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/doc-converter/internal/render"
	"github.com/pdiddy/doc-converter/pkg/types"
)

// fakeRenderer returns canned HTML or an error.
type fakeRenderer struct {
	html string
	err  error
}

func (f *fakeRenderer) Render(source []byte) (render.Rendered, error) {
	if f.err != nil {
		return render.Rendered{}, f.err
	}
	return render.Rendered{HTML: f.html}, nil
}

// memorySink keeps written documents in memory, keyed by path.
type memorySink struct {
	docs map[string]types.Document
	err  error
}

func (m *memorySink) Write(doc types.Document, path string) error {
	if m.err != nil {
		return m.err
	}
	if m.docs == nil {
		m.docs = map[string]types.Document{}
	}
	m.docs[path] = doc
	return os.WriteFile(path, []byte("docx"), 0o644)
}

// memoryRecorder collects recorded results.
type memoryRecorder struct {
	results []types.ConversionResult
	err     error
}

func (m *memoryRecorder) Record(_ context.Context, r types.ConversionResult) error {
	m.results = append(m.results, r)
	return m.err
}

// writeSource creates a source file in dir and returns its path.
func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		renderer   *fakeRenderer
		sinkErr    error
		preCreate  bool
		force      bool
		wantStatus types.ConversionStatus
		wantLog    string
	}{
		{
			name:       "successful conversion",
			file:       "notes.md",
			renderer:   &fakeRenderer{html: "<h1>Notes</h1>\n<p>Body.</p>\n"},
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
		},
		{
			name:       "markdown long extension",
			file:       "notes.markdown",
			renderer:   &fakeRenderer{html: "<p>x</p>"},
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
		},
		{
			name:       "skip existing output",
			file:       "notes.md",
			renderer:   &fakeRenderer{html: "<p>unused</p>"},
			preCreate:  true,
			wantStatus: types.ConversionSkipped,
			wantLog:    "skipped:",
		},
		{
			name:       "force overwrites existing output",
			file:       "notes.md",
			renderer:   &fakeRenderer{html: "<p>new</p>"},
			preCreate:  true,
			force:      true,
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
		},
		{
			name:       "render failure",
			file:       "notes.md",
			renderer:   &fakeRenderer{err: render.ErrRender},
			wantStatus: types.ConversionFailed,
			wantLog:    "failed:",
		},
		{
			name:       "sink failure",
			file:       "notes.md",
			renderer:   &fakeRenderer{html: "<p>x</p>"},
			sinkErr:    errors.New("disk full"),
			wantStatus: types.ConversionFailed,
			wantLog:    "disk full",
		},
		{
			name:       "tsx is unsupported",
			file:       "results.tsx",
			renderer:   &fakeRenderer{html: "<p>unused</p>"},
			wantStatus: types.ConversionUnsupported,
			wantLog:    "unsupported:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := writeSource(t, dir, tt.file, "# Notes\n")
			outDir := filepath.Join(dir, "out")
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				t.Fatal(err)
			}
			if tt.preCreate {
				if err := os.WriteFile(filepath.Join(outDir, "notes.docx"), []byte("old"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			sink := &memorySink{err: tt.sinkErr}
			p := NewPipeline(tt.renderer, sink, types.ConversionConfig{OutputDir: outDir, Force: tt.force})
			var log bytes.Buffer

			res := p.ConvertFile(context.Background(), src, &log)

			if res.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", res.Status, tt.wantStatus)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log output %q does not contain %q", log.String(), tt.wantLog)
			}
			if tt.wantStatus == types.ConversionDone && len(sink.docs) != 1 {
				t.Errorf("sink got %d documents, want 1", len(sink.docs))
			}
			if tt.wantStatus != types.ConversionDone && res.Status != types.ConversionSkipped && res.Error == "" {
				t.Error("non-success result should carry an error message")
			}
		})
	}
}

func TestConvertFile_DefaultsOutputNextToSource(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "sub/guide.md", "x")
	p := NewPipeline(&fakeRenderer{html: "<p>x</p>"}, &memorySink{}, types.ConversionConfig{})

	res := p.ConvertFile(context.Background(), src, &bytes.Buffer{})

	want := filepath.Join(dir, "sub", "guide.docx")
	if res.Output != want {
		t.Errorf("output = %q, want %q", res.Output, want)
	}
}

func TestConvertFile_Records(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "a.md", "x")
	rec := &memoryRecorder{err: errors.New("db locked")}
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p := NewPipeline(&fakeRenderer{html: "<table><tr><th>A</th></tr></table>\n<p>x</p>"}, &memorySink{},
		types.ConversionConfig{}, WithRecorder(rec))
	p.now = func() time.Time { return fixed }

	var log bytes.Buffer
	res := p.ConvertFile(context.Background(), src, &log)

	if len(rec.results) != 1 {
		t.Fatalf("recorded %d results, want 1", len(rec.results))
	}
	got := rec.results[0]
	if got.Status != types.ConversionDone || got.Tables != 1 || got.Blocks != 3 {
		t.Errorf("recorded %+v, want converted with 3 blocks and 1 table", got)
	}
	if !got.ConvertedAt.Equal(fixed) {
		t.Errorf("converted_at = %v, want %v", got.ConvertedAt, fixed)
	}
	if res.Status != types.ConversionDone {
		t.Errorf("recorder failure should not fail the conversion, got %q", res.Status)
	}
	if !strings.Contains(log.String(), "warning: history write failed") {
		t.Errorf("log should warn about the history failure, got %q", log.String())
	}
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	a := writeSource(t, dir, "a.md", "a")
	b := writeSource(t, dir, "b.md", "b")
	c := writeSource(t, dir, "c.tsx", "c")
	writeSource(t, outDir, "b.docx", "existing")

	p := NewPipeline(&fakeRenderer{html: "<p>x</p>"}, &memorySink{}, types.ConversionConfig{OutputDir: outDir})
	var log bytes.Buffer
	result, err := p.ConvertBatch(context.Background(), []string{a, b, c}, &log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
	if result.Unsupported != 1 {
		t.Errorf("unsupported = %d, want 1", result.Unsupported)
	}
	if result.HasFailures() {
		t.Error("HasFailures should be false")
	}
	if result.Total() != 3 {
		t.Errorf("total = %d, want 3", result.Total())
	}
	if !strings.Contains(log.String(), "Batch summary:") {
		t.Error("batch output should contain summary line")
	}
}

func TestConvertBatch_Cancelled(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.md", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPipeline(&fakeRenderer{html: "<p>x</p>"}, &memorySink{}, types.ConversionConfig{})
	result, err := p.ConvertBatch(ctx, []string{a}, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if result.Total() != 0 {
		t.Errorf("total = %d, want 0", result.Total())
	}
}

func TestFindSources(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.md", "")
	writeSource(t, dir, "a.markdown", "")
	writeSource(t, dir, "nested/c.MD", "")
	writeSource(t, dir, "skip.txt", "")
	writeSource(t, dir, "out/a.docx", "")

	paths, err := FindSources(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.markdown"),
		filepath.Join(dir, "b.md"),
		filepath.Join(dir, "nested", "c.MD"),
	}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"/tmp/report.md":         "report",
		"notes.v2.markdown":      "notes.v2",
		filepath.Join("a", "b"): "b",
	}
	for in, want := range tests {
		if got := Title(in); got != want {
			t.Errorf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}
