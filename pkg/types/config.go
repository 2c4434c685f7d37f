// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RendererBackend identifies the Markdown-to-HTML renderer.
type RendererBackend string

const (
	RendererGoldmark RendererBackend = "goldmark"
	RendererPandoc   RendererBackend = "pandoc"
)

// DefaultExtensions is the Markdown extension set enabled when the
// configuration names none.
var DefaultExtensions = []string{
	"tables",
	"fenced_code",
	"footnotes",
	"attr_list",
	"def_list",
	"abbr",
	"codehilite",
	"meta",
	"sane_lists",
	"smarty",
	"toc",
}

// RenderConfig holds settings for the Markdown rendering stage.
type RenderConfig struct {
	// Backend selects the renderer: goldmark (in-process) or pandoc (container).
	Backend RendererBackend `json:"backend" yaml:"backend"`

	// Extensions lists Markdown extension names to enable.
	Extensions []string `json:"extensions" yaml:"extensions"`

	// PandocImage is the container image used by the pandoc backend.
	PandocImage string `json:"pandoc_image" yaml:"pandoc_image"`
}

// StyleConfig holds font settings applied by the document writer.
type StyleConfig struct {
	// BodyFont is the proportional font for body text (default Calibri).
	BodyFont string `json:"body_font" yaml:"body_font"`

	// BodySize is the body font size in points (default 11).
	BodySize float64 `json:"body_size" yaml:"body_size"`

	// CodeFont is the fixed-width font for code blocks (default Courier New).
	CodeFont string `json:"code_font" yaml:"code_font"`

	// CodeSize is the code font size in points (default 10).
	CodeSize float64 `json:"code_size" yaml:"code_size"`
}

// ConversionConfig holds settings for file and batch conversion.
type ConversionConfig struct {
	// OutputDir is where converted documents are written. Empty means next
	// to the source file.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Force overwrites existing output instead of skipping.
	Force bool `json:"force" yaml:"force"`
}

// HistoryConfig holds settings for the conversion history log.
type HistoryConfig struct {
	// Enabled turns history recording on or off.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding history.db.
	Dir string `json:"dir" yaml:"dir"`
}

// ConverterConfig groups all configuration sections.
type ConverterConfig struct {
	Render     RenderConfig     `json:"render" yaml:"render"`
	Style      StyleConfig      `json:"style" yaml:"style"`
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	History    HistoryConfig    `json:"history" yaml:"history"`
}
