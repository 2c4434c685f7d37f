// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/doc-converter/internal/render"
	"github.com/pdiddy/doc-converter/pkg/types"
)

// configOption describes one configuration key and its default.
type configOption struct {
	Key     string
	Default any
	Help    string
}

// configOptions is the single list of configuration keys. Flags bind to
// these keys, environment variables override them as DOC_CONVERTER_<KEY>
// with dots replaced by underscores.
func configOptions() []configOption {
	return []configOption{
		{Key: "render.backend", Default: string(types.RendererGoldmark), Help: "renderer: goldmark or pandoc"},
		{Key: "render.extensions", Default: types.DefaultExtensions, Help: "markdown extensions to enable"},
		{Key: "render.pandoc_image", Default: render.DefaultPandocImage, Help: "container image for the pandoc renderer"},
		{Key: "style.body_font", Default: "Calibri", Help: "body text font"},
		{Key: "style.body_size", Default: 11.0, Help: "body text size in points"},
		{Key: "style.code_font", Default: "Courier New", Help: "code block font"},
		{Key: "style.code_size", Default: 10.0, Help: "code block size in points"},
		{Key: "conversion.output_dir", Default: "", Help: "output directory (default: next to each source)"},
		{Key: "conversion.force", Default: false, Help: "overwrite existing documents"},
		{Key: "history.enabled", Default: true, Help: "record conversions in the history database"},
		{Key: "history.dir", Default: defaultHistoryDir(), Help: "directory holding history.db"},
	}
}

func applyDefaults(v *viper.Viper) {
	for _, o := range configOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

func defaultHistoryDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "doc-converter")
	}
	return ".doc-converter"
}

// loadConfig reads the merged configuration from v.
func loadConfig(v *viper.Viper) types.ConverterConfig {
	return types.ConverterConfig{
		Render: types.RenderConfig{
			Backend:     types.RendererBackend(v.GetString("render.backend")),
			Extensions:  v.GetStringSlice("render.extensions"),
			PandocImage: v.GetString("render.pandoc_image"),
		},
		Style: types.StyleConfig{
			BodyFont: v.GetString("style.body_font"),
			BodySize: v.GetFloat64("style.body_size"),
			CodeFont: v.GetString("style.code_font"),
			CodeSize: v.GetFloat64("style.code_size"),
		},
		Conversion: types.ConversionConfig{
			OutputDir: v.GetString("conversion.output_dir"),
			Force:     v.GetBool("conversion.force"),
		},
		History: types.HistoryConfig{
			Enabled: v.GetBool("history.enabled"),
			Dir:     v.GetString("history.dir"),
		},
	}
}
