// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of converting one source file.
type ConversionStatus string

const (
	ConversionDone        ConversionStatus = "converted"
	ConversionSkipped     ConversionStatus = "skipped"
	ConversionFailed      ConversionStatus = "failed"
	ConversionUnsupported ConversionStatus = "unsupported"
)

// ConversionResult records the outcome of converting one source file.
type ConversionResult struct {
	// Source is the path of the Markdown input.
	Source string `json:"source" yaml:"source"`

	// Output is the path of the written document. Empty when nothing was
	// written because the file type is unsupported.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	Status ConversionStatus `json:"status" yaml:"status"`

	// Blocks and Tables count the blocks in the converted document.
	Blocks int `json:"blocks" yaml:"blocks"`
	Tables int `json:"tables" yaml:"tables"`

	// Error describes the failure for failed and unsupported results.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
