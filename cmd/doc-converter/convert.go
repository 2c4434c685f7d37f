// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doc-converter/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert Markdown files to .docx",
	Long: `Convert renders each Markdown file (.md, .markdown) to HTML and writes a
Word document named after the source. The document opens with the file name
as its title, followed by the headings, paragraphs, code blocks, bullet
lists, and tables of the source.

Existing documents are skipped unless --force is given. Other file types,
including .tsx, are reported as unsupported. Use --dump to print the block
model instead of writing files.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	dump, _ := cmd.Flags().GetString("dump")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	if len(args) == 0 && dir == "" {
		return fmt.Errorf("no input: pass Markdown files or --dir")
	}

	cfg := loadConfig(viper.GetViper())
	p, closeFn, err := newPipeline(cfg, dump == "" && !noHistory)
	if err != nil {
		return err
	}
	defer closeFn()

	if dump != "" {
		return dumpDocuments(p, args, dir, dump)
	}

	var result convert.BatchResult
	if dir != "" {
		result, err = p.ConvertDir(cmd.Context(), dir, os.Stdout)
	} else {
		result, err = p.ConvertBatch(cmd.Context(), args, os.Stdout)
	}
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func dumpDocuments(p *convert.Pipeline, args []string, dir, format string) error {
	paths := args
	if dir != "" {
		found, err := convert.FindSources(dir)
		if err != nil {
			return err
		}
		paths = append(paths, found...)
	}
	for _, src := range paths {
		doc, err := p.Decode(src)
		if err != nil {
			return err
		}
		if err := encode(os.Stdout, doc, format); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	convertCmd.Flags().String("output-dir", "", "directory for converted documents (default: next to each source)")
	convertCmd.Flags().String("dir", "", "convert every Markdown file under this directory")
	convertCmd.Flags().Bool("force", false, "overwrite existing documents")
	convertCmd.Flags().String("renderer", "goldmark", "markdown renderer: goldmark or pandoc")
	convertCmd.Flags().String("dump", "", "print the document model as yaml or json instead of writing files")
	convertCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	_ = viper.BindPFlag("conversion.output_dir", convertCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("conversion.force", convertCmd.Flags().Lookup("force"))
	_ = viper.BindPFlag("render.backend", convertCmd.Flags().Lookup("renderer"))

	rootCmd.AddCommand(convertCmd)
}
