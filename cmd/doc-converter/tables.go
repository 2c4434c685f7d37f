// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doc-converter/pkg/types"
)

// tableRecords is the by-name view of one table.
type tableRecords struct {
	Index   int                 `json:"index" yaml:"index"`
	Header  []string            `json:"header" yaml:"header"`
	Records []map[string]string `json:"records" yaml:"records"`
}

var tablesCmd = &cobra.Command{
	Use:   "tables <file>",
	Short: "Print the tables of a Markdown file as records",
	Long: `Tables renders a Markdown file and prints every table it contains as a
list of records keyed by header name. Cells beyond the last header have no
name and are left out. Tables without a header row produce no records.`,
	Args: cobra.ExactArgs(1),
	RunE: runTables,
}

func runTables(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	p, closeFn, err := newPipeline(loadConfig(viper.GetViper()), false)
	if err != nil {
		return err
	}
	defer closeFn()

	doc, err := p.Decode(args[0])
	if err != nil {
		return err
	}
	return encode(os.Stdout, collectRecords(doc), format)
}

func collectRecords(doc types.Document) []tableRecords {
	out := []tableRecords{}
	for i, t := range doc.Tables() {
		out = append(out, tableRecords{Index: i + 1, Header: t.Header, Records: t.Records()})
	}
	return out
}

func init() {
	tablesCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(tablesCmd)
}
