// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doc-converter/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversions",
	Long: `History lists conversion runs recorded in the history database, newest
first, with their status and block counts.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg := loadConfig(viper.GetViper())
	store, err := history.Open(cfg.History.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		return encode(os.Stdout, entries, "json")
	}
	formatHistory(os.Stdout, entries)
	return nil
}

func formatHistory(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return
	}

	fmt.Fprintf(w, "%-20s  %-11s  %-6s  %-6s  %s\n", "When", "Status", "Blocks", "Tables", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, e := range entries {
		fmt.Fprintf(w, "%-20s  %-11s  %-6d  %-6d  %s\n",
			e.ConvertedAt.Local().Format("2006-01-02 15:04:05"), e.Status, e.Blocks, e.Tables, e.Source)
		if e.Error != "" {
			fmt.Fprintf(w, "%-20s  %s\n", "", e.Error)
		}
	}
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(historyCmd)
}
