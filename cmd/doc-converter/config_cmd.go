// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Long: `Config prints every configuration key with its effective value after
defaults, config file, environment, and flags are merged.`,
	Run: func(cmd *cobra.Command, args []string) {
		printConfig(os.Stdout, viper.GetViper())
	},
}

func printConfig(w io.Writer, v *viper.Viper) {
	for _, o := range configOptions() {
		fmt.Fprintf(w, "%-22s = %v\n", o.Key, v.Get(o.Key))
		fmt.Fprintf(w, "%-22s   # %s\n", "", o.Help)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
