// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command tvbdd drives the three-valued BDD engine from the command line,
// mirroring the root-command-plus-flags shape of the teacher corpus's own
// cmd/testgen driver.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "tvbdd",
	Short: "Drive the three-valued BDD engine (node budgets, bounded apply, valuations).",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML configuration file")
	rootCmd.AddCommand(reduceCmd, applyCmd, benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
