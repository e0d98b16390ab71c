// Package cmd implements the markdown2pdf CLI commands using Cobra, the
// way circuit-geek-pagepipe's own cmd package wires up its root/convert
// command pair.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "markdown2pdf",
	Short: "markdown2pdf — convert Markdown source into a styled PDF",
	Long: `markdown2pdf renders Markdown text into a paginated, styled PDF document.

Usage:
  markdown2pdf convert <file|-> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
