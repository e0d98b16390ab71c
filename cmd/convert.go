// Package cmd — convert command.
// Orchestrates the pipeline: read Markdown source -> lex -> render -> write.
// It maps the flags onto the style config source and the font configuration.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theiskaa/markdown2pdf"
	"github.com/theiskaa/markdown2pdf/config"
	"github.com/theiskaa/markdown2pdf/core/output"
)

// Flag variables.
var (
	flagOutput       string
	flagStyle        string
	flagDefaultFont  string
	flagCodeFont     string
	flagNoSubsetting bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|->",
	Short: "Convert a Markdown file (or stdin) to PDF",
	Long: `Convert reads Markdown source from a file or stdin and renders it to PDF.

Examples:
  markdown2pdf convert README.md
  markdown2pdf convert README.md --output report.pdf
  markdown2pdf convert - --style mystyle.toml < README.md
  markdown2pdf convert README.md --default-font Times --code-font Courier`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagOutput, "output", "", "Output PDF path (default: derived from the source filename)")
	convertCmd.Flags().StringVar(&flagStyle, "style", "", "Path to a TOML style config (default: built-in style)")
	convertCmd.Flags().StringVar(&flagDefaultFont, "default-font", "", "Body text font name")
	convertCmd.Flags().StringVar(&flagCodeFont, "code-font", "", "Code block font name")
	convertCmd.Flags().BoolVar(&flagNoSubsetting, "no-subsetting", false, "Disable font subsetting")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	markdown, err := readSource(source)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	configSource := config.Default()
	if flagStyle != "" {
		configSource = config.File(flagStyle)
	}

	enableSubsetting := !flagNoSubsetting
	fontConfig := markdown2pdf.FontConfig{
		DefaultFont:      flagDefaultFont,
		CodeFont:         flagCodeFont,
		EnableSubsetting: &enableSubsetting,
	}

	outPath := flagOutput
	if outPath == "" {
		outPath = output.DerivePath(source)
	}

	if err := markdown2pdf.ParseIntoFile(markdown, outPath, configSource, fontConfig); err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}

	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", outPath)
	return nil
}

// readSource reads Markdown text from a file path, or from stdin when
// source is "-".
func readSource(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
