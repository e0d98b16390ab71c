// Package output derives an output PDF path from a Markdown source path,
// the way circuit-geek-pagepipe's own output package derived a flat
// output filename from a source URL.
package output

import (
	"path/filepath"
	"strings"
)

// DerivePath returns the PDF path to write to when the CLI caller did
// not pass an explicit --output flag. sourcePath is the Markdown input
// path, or "-" for stdin (in which case the source's base name is
// unavailable and "output.pdf" is used instead).
func DerivePath(sourcePath string) string {
	if sourcePath == "-" || sourcePath == "" {
		return "output.pdf"
	}
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "output"
	}
	dir := filepath.Dir(sourcePath)
	return filepath.Join(dir, stem+".pdf")
}
