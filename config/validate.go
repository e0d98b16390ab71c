package config

import (
	"fmt"
	"os"

	"github.com/theiskaa/markdown2pdf/style"
)

// Validate returns human-readable pre-flight warnings about rec —
// a zero-size text style, a negative margin, an unreadable explicit
// font file path — without ever failing the run. Warnings only, never
// errors: Validate itself reports and returns nothing else.
func Validate(rec style.Record) []string {
	var warnings []string

	if rec.Text.Size == 0 {
		warnings = append(warnings, "text style has size 0; body text may not render visibly")
	}
	if rec.Margins.Top < 0 || rec.Margins.Right < 0 || rec.Margins.Bottom < 0 || rec.Margins.Left < 0 {
		warnings = append(warnings, "negative margin configured; content may be clipped or overlap the page edge")
	}
	if rec.Margins.Top+rec.Margins.Bottom >= 800 {
		warnings = append(warnings, "top and bottom margins leave little to no usable page height")
	}

	for name, st := range map[string]style.BasicTextStyle{
		"heading.1": rec.Heading1, "heading.2": rec.Heading2, "heading.3": rec.Heading3,
		"code": rec.Code, "block_quote": rec.BlockQuote, "link": rec.Link,
	} {
		if st.FontFamily == "" {
			continue
		}
		warnings = append(warnings, validateFontFamily(name, st.FontFamily)...)
	}

	return warnings
}

// validateFontFamily warns when family looks like an explicit file path
// that does not exist. Builtin/system names are never flagged here —
// fonts.Resolver's own fallback chain handles those.
func validateFontFamily(elementName, family string) []string {
	if len(family) < 4 {
		return nil
	}
	suffix := family[len(family)-4:]
	if suffix != ".ttf" && suffix != ".otf" {
		return nil
	}
	if _, err := os.Stat(family); err != nil {
		return []string{fmt.Sprintf("%s: font file %q is not readable; rendering will fail to load it", elementName, family)}
	}
	return nil
}
