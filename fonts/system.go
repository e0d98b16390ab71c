package fonts

import (
	"os"
	"strings"

	"github.com/adrg/sysfont"
)

// systemFinder wraps adrg/sysfont the same way unidoc/unipdf's renderer
// does — a single Finder scoped to TrueType/OpenType files. Font
// collections (`.ttc`) are skipped.
func systemFinder() *sysfont.Finder {
	return sysfont.NewFinder(&sysfont.FinderOpts{
		Extensions: []string{".ttf", ".otf"},
	})
}

// findSystemFont searches installed fonts for name using sysfont's own
// exact-then-substring matching, then reads the matched file from disk.
// It returns (nil, false) if nothing matches — callers fall further down
// the resolution chain rather than treating this as an error; the
// embedded stub is the ultimate fallback, so a system lookup never
// fails the overall resolution.
func findSystemFont(finder *sysfont.Finder, name string) ([]byte, bool) {
	fonts := finder.Match(name)
	if len(fonts) == 0 {
		return nil, false
	}

	lower := strings.ToLower(name)
	best := fonts[0]
	for _, f := range fonts {
		if strings.EqualFold(f.Name, name) || strings.EqualFold(f.Family, name) {
			best = f
			break
		}
		if strings.Contains(strings.ToLower(f.Filename), lower) {
			best = f
		}
	}

	data, err := os.ReadFile(best.Filename)
	if err != nil {
		return nil, false
	}
	return data, true
}

// helveticaEquivalents lists system fonts tried, in order, when a
// Builtin source needs real metrics and the exact name isn't installed.
var helveticaEquivalents = []string{"Arial", "Liberation Sans", "DejaVu Sans", "FreeSans"}
