package fonts

import (
	"fmt"
	"os"

	"github.com/adrg/sysfont"
)

// ErrorKind classifies a font resolution failure.
type ErrorKind int

// Recognized font error kinds.
const (
	ErrorUnreadableFile ErrorKind = iota
	ErrorMalformedFile
)

// Error is returned only when an explicit File source is unreadable or
// malformed — System and Builtin sources always succeed because the
// embedded stub is the ultimate fallback.
type Error struct {
	FontName   string
	Kind       ErrorKind
	Message    string
	Suggestion string
	Cause      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("font %q: %s", e.FontName, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Config carries the font-related options exposed at the library
// boundary: default/code font names or explicit sources, plus the
// subsetting toggle.
type Config struct {
	DefaultFont       string
	CodeFont          string
	DefaultFontSource *Source
	CodeFontSource    *Source
	EnableSubsetting  bool
}

// DefaultConfig returns the documented defaults: Helvetica body text,
// builtin Courier for code, subsetting enabled.
func DefaultConfig() Config {
	return Config{
		DefaultFont:      "Helvetica",
		CodeFont:         "Courier",
		EnableSubsetting: true,
	}
}

// Resolver resolves font names to Family bundles, caching by source so
// that repeated requests for the same name — and the four faces of one
// family sourced from a single file — share one underlying byte buffer.
// Not safe for concurrent use: the cache carries no locks.
type Resolver struct {
	cache  map[string]*Family
	finder *sysfont.Finder
}

// NewResolver creates a Resolver with an empty cache.
func NewResolver() *Resolver {
	return &Resolver{cache: make(map[string]*Family)}
}

// Resolve looks up name and returns its Family, populating the cache on
// first resolution.
func (r *Resolver) Resolve(name string) (*Family, error) {
	return r.ResolveSource(ResolveName(name))
}

// ResolveSource resolves an explicit Source to a Family.
func (r *Resolver) ResolveSource(src Source) (*Family, error) {
	key := cacheKey(src)
	if fam, ok := r.cache[key]; ok {
		return fam, nil
	}

	fam, err := r.load(src)
	if err != nil {
		return nil, err
	}
	r.cache[key] = fam
	return fam, nil
}

func cacheKey(src Source) string {
	switch src.Kind {
	case SourceBuiltin:
		return "builtin:" + src.Name
	case SourceSystem:
		return "system:" + src.Name
	case SourceFile:
		return "file:" + src.Path
	default:
		return fmt.Sprintf("bytes:%p:%d", src.Bytes, len(src.Bytes))
	}
}

func (r *Resolver) load(src Source) (*Family, error) {
	switch src.Kind {
	case SourceBuiltin:
		return r.loadBuiltin(src.Name)
	case SourceSystem:
		return r.loadSystem(src.Name)
	case SourceFile:
		return r.loadFile(src.Path)
	case SourceBytes:
		return familyFromSingleBuffer(src.Bytes, ""), nil
	default:
		return r.loadBuiltin("Helvetica")
	}
}

// loadBuiltin resolves one of the 14 standard PDF core fonts. It still
// loads a real TTF for metrics, preferring an installed Helvetica
// equivalent, and falls back to the embedded stub when none is found —
// the PDF continues to reference the builtin font name directly, so
// glyphs render correctly regardless of which metrics buffer backs them.
func (r *Resolver) loadBuiltin(family string) (*Family, error) {
	finder := r.ensureFinder()

	var metrics []byte
	for _, candidate := range helveticaEquivalents {
		if data, ok := findSystemFont(finder, candidate); ok {
			metrics = data
			break
		}
	}
	if metrics == nil {
		metrics = embeddedStub
	}

	names := builtinFaceNames(family)
	return &Family{
		Regular:    Face{Bytes: metrics, Builtin: names.regular},
		Bold:       Face{Bytes: metrics, Builtin: names.bold},
		Italic:     Face{Bytes: metrics, Builtin: names.italic},
		BoldItalic: Face{Bytes: metrics, Builtin: names.boldItalic},
	}, nil
}

type builtinNames struct{ regular, bold, italic, boldItalic string }

// builtinFaceNames maps a resolved builtin family to its four standard
// PDF font names.
func builtinFaceNames(family string) builtinNames {
	switch family {
	case "Times":
		return builtinNames{"Times-Roman", "Times-Bold", "Times-Italic", "Times-BoldItalic"}
	case "Courier":
		return builtinNames{"Courier", "Courier-Bold", "Courier-Oblique", "Courier-BoldOblique"}
	default:
		return builtinNames{"Helvetica", "Helvetica-Bold", "Helvetica-Oblique", "Helvetica-BoldOblique"}
	}
}

// loadSystem searches platform font directories (via adrg/sysfont) for
// name. All four faces share the matched file; bold and italic variants
// are not searched separately. A name with no system match degrades to
// builtin Helvetica backed by the embedded metrics stub rather than
// failing: System fonts always succeed.
func (r *Resolver) loadSystem(name string) (*Family, error) {
	finder := r.ensureFinder()

	data, ok := findSystemFont(finder, name)
	if !ok {
		return familyFromSingleBuffer(embeddedStub, "Helvetica"), nil
	}
	return familyFromSingleBuffer(data, ""), nil
}

// loadFile reads an explicit font file from disk. Unlike Builtin/System,
// this is the one path that can genuinely fail: an unreadable or
// malformed file source is a real resolution error.
func (r *Resolver) loadFile(path string) (*Family, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{
			FontName:   path,
			Kind:       ErrorUnreadableFile,
			Message:    "could not read font file",
			Suggestion: "check that the font file path exists and is readable",
			Cause:      err,
		}
	}
	return familyFromSingleBuffer(data, ""), nil
}

// familyFromSingleBuffer builds a Family whose four faces all point at
// the same underlying byte slice: constructing each face is O(1) beyond
// the first parse, even for a large font file.
func familyFromSingleBuffer(data []byte, builtin string) *Family {
	face := Face{Bytes: data, Builtin: builtin}
	return &Family{Regular: face, Bold: face, Italic: face, BoldItalic: face}
}

func (r *Resolver) ensureFinder() *sysfont.Finder {
	if r.finder == nil {
		r.finder = systemFinder()
	}
	return r.finder
}

// Subset reduces every face of fam to the glyphs used by text, when cfg
// enables subsetting and text is non-empty. Subsetting failure logs a
// warning (via the warn callback) and leaves fam untouched.
func (r *Resolver) Subset(fam *Family, text string, cfg Config, warn func(string)) *Family {
	if !cfg.EnableSubsetting || text == "" {
		return fam
	}

	subsetFace := func(f Face) Face {
		subset, remap, err := subsetToText(f.Bytes, text)
		if err != nil {
			if warn != nil {
				warn(fmt.Sprintf("font subsetting failed, using full font: %v", err))
			}
			return f
		}
		return Face{Bytes: subset, Builtin: f.Builtin, GlyphRemap: remap}
	}

	return &Family{
		Regular:    subsetFace(fam.Regular),
		Bold:       subsetFace(fam.Bold),
		Italic:     subsetFace(fam.Italic),
		BoldItalic: subsetFace(fam.BoldItalic),
	}
}
