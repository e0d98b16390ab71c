package fonts

import "strings"

// SourceKind tags which variant a Source holds.
type SourceKind int

// Recognized font source variants.
const (
	SourceBuiltin SourceKind = iota
	SourceSystem
	SourceFile
	SourceBytes
)

// Source names where a font family's bytes come from: one of the 14
// standard PDF core fonts, a platform font directory search, an explicit
// file path, or a caller-supplied byte buffer.
type Source struct {
	Kind  SourceKind
	Name  string // builtin alias or system family name
	Path  string // explicit file path
	Bytes []byte // caller-supplied bytes
}

// Builtin returns a Source naming one of the 14 standard PDF fonts.
func Builtin(name string) Source { return Source{Kind: SourceBuiltin, Name: name} }

// System returns a Source that searches platform font directories.
func System(name string) Source { return Source{Kind: SourceSystem, Name: name} }

// File returns a Source pointing at an explicit filesystem path.
func File(path string) Source { return Source{Kind: SourceFile, Path: path} }

// FromBytes returns a Source wrapping caller-supplied font bytes.
func FromBytes(b []byte) Source { return Source{Kind: SourceBytes, Bytes: b} }

// builtinAliases maps every recognized alias to the builtin family it
// resolves to, covering the common names and generic CSS-style aliases
// for each of the three built-in families.
var builtinAliases = map[string]string{
	"helvetica":  "Helvetica",
	"arial":      "Helvetica",
	"sans":       "Helvetica",
	"sans-serif": "Helvetica",
	"default":    "Helvetica",

	"times":           "Times",
	"times new roman": "Times",
	"serif":           "Times",

	"courier":   "Courier",
	"monospace": "Courier",
	"mono":      "Courier",
}

// ResolveName classifies a font name: a builtin alias resolves to
// Builtin; a name that looks like a path or carries a TTF/OTF extension
// resolves to File; anything else resolves to System.
func ResolveName(name string) Source {
	lower := strings.ToLower(strings.TrimSpace(name))
	if family, ok := builtinAliases[lower]; ok {
		return Builtin(family)
	}
	if strings.ContainsAny(name, `/\`) || strings.HasSuffix(lower, ".ttf") || strings.HasSuffix(lower, ".otf") {
		return File(name)
	}
	return System(name)
}
