// Package config loads style configuration from three variants —
// Default, File, Embedded — into a style.Record, using
// github.com/BurntSushi/toml the way pgavlin-markdown-kit depends on it
// in this retrieval pack. It is deliberately thin glue: parsing
// failures fall back to defaults rather than propagating.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/theiskaa/markdown2pdf/style"
)

// SourceKind tags which ConfigSource variant a Source holds.
type SourceKind int

// Recognized source kinds.
const (
	SourceDefault SourceKind = iota
	SourceFile
	SourceEmbedded
)

// Source is the config source tagged union:
// Default | File(path) | Embedded(toml_string).
type Source struct {
	Kind SourceKind
	Path string
	TOML string
}

// Default returns the Default source variant.
func Default() Source { return Source{Kind: SourceDefault} }

// File returns the File(path) source variant.
func File(path string) Source { return Source{Kind: SourceFile, Path: path} }

// Embedded returns the Embedded(toml_string) source variant.
func Embedded(tomlText string) Source { return Source{Kind: SourceEmbedded, TOML: tomlText} }

// Error carries a config loading failure and an actionable suggestion.
type Error struct {
	Message    string
	Suggestion string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config: %s: %v", e.Message, e.Cause)
	}
	return "config: " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Load resolves src into a style.Record. Default returns
// style.DefaultRecord() directly. File and Embedded parse TOML and
// overlay onto the default record field by field via style.Record.Merge,
// so a config specifying only a handful of element kinds still produces
// a complete, valid record.
func Load(src Source) (style.Record, error) {
	defaults := style.DefaultRecord()

	switch src.Kind {
	case SourceDefault:
		return defaults, nil

	case SourceFile:
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return defaults, &Error{Message: "could not read style config file", Suggestion: "check that the path exists and is readable", Cause: err}
		}
		return parseOverlay(defaults, string(data)), nil

	case SourceEmbedded:
		return parseOverlay(defaults, src.TOML), nil

	default:
		return defaults, nil
	}
}

// parseOverlay parses text as TOML into the intermediate shape and
// merges it onto defaults. Errors are swallowed: a TOML syntax error or a
// value of the wrong type makes the whole document fall back to the
// defaults, an unrecognized alignment string falls back for that field
// alone, and unknown keys are ignored.
func parseOverlay(defaults style.Record, text string) style.Record {
	var doc tomlDocument
	if _, err := toml.Decode(text, &doc); err != nil {
		return defaults
	}
	return defaults.Merge(doc.toRecord())
}
