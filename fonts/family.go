package fonts

// Face carries everything the PDF writer needs for one weight/slant of a
// font family: the raw bytes used for metric extraction, an optional
// reference to a standard PDF builtin font, and an optional glyph-id
// remap table produced by subsetting.
type Face struct {
	Bytes      []byte
	Builtin    string
	GlyphRemap map[uint16]uint16
}

// Family bundles the four faces a style needs: regular, bold, italic,
// and bold-italic. When all four come from the same source file they
// share one underlying byte buffer by reference (see
// familyFromSingleBuffer in resolver.go) so
// constructing the bundle stays O(1) beyond the first parse, even for a
// multi-megabyte font.
type Family struct {
	Regular    Face
	Bold       Face
	Italic     Face
	BoldItalic Face
}

// Face selects the appropriate face for a bold/italic combination.
func (f Family) Face(bold, italic bool) Face {
	switch {
	case bold && italic:
		return f.BoldItalic
	case bold:
		return f.Bold
	case italic:
		return f.Italic
	default:
		return f.Regular
	}
}
