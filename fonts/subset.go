package fonts

import (
	"bytes"

	"github.com/unidoc/unitype"
)

// subsetToText reduces full (a parsed TrueType/OpenType buffer) to only
// the glyphs required to render text, returning the subset bytes and a
// glyph-id remap table. The original bytes remain valid and available
// for metric queries — callers keep both.
//
// Subsetting is grounded on github.com/unidoc/unitype, the standalone
// TrueType/OpenType parsing-and-editing library required directly by
// unidoc/unipdf. A subsetting failure is not fatal: the caller logs a
// warning and keeps using the full font.
func subsetToText(full []byte, text string) ([]byte, map[uint16]uint16, error) {
	runes := usedRunes(text)
	if len(runes) == 0 {
		return full, nil, nil
	}

	parsed, err := unitype.Parse(bytes.NewReader(full))
	if err != nil {
		return nil, nil, err
	}

	keep := make(map[unitype.GlyphIndex]struct{}, len(runes))
	remap := make(map[uint16]uint16, len(runes))
	nextID := uint16(1) // glyph 0 is always .notdef

	cmap, err := parsed.GetCMapTable()
	if err != nil {
		return nil, nil, err
	}
	for r := range runes {
		gid, ok := cmap[uint32(r)]
		if !ok {
			continue
		}
		keep[unitype.GlyphIndex(gid)] = struct{}{}
		if _, assigned := remap[uint16(gid)]; !assigned {
			remap[uint16(gid)] = nextID
			nextID++
		}
	}

	subset, err := parsed.SubsetKeepGIDs(keep)
	if err != nil {
		return nil, nil, err
	}

	var out bytes.Buffer
	if err := subset.Write(&out); err != nil {
		return nil, nil, err
	}

	return out.Bytes(), remap, nil
}

// usedRunes returns the distinct set of code points present in text.
func usedRunes(text string) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range text {
		set[r] = struct{}{}
	}
	return set
}
