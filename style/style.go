// Package style holds the in-memory style configuration consumed by the
// renderer: margins plus a BasicTextStyle per element kind. Parsing a
// TOML file into a Record is the config package's job; this package only
// defines the record's shape and its defaults.
package style

// Alignment mirrors token.Alignment for paragraph-level alignment, kept
// as its own type so this package has no dependency on the token tree.
type Alignment int

// Recognized alignments.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

// RGB is a simple 0-255 per-channel color.
type RGB struct {
	R, G, B uint8
}

// Margins is expressed in PDF points.
type Margins struct {
	Top, Right, Bottom, Left float32
}

// BasicTextStyle describes how one element kind is rendered. Fields left
// at their zero value inherit defaults supplied by the renderer: Size==0
// means "use the inherited size," TextColor==nil means "use the
// inherited color," and so on.
type BasicTextStyle struct {
	Size            uint8
	TextColor       *RGB
	BackgroundColor *RGB
	BeforeSpacing   float32
	AfterSpacing    float32
	Alignment       Alignment
	FontFamily      string
	Bold            bool
	Italic          bool
	Underline       bool
	Strikethrough   bool
}

// Record is the full style configuration consumed by the renderer.
type Record struct {
	Margins Margins

	Heading1       BasicTextStyle
	Heading2       BasicTextStyle
	Heading3       BasicTextStyle
	Emphasis       BasicTextStyle
	StrongEmphasis BasicTextStyle
	Code           BasicTextStyle
	BlockQuote     BasicTextStyle
	ListItem       BasicTextStyle
	Link           BasicTextStyle
	Image          BasicTextStyle
	Text           BasicTextStyle
	HorizontalRule BasicTextStyle
}

// AllStyles enumerates every element-kind style in Record, used by the
// renderer to resolve and register every font family the style record
// references before walking the token tree.
func (r Record) AllStyles() []BasicTextStyle {
	return []BasicTextStyle{
		r.Heading1, r.Heading2, r.Heading3,
		r.Emphasis, r.StrongEmphasis, r.Code, r.BlockQuote,
		r.ListItem, r.Link, r.Image, r.Text, r.HorizontalRule,
	}
}

// HeadingStyle returns the BasicTextStyle for a clamped heading level.
// Levels above 3 use Heading3, matching the core specification's
// documented fallback (levels 4-6 lex fine but render with heading_3's
// style).
func (r Record) HeadingStyle(level int) BasicTextStyle {
	switch {
	case level <= 1:
		return r.Heading1
	case level == 2:
		return r.Heading2
	default:
		return r.Heading3
	}
}

// DefaultRecord returns the documented default style values. Rendering
// with config.Source Default must be equivalent to rendering with this
// record, per the core specification's round-trip property.
func DefaultRecord() Record {
	gray := RGB{R: 100, G: 100, B: 100}
	blue := RGB{R: 0, G: 0, B: 200}

	return Record{
		Margins: Margins{Top: 20, Right: 20, Bottom: 20, Left: 20},

		Heading1: BasicTextStyle{Size: 24, Bold: true, BeforeSpacing: 12, AfterSpacing: 8, Alignment: AlignLeft},
		Heading2: BasicTextStyle{Size: 20, Bold: true, BeforeSpacing: 10, AfterSpacing: 6, Alignment: AlignLeft},
		Heading3: BasicTextStyle{Size: 16, Bold: true, BeforeSpacing: 8, AfterSpacing: 4, Alignment: AlignLeft},

		Emphasis:       BasicTextStyle{Size: 12, Italic: true, Alignment: AlignLeft},
		StrongEmphasis: BasicTextStyle{Size: 12, Bold: true, Alignment: AlignLeft},

		Code: BasicTextStyle{
			Size:            10,
			FontFamily:      "Courier",
			TextColor:       &RGB{R: 30, G: 30, B: 30},
			BackgroundColor: &RGB{R: 245, G: 245, B: 245},
			BeforeSpacing:   6,
			AfterSpacing:    6,
			Alignment:       AlignLeft,
		},

		BlockQuote: BasicTextStyle{
			Size:            12,
			Italic:          true,
			TextColor:       &gray,
			BackgroundColor: &RGB{R: 240, G: 240, B: 240},
			BeforeSpacing:   6,
			AfterSpacing:    6,
			Alignment:       AlignLeft,
		},

		ListItem: BasicTextStyle{Size: 12, BeforeSpacing: 2, AfterSpacing: 2, Alignment: AlignLeft},

		Link: BasicTextStyle{Size: 12, TextColor: &blue, Underline: true, Alignment: AlignLeft},

		Image: BasicTextStyle{Size: 12, BeforeSpacing: 6, AfterSpacing: 6, Alignment: AlignCenter},

		Text: BasicTextStyle{Size: 12, BeforeSpacing: 0, AfterSpacing: 4, Alignment: AlignLeft},

		HorizontalRule: BasicTextStyle{AfterSpacing: 8},
	}
}

// Merge returns a copy of r with every zero-valued field in overlay
// replaced, field by field, by r's own value — an overlay only needs to
// specify the element kinds and fields it wants to change. Malformed
// values already fall back to defaults during parsing; this extends the
// same tolerance to absent values, matching a partial-style-overlay
// behavior.
func (r Record) Merge(overlay Record) Record {
	out := r
	if overlay.Margins != (Margins{}) {
		out.Margins = overlay.Margins
	}
	out.Heading1 = mergeStyle(r.Heading1, overlay.Heading1)
	out.Heading2 = mergeStyle(r.Heading2, overlay.Heading2)
	out.Heading3 = mergeStyle(r.Heading3, overlay.Heading3)
	out.Emphasis = mergeStyle(r.Emphasis, overlay.Emphasis)
	out.StrongEmphasis = mergeStyle(r.StrongEmphasis, overlay.StrongEmphasis)
	out.Code = mergeStyle(r.Code, overlay.Code)
	out.BlockQuote = mergeStyle(r.BlockQuote, overlay.BlockQuote)
	out.ListItem = mergeStyle(r.ListItem, overlay.ListItem)
	out.Link = mergeStyle(r.Link, overlay.Link)
	out.Image = mergeStyle(r.Image, overlay.Image)
	out.Text = mergeStyle(r.Text, overlay.Text)
	out.HorizontalRule = mergeStyle(r.HorizontalRule, overlay.HorizontalRule)
	return out
}

func mergeStyle(base, overlay BasicTextStyle) BasicTextStyle {
	out := base
	if overlay.Size != 0 {
		out.Size = overlay.Size
	}
	if overlay.TextColor != nil {
		out.TextColor = overlay.TextColor
	}
	if overlay.BackgroundColor != nil {
		out.BackgroundColor = overlay.BackgroundColor
	}
	if overlay.BeforeSpacing != 0 {
		out.BeforeSpacing = overlay.BeforeSpacing
	}
	if overlay.AfterSpacing != 0 {
		out.AfterSpacing = overlay.AfterSpacing
	}
	if overlay.Alignment != AlignNone {
		out.Alignment = overlay.Alignment
	}
	if overlay.FontFamily != "" {
		out.FontFamily = overlay.FontFamily
	}
	out.Bold = out.Bold || overlay.Bold
	out.Italic = out.Italic || overlay.Italic
	out.Underline = out.Underline || overlay.Underline
	out.Strikethrough = out.Strikethrough || overlay.Strikethrough
	return out
}
