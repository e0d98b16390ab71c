package config

import "github.com/theiskaa/markdown2pdf/style"

// tomlDocument mirrors the style config's documented TOML key shape: a
// top-level margin table, heading.1/.2/.3, and one table per remaining
// element kind.
type tomlDocument struct {
	Margin         *tomlMargin `toml:"margin"`
	Heading        *tomlHeading `toml:"heading"`
	Emphasis       *tomlStyle   `toml:"emphasis"`
	StrongEmphasis *tomlStyle   `toml:"strong_emphasis"`
	Code           *tomlStyle   `toml:"code"`
	BlockQuote     *tomlStyle   `toml:"block_quote"`
	ListItem       *tomlStyle   `toml:"list_item"`
	Link           *tomlStyle   `toml:"link"`
	Image          *tomlStyle   `toml:"image"`
	Text           *tomlStyle   `toml:"text"`
	HorizontalRule *tomlStyle   `toml:"horizontal_rule"`
}

type tomlMargin struct {
	Top    float32 `toml:"top"`
	Right  float32 `toml:"right"`
	Bottom float32 `toml:"bottom"`
	Left   float32 `toml:"left"`
}

// tomlHeading holds heading.1/.2/.3. BurntSushi/toml maps a bare numeric
// key through its string form, so the struct tags spell out "1"/"2"/"3"
// directly.
type tomlHeading struct {
	H1 *tomlStyle `toml:"1"`
	H2 *tomlStyle `toml:"2"`
	H3 *tomlStyle `toml:"3"`
}

// level safely returns the table for heading level l (1-3) even when h
// itself is nil (the whole [heading] table was absent).
func (h *tomlHeading) level(l int) *tomlStyle {
	if h == nil {
		return nil
	}
	switch l {
	case 1:
		return h.H1
	case 2:
		return h.H2
	default:
		return h.H3
	}
}

type tomlColor struct {
	R int `toml:"r"`
	G int `toml:"g"`
	B int `toml:"b"`
}

// tomlStyle is one element kind's table. Every field is optional;
// BurntSushi/toml leaves unset fields at their Go zero value, which is
// exactly what style.Record.Merge treats as "no override."
type tomlStyle struct {
	Size            int        `toml:"size"`
	BeforeSpacing   float32    `toml:"beforespacing"`
	AfterSpacing    float32    `toml:"afterspacing"`
	TextColor       *tomlColor `toml:"textcolor"`
	BackgroundColor *tomlColor `toml:"backgroundcolor"`
	Alignment       string     `toml:"alignment"`
	FontFamily      string     `toml:"fontfamily"`
	Bold            bool       `toml:"bold"`
	Italic          bool       `toml:"italic"`
	Underline       bool       `toml:"underline"`
	Strikethrough   bool       `toml:"strikethrough"`
}

func (d tomlDocument) toRecord() style.Record {
	var out style.Record

	if d.Margin != nil {
		out.Margins = style.Margins{
			Top: d.Margin.Top, Right: d.Margin.Right,
			Bottom: d.Margin.Bottom, Left: d.Margin.Left,
		}
	}

	out.Heading1 = d.Heading.level(1).toBasicTextStyle()
	out.Heading2 = d.Heading.level(2).toBasicTextStyle()
	out.Heading3 = d.Heading.level(3).toBasicTextStyle()

	out.Emphasis = d.Emphasis.toBasicTextStyle()
	out.StrongEmphasis = d.StrongEmphasis.toBasicTextStyle()
	out.Code = d.Code.toBasicTextStyle()
	out.BlockQuote = d.BlockQuote.toBasicTextStyle()
	out.ListItem = d.ListItem.toBasicTextStyle()
	out.Link = d.Link.toBasicTextStyle()
	out.Image = d.Image.toBasicTextStyle()
	out.Text = d.Text.toBasicTextStyle()
	out.HorizontalRule = d.HorizontalRule.toBasicTextStyle()

	return out
}

// toBasicTextStyle converts one optional TOML table into an overlay
// BasicTextStyle. A nil table (the key was absent) returns the zero
// value, which style.Record.Merge treats as "keep the base style."
func (t *tomlStyle) toBasicTextStyle() style.BasicTextStyle {
	if t == nil {
		return style.BasicTextStyle{}
	}
	return style.BasicTextStyle{
		Size:            uint8(t.Size),
		TextColor:       t.TextColor.toRGB(),
		BackgroundColor: t.BackgroundColor.toRGB(),
		BeforeSpacing:   t.BeforeSpacing,
		AfterSpacing:    t.AfterSpacing,
		Alignment:       parseAlignment(t.Alignment),
		FontFamily:      t.FontFamily,
		Bold:            t.Bold,
		Italic:          t.Italic,
		Underline:       t.Underline,
		Strikethrough:   t.Strikethrough,
	}
}

func (c *tomlColor) toRGB() *style.RGB {
	if c == nil {
		return nil
	}
	return &style.RGB{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B)}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// parseAlignment maps the documented "left"/"center"/"right"/"justify"
// strings. Anything else — including an absent key — returns
// AlignNone, which the merge step reads as "no override," so malformed
// values fall back to defaults silently.
func parseAlignment(s string) style.Alignment {
	switch s {
	case "left":
		return style.AlignLeft
	case "center":
		return style.AlignCenter
	case "right":
		return style.AlignRight
	case "justify":
		return style.AlignJustify
	default:
		return style.AlignNone
	}
}
