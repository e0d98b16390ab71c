// Package pdfdoc is the PDF writer the renderer composes pages through,
// built directly on github.com/jung-kurt/gofpdf (see
// circuit-geek-pagepipe's core/render/pdf.go).
package pdfdoc

import "github.com/theiskaa/markdown2pdf/style"

// Run is one styled text segment within a Paragraph.
type Run struct {
	Text    string
	Style   style.BasicTextStyle
	LinkURL string // non-empty for a clickable run
}

// Paragraph is an ordered sequence of styled runs, built incrementally
// with PushStyled/PushLink.
type Paragraph struct {
	Runs []Run
}

// NewParagraph returns an empty Paragraph builder.
func NewParagraph() *Paragraph { return &Paragraph{} }

// PushStyled appends a plain styled run.
func (p *Paragraph) PushStyled(text string, st style.BasicTextStyle) *Paragraph {
	p.Runs = append(p.Runs, Run{Text: text, Style: st})
	return p
}

// PushLink appends a clickable run.
func (p *Paragraph) PushLink(text, url string, st style.BasicTextStyle) *Paragraph {
	p.Runs = append(p.Runs, Run{Text: text, Style: st, LinkURL: url})
	return p
}

// Break is vertical space, in points — the same unit BasicTextStyle's
// spacing fields use.
type Break struct {
	Points float32
}

// Cell is one table cell: an ordered sequence of styled runs, mirroring
// a ListItem/Table cell's inline content in the token tree.
type Cell struct {
	Runs []Run
}

// Table is a grid element. Widths are fractions of the content width
// (they need not sum to 1; they are normalized at draw time). Rows
// before index HeaderRows are drawn with cell fill enabled, using the
// current fill color.
type Table struct {
	Widths     []float32
	Rows       [][]Cell
	HeaderRows int
}

// Image is a decoded raster image, already resolved to bytes by the
// renderer (via an image.Decode-compatible format). Format is one of
// "png", "jpg", "gif" — whatever the renderer's format sniff recognized.
type Image struct {
	Bytes     []byte
	Format    string
	Alt       string
	Style     style.BasicTextStyle
	WidthPt   float32
	HeightPt  float32
}
