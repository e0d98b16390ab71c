package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/theiskaa/markdown2pdf/style"
)

// A4 page dimensions in points, matching gofpdf's own "A4" size table.
const (
	pageWidthPt  = 595.28
	pageHeightPt = 841.89
)

// ErrorKind classifies a pdfdoc failure.
type ErrorKind int

// Recognized error kinds. Pagination itself never fails — only output
// I/O does.
const (
	ErrorIo ErrorKind = iota
)

// Error wraps an I/O failure writing the finished PDF.
type Error struct {
	Kind       ErrorKind
	Path       string
	Message    string
	Suggestion string
	Cause      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pdf: %s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// registeredFace tracks what Document already told gofpdf about one
// (family, bold, italic) combination.
type registeredFace struct {
	coreFamily string // non-empty: a gofpdf builtin core family (Helvetica/Times/Courier)
}

// Document wraps a single *gofpdf.Fpdf and exposes an element-pushing
// API, so the renderer never touches gofpdf directly.
type Document struct {
	pdf            *gofpdf.Fpdf
	margins        style.Margins
	contentWidthPt float32
	baseFontSize   float64
	registered     map[string]registeredFace
}

// NewDocument creates a Document in point units with an A4 page, ready
// to accept pushed elements. A first page is always present, so an
// empty token stream still produces a valid single-page PDF.
func NewDocument(m style.Margins) *Document {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "A4",
	})
	pdf.SetMargins(float64(m.Left), float64(m.Top), float64(m.Right))
	pdf.SetAutoPageBreak(true, float64(m.Bottom))
	pdf.AddPage()

	return &Document{
		pdf:            pdf,
		margins:        m,
		contentWidthPt: pageWidthPt - m.Left - m.Right,
		baseFontSize:   12,
		registered:     make(map[string]registeredFace),
	}
}

// SetBaseFontSize sets the fallback size used when a run's style leaves
// Size at zero.
func (d *Document) SetBaseFontSize(size float64) { d.baseFontSize = size }

// RegisterFace tells the Document how to render a (familyName, bold,
// italic) combination: either as one of gofpdf's five builtin core
// families (no embedding), or by embedding fontBytes under familyName.
func (d *Document) RegisterFace(familyName string, bold, italic bool, builtinCore string, fontBytes []byte) {
	key := faceKey(familyName, bold, italic)
	if builtinCore != "" {
		// A face name such as "Helvetica-Bold" or "Times-Roman" keeps only
		// its core family; bold/italic travel in the SetFont style string.
		if i := strings.IndexByte(builtinCore, '-'); i >= 0 {
			builtinCore = builtinCore[:i]
		}
		d.registered[key] = registeredFace{coreFamily: builtinCore}
		return
	}
	if _, ok := d.registered[key]; ok {
		return
	}
	d.pdf.AddUTF8FontFromBytes(familyName, fontStyleStr(bold, italic, false), fontBytes)
	d.registered[key] = registeredFace{}
}

func faceKey(familyName string, bold, italic bool) string {
	return fmt.Sprintf("%s|%v|%v", familyName, bold, italic)
}

func fontStyleStr(bold, italic, underline bool) string {
	s := ""
	if bold {
		s += "B"
	}
	if italic {
		s += "I"
	}
	if underline {
		s += "U"
	}
	return s
}

// PushParagraph writes a paragraph's runs onto the page, wrapping and
// paginating automatically (gofpdf's own SetAutoPageBreak handles
// overflow — the renderer never computes y-coordinates itself).
func (d *Document) PushParagraph(p *Paragraph) {
	for _, run := range p.Runs {
		d.applyRunStyle(run.Style)
		if run.LinkURL != "" {
			d.pdf.WriteLinkString(d.lineHeight(run.Style), run.Text, run.LinkURL)
		} else {
			d.pdf.Write(d.lineHeight(run.Style), run.Text)
		}
		if run.Style.Strikethrough {
			d.drawStrikethrough(run.Text)
		}
	}
	d.pdf.Ln(d.baseFontSize * 1.2)
}

// PushBreak emits blank vertical space.
func (d *Document) PushBreak(b Break) {
	d.pdf.Ln(float64(b.Points))
}

// PushTable draws a grid: column widths are distributed from Widths
// (normalized to the content width), each cell's runs are concatenated
// and wrapped with MultiCell using the cell's own alignment.
func (d *Document) PushTable(t Table) {
	widths := normalizeWidths(t.Widths, d.contentWidthPt)
	rowHeight := d.baseFontSize * 1.4

	for ri, row := range t.Rows {
		x, y := d.pdf.GetX(), d.pdf.GetY()
		for ci, cell := range row {
			if ci >= len(widths) {
				break
			}
			text, st := flattenCell(cell)
			d.applyRunStyle(st)
			d.pdf.SetXY(x, y)
			d.pdf.MultiCell(float64(widths[ci]), rowHeight, text, "1", alignStr(st.Alignment), ri < t.HeaderRows)
			x += float64(widths[ci])
		}
		d.pdf.SetXY(d.pdf.GetX()-d.sumWidths(widths), y+rowHeight)
	}
}

func (d *Document) sumWidths(widths []float32) float64 {
	var sum float32
	for _, w := range widths {
		sum += w
	}
	return float64(sum)
}

// PushImage embeds a decoded image at img's WidthPt/HeightPt (the full
// content width when WidthPt is zero), or falls back to the alt text if
// no bytes were resolved.
func (d *Document) PushImage(img Image) {
	if len(img.Bytes) == 0 {
		p := NewParagraph().PushStyled(img.Alt, img.Style)
		d.PushParagraph(p)
		return
	}

	opts := gofpdf.ImageOptions{ImageType: img.Format, ReadDpi: true}
	name := fmt.Sprintf("img-%p", &img)
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Bytes))

	w, h := float64(img.WidthPt), float64(img.HeightPt)
	if w == 0 {
		w = float64(d.contentWidthPt)
	}
	x := d.pdf.GetX()
	if img.Style.Alignment == style.AlignCenter {
		x = (pageWidthPt - w) / 2
	}
	d.pdf.ImageOptions(name, x, d.pdf.GetY(), w, h, true, opts, 0, "")
}

func (d *Document) applyRunStyle(st style.BasicTextStyle) {
	family := st.FontFamily
	if family == "" {
		family = "Helvetica"
	}
	key := faceKey(family, st.Bold, st.Italic)
	reg, ok := d.registered[key]
	fontName := family
	if ok && reg.coreFamily != "" {
		fontName = reg.coreFamily
	}

	size := float64(st.Size)
	if size == 0 {
		size = d.baseFontSize
	}

	d.pdf.SetFont(fontName, fontStyleStr(st.Bold, st.Italic, st.Underline), size)

	if st.TextColor != nil {
		d.pdf.SetTextColor(int(st.TextColor.R), int(st.TextColor.G), int(st.TextColor.B))
	} else {
		d.pdf.SetTextColor(0, 0, 0)
	}
	if st.BackgroundColor != nil {
		d.pdf.SetFillColor(int(st.BackgroundColor.R), int(st.BackgroundColor.G), int(st.BackgroundColor.B))
	}
}

func (d *Document) lineHeight(st style.BasicTextStyle) float64 {
	size := float64(st.Size)
	if size == 0 {
		size = d.baseFontSize
	}
	return size * 1.2
}

// drawStrikethrough draws a manual line through the last-written text,
// since gofpdf has no native strikethrough style flag (it does support
// "U" for underline natively, used directly in applyRunStyle).
func (d *Document) drawStrikethrough(text string) {
	w := d.pdf.GetStringWidth(text)
	y := d.pdf.GetY() - d.baseFontSize*0.35
	x := d.pdf.GetX() - w
	d.pdf.Line(x, y, x+w, y)
}

func alignStr(a style.Alignment) string {
	switch a {
	case style.AlignCenter:
		return "C"
	case style.AlignRight:
		return "R"
	case style.AlignJustify:
		return "J"
	default:
		return "L"
	}
}

func flattenCell(c Cell) (string, style.BasicTextStyle) {
	var b bytes.Buffer
	var st style.BasicTextStyle
	for i, r := range c.Runs {
		if i == 0 {
			st = r.Style
		}
		b.WriteString(r.Text)
	}
	return b.String(), st
}

func normalizeWidths(widths []float32, contentWidth float32) []float32 {
	var sum float32
	for _, w := range widths {
		sum += w
	}
	if sum == 0 {
		sum = 1
	}
	out := make([]float32, len(widths))
	for i, w := range widths {
		out[i] = (w / sum) * contentWidth
	}
	return out
}

// RenderToFile writes the finished document to path.
func (d *Document) RenderToFile(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return &Error{Kind: ErrorIo, Path: path, Message: "writing PDF to file", Suggestion: "check output directory exists and is writable", Cause: err}
	}
	return nil
}

// RenderToBytes returns the finished document as a byte buffer.
func (d *Document) RenderToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, &Error{Kind: ErrorIo, Message: "writing PDF to buffer", Suggestion: "this is usually a malformed embedded resource; check font and image sources", Cause: err}
	}
	return buf.Bytes(), nil
}
