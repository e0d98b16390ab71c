package render

import (
	"strconv"
	"strings"

	"github.com/theiskaa/markdown2pdf/pdfdoc"
	"github.com/theiskaa/markdown2pdf/style"
	"github.com/theiskaa/markdown2pdf/token"
)

const listIndentUnit = "    "

// walker carries the single inline buffer the rendering algorithm
// accumulates into, plus the Renderer and Document it is writing into.
type walker struct {
	r   *Renderer
	doc *pdfdoc.Document
	buf *pdfdoc.Paragraph
}

// run scans tokens in order, flushing the inline buffer in front of
// every block token and accumulating everything else into it.
func (w *walker) run(tokens []token.Token) {
	for _, t := range tokens {
		if isFlushTrigger(t) {
			w.flush()
			w.renderBlock(t)
		} else {
			w.ensureBuf()
			w.renderInline(t, w.r.style.Text, w.buf)
		}
	}
}

// isFlushTrigger reports whether t belongs to the renderer's block list:
// Heading, ListItem, fenced Code, Table, HorizontalRule, BlockQuote, and
// Newline — the last of which only ever triggers a flush, with no
// element of its own.
func isFlushTrigger(t token.Token) bool {
	switch t.Kind {
	case token.KindHeading, token.KindListItem, token.KindTable, token.KindHorizontalRule, token.KindBlockQuote, token.KindNewline:
		return true
	case token.KindCode:
		return t.IsBlock()
	default:
		return false
	}
}

func (w *walker) ensureBuf() {
	if w.buf == nil {
		w.buf = pdfdoc.NewParagraph()
	}
}

// flush pushes whatever the inline buffer holds, styled with style.text,
// then clears it. Flushing an empty buffer is a no-op — a bare Newline
// between two blocks must not emit a blank paragraph.
func (w *walker) flush() {
	if w.buf != nil && len(w.buf.Runs) > 0 {
		w.doc.PushParagraph(w.buf)
	}
	w.buf = nil
}

// renderBlock dispatches one block token to its element-specific
// renderer.
func (w *walker) renderBlock(t token.Token) {
	switch t.Kind {
	case token.KindHeading:
		w.renderHeading(t)
	case token.KindCode:
		w.renderFencedCode(t)
	case token.KindBlockQuote:
		w.renderBlockQuote(t)
	case token.KindListItem:
		w.renderListItem(t, 0)
	case token.KindTable:
		w.renderTable(t)
	case token.KindHorizontalRule:
		w.doc.PushBreak(pdfdoc.Break{Points: w.r.style.HorizontalRule.AfterSpacing})
	case token.KindNewline:
		// flush() already ran in run(); nothing else to emit.
	}
}

func (w *walker) renderHeading(t token.Token) {
	st := w.r.style.HeadingStyle(t.Level)
	w.doc.PushBreak(pdfdoc.Break{Points: st.BeforeSpacing})
	p := pdfdoc.NewParagraph()
	for _, c := range t.Children {
		w.renderInline(c, st, p)
	}
	w.doc.PushParagraph(p)
	w.doc.PushBreak(pdfdoc.Break{Points: st.AfterSpacing})
}

// renderFencedCode renders each source line of a fenced block as its own
// code-style paragraph, indented by a fixed 4 spaces. The language tag
// is lexed but never affects rendering — no syntax highlighting.
func (w *walker) renderFencedCode(t token.Token) {
	st := w.r.style.Code
	w.doc.PushBreak(pdfdoc.Break{Points: st.BeforeSpacing})

	body := strings.TrimSuffix(t.Content, "\n")
	for _, line := range strings.Split(body, "\n") {
		p := pdfdoc.NewParagraph().PushStyled("    "+line, st)
		w.doc.PushParagraph(p)
	}
	w.doc.PushBreak(pdfdoc.Break{Points: st.AfterSpacing})
}

func (w *walker) renderBlockQuote(t token.Token) {
	st := w.r.style.BlockQuote
	w.doc.PushBreak(pdfdoc.Break{Points: st.BeforeSpacing})
	p := pdfdoc.NewParagraph().PushStyled(t.Content, st)
	w.doc.PushParagraph(p)
	w.doc.PushBreak(pdfdoc.Break{Points: st.AfterSpacing})
}

// renderListItem renders a marker plus the item's own inline content
// (its nested ListItem children excluded), then recurses over the
// nested items at depth+1. Indent is 4 spaces per depth, so a list with
// items at depths 0..5 renders with monotonically increasing
// indentation.
func (w *walker) renderListItem(t token.Token, depth int) {
	st := w.r.style.ListItem
	marker := "- "
	if t.Ordered {
		n := 0
		if t.Number != nil {
			n = *t.Number
		}
		marker = strconv.Itoa(n) + ". "
	}

	w.doc.PushBreak(pdfdoc.Break{Points: st.BeforeSpacing})
	p := pdfdoc.NewParagraph().PushStyled(strings.Repeat(listIndentUnit, depth)+marker, st)

	var nested []token.Token
	for _, c := range t.Children {
		if c.Kind == token.KindListItem {
			nested = append(nested, c)
			continue
		}
		w.renderInline(c, st, p)
	}
	w.doc.PushParagraph(p)
	w.doc.PushBreak(pdfdoc.Break{Points: st.AfterSpacing})

	for _, n := range nested {
		w.renderListItem(n, depth+1)
	}
}

// renderTable builds a pdfdoc.Table with equally distributed column
// widths: the header row (styled heading_3 by convention) followed by
// every data row (styled text).
func (w *walker) renderTable(t token.Token) {
	cols := len(t.Alignments)
	if cols == 0 {
		return
	}
	widths := make([]float32, cols)
	for i := range widths {
		widths[i] = 1
	}

	headerStyle := w.r.style.HeadingStyle(3)
	rows := make([][]pdfdoc.Cell, 0, len(t.Rows)+1)
	rows = append(rows, w.buildRow(t.Headers, t.Alignments, headerStyle))
	for _, row := range t.Rows {
		rows = append(rows, w.buildRow(row, t.Alignments, w.r.style.Text))
	}

	w.doc.PushTable(pdfdoc.Table{Widths: widths, Rows: rows, HeaderRows: 1})
}

func (w *walker) buildRow(cells [][]token.Token, aligns []token.Alignment, base style.BasicTextStyle) []pdfdoc.Cell {
	out := make([]pdfdoc.Cell, len(cells))
	for i, cellTokens := range cells {
		st := base
		if i < len(aligns) {
			st.Alignment = tableAlignToStyle(aligns[i])
		}
		p := pdfdoc.NewParagraph()
		for _, c := range cellTokens {
			w.renderInline(c, st, p)
		}
		out[i] = pdfdoc.Cell{Runs: p.Runs}
	}
	return out
}

func tableAlignToStyle(a token.Alignment) style.Alignment {
	switch a {
	case token.AlignCenter:
		return style.AlignCenter
	case token.AlignRight:
		return style.AlignRight
	case token.AlignJustify:
		return style.AlignJustify
	case token.AlignLeft:
		return style.AlignLeft
	default:
		return style.AlignNone
	}
}

// renderInline dispatches one inline token. Style fields cascade: a
// child inherits the parent's font size, color, and family unless its
// own style explicitly overrides, and boolean decorations OR together
// (the same rule style.Record.Merge applies to whole records, applied
// here per inline node).
func (w *walker) renderInline(t token.Token, base style.BasicTextStyle, p *pdfdoc.Paragraph) {
	switch t.Kind {
	case token.KindText:
		p.PushStyled(t.Content, base)

	case token.KindEmphasis:
		st := base
		switch t.Level {
		case 1:
			st.Italic = true
		case 2:
			st.Bold = true
		default:
			st.Bold = true
			st.Italic = true
		}
		for _, c := range t.Children {
			w.renderInline(c, st, p)
		}

	case token.KindStrongEmphasis:
		st := base
		st.Bold = true
		for _, c := range t.Children {
			w.renderInline(c, st, p)
		}

	case token.KindCode:
		code := w.r.style.Code
		st := base
		if code.TextColor != nil {
			st.TextColor = code.TextColor
		}
		st.FontFamily = code.FontFamily
		p.PushStyled(t.Content, st)

	case token.KindLink:
		link := w.r.style.Link
		st := base
		if link.TextColor != nil {
			st.TextColor = link.TextColor
		}
		st.Underline = true
		p.PushLink(t.Text, t.URL, st)

	case token.KindImage:
		w.renderImage(t, base, p)

	case token.KindHtmlComment:
		// Preserved in the token tree but never rendered.

	default:
		p.PushStyled(t.Content, base)
	}
}
