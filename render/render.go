// Package render turns a token tree into a finished PDF. A Renderer
// holds a style.Record and a fonts.Resolver, dispatches each token
// through a fixed block/inline table, and composes the result through
// pdfdoc — the way circuit-geek-pagepipe's core/render/pdf.go walks a
// document tree and writes it straight onto a *gofpdf.Fpdf, generalized
// here to read every size, color and spacing from a style.Record
// instead of a fixed map.
package render

import (
	"fmt"

	"github.com/theiskaa/markdown2pdf/fonts"
	"github.com/theiskaa/markdown2pdf/pdfdoc"
	"github.com/theiskaa/markdown2pdf/style"
	"github.com/theiskaa/markdown2pdf/token"
)

// ErrorKind classifies a rendering failure.
type ErrorKind int

// Recognized error kinds.
const (
	ErrorFont ErrorKind = iota
	ErrorIo
)

// Error is returned when rendering fails — either an explicit font
// source could not be loaded, or the finished document could not be
// written out.
type Error struct {
	Kind       ErrorKind
	Message    string
	Suggestion string
	Cause      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render: %s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Renderer walks a token tree and composes it into a pdfdoc.Document,
// resolving fonts through the shared Resolver as it goes.
type Renderer struct {
	style      style.Record
	resolver   *fonts.Resolver
	fontConfig fonts.Config

	warnings []string
}

// New creates a Renderer bound to st and resolver, using fc for default
// and code font resolution (fonts.DefaultConfig() if the caller has no
// explicit font configuration). Element styles that name no font family
// take fc.DefaultFont (the code style takes fc.CodeFont); a family the
// style record already names is kept.
func New(st style.Record, resolver *fonts.Resolver, fc fonts.Config) *Renderer {
	for _, s := range []*style.BasicTextStyle{
		&st.Heading1, &st.Heading2, &st.Heading3, &st.Emphasis, &st.StrongEmphasis, &st.BlockQuote,
		&st.ListItem, &st.Link, &st.Image, &st.Text, &st.HorizontalRule,
	} {
		if s.FontFamily == "" {
			s.FontFamily = fc.DefaultFont
		}
	}
	if st.Code.FontFamily == "" {
		st.Code.FontFamily = fc.CodeFont
	}
	return &Renderer{style: st, resolver: resolver, fontConfig: fc}
}

// Warnings returns every non-fatal warning accumulated during the last
// render (subsetting failures, unresolvable or undecodable images).
func (r *Renderer) Warnings() []string { return r.warnings }

func (r *Renderer) warn(msg string) { r.warnings = append(r.warnings, msg) }

// RenderToDocument renders tokens into a fresh pdfdoc.Document.
func (r *Renderer) RenderToDocument(tokens []token.Token) (*pdfdoc.Document, error) {
	r.warnings = nil
	doc := pdfdoc.NewDocument(r.style.Margins)
	doc.SetBaseFontSize(float64(r.style.Text.Size))

	if err := r.registerFonts(doc, tokens); err != nil {
		return nil, err
	}

	w := &walker{r: r, doc: doc}
	w.run(tokens)
	w.flush()

	return doc, nil
}

// RenderToBytes renders tokens and returns the finished PDF bytes.
func (r *Renderer) RenderToBytes(tokens []token.Token) ([]byte, error) {
	doc, err := r.RenderToDocument(tokens)
	if err != nil {
		return nil, err
	}
	out, err := doc.RenderToBytes()
	if err != nil {
		return nil, &Error{Kind: ErrorIo, Message: "writing rendered PDF", Cause: err}
	}
	return out, nil
}

// RenderToFile renders tokens and writes the finished PDF to path.
func (r *Renderer) RenderToFile(tokens []token.Token, path string) error {
	doc, err := r.RenderToDocument(tokens)
	if err != nil {
		return err
	}
	if err := doc.RenderToFile(path); err != nil {
		return &Error{Kind: ErrorIo, Message: "writing rendered PDF to " + path, Cause: err}
	}
	return nil
}

// registerFonts resolves every distinct font family the style record and
// font config reference, subsets each against the document's full text
// when enabled, and registers the result with doc. Subsetting needs the
// complete text up front, so this always runs before any element is
// pushed onto the page.
func (r *Renderer) registerFonts(doc *pdfdoc.Document, tokens []token.Token) error {
	fullText := collectText(tokens)

	families := map[string]bool{}
	for _, st := range r.style.AllStyles() {
		if st.FontFamily != "" {
			families[st.FontFamily] = true
		}
	}
	if r.fontConfig.DefaultFont != "" {
		families[r.fontConfig.DefaultFont] = true
	}
	if r.fontConfig.CodeFont != "" {
		families[r.fontConfig.CodeFont] = true
	}
	if len(families) == 0 {
		families["Helvetica"] = true
	}

	for name := range families {
		src := fonts.ResolveName(name)
		if name == r.fontConfig.DefaultFont && r.fontConfig.DefaultFontSource != nil {
			src = *r.fontConfig.DefaultFontSource
		}
		if name == r.fontConfig.CodeFont && r.fontConfig.CodeFontSource != nil {
			src = *r.fontConfig.CodeFontSource
		}

		fam, err := r.resolver.ResolveSource(src)
		if err != nil {
			return &Error{Kind: ErrorFont, Message: "resolving font " + name, Suggestion: "check the font name or file path", Cause: err}
		}
		fam = r.resolver.Subset(fam, fullText, r.fontConfig, r.warn)
		r.registerFamily(doc, name, fam)
	}
	return nil
}

func (r *Renderer) registerFamily(doc *pdfdoc.Document, name string, fam *fonts.Family) {
	doc.RegisterFace(name, false, false, fam.Regular.Builtin, fam.Regular.Bytes)
	doc.RegisterFace(name, true, false, fam.Bold.Builtin, fam.Bold.Bytes)
	doc.RegisterFace(name, false, true, fam.Italic.Builtin, fam.Italic.Bytes)
	doc.RegisterFace(name, true, true, fam.BoldItalic.Builtin, fam.BoldItalic.Bytes)
}

// collectText walks the full token tree, gathering every rune of text
// that will actually be drawn, for font subsetting.
func collectText(tokens []token.Token) string {
	var b []byte
	var walk func(toks []token.Token)
	walk = func(toks []token.Token) {
		for _, t := range toks {
			switch t.Kind {
			case token.KindText, token.KindCode, token.KindBlockQuote, token.KindHtmlComment:
				b = append(b, t.Content...)
			case token.KindLink, token.KindImage:
				b = append(b, t.Text...)
			case token.KindListItem:
				// Markers ("- ", "N. ") are drawn by renderListItem.
				b = append(b, "- 0123456789."...)
			case token.KindTable:
				for _, h := range t.Headers {
					walk(h)
				}
				for _, row := range t.Rows {
					for _, cell := range row {
						walk(cell)
					}
				}
			}
			walk(t.Children)
		}
	}
	walk(tokens)
	return string(b)
}
