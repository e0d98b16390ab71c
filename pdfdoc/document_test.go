package pdfdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theiskaa/markdown2pdf/style"
)

func newTestDocument() *Document {
	d := NewDocument(style.Margins{Top: 20, Right: 20, Bottom: 20, Left: 20})
	d.RegisterFace("Helvetica", false, false, "Helvetica", nil)
	d.RegisterFace("Helvetica", true, false, "Helvetica-Bold", nil)
	d.RegisterFace("Helvetica", false, true, "Helvetica-Oblique", nil)
	d.RegisterFace("Helvetica", true, true, "Helvetica-BoldOblique", nil)
	return d
}

func TestRenderToBytesEmptyDocumentIsValidPDF(t *testing.T) {
	d := newTestDocument()
	out, err := d.RenderToBytes()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
	assert.GreaterOrEqual(t, len(out), 100)
}

func TestPushParagraphAndBreak(t *testing.T) {
	d := newTestDocument()
	p := NewParagraph().PushStyled("hello world", style.BasicTextStyle{Size: 12})
	d.PushParagraph(p)
	d.PushBreak(Break{Points: 10})

	out, err := d.RenderToBytes()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestPushTableWithUnevenWidths(t *testing.T) {
	d := newTestDocument()
	row := func(a, b string) []Cell {
		st := style.BasicTextStyle{Size: 12}
		return []Cell{
			{Runs: []Run{{Text: a, Style: st}}},
			{Runs: []Run{{Text: b, Style: st}}},
		}
	}
	d.PushTable(Table{
		Widths:     []float32{2, 1},
		Rows:       [][]Cell{row("h1", "h2"), row("v1", "v2")},
		HeaderRows: 1,
	})

	out, err := d.RenderToBytes()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestNormalizeWidthsDistributesProportionally(t *testing.T) {
	widths := normalizeWidths([]float32{1, 1, 2}, 400)
	require.Len(t, widths, 3)
	assert.InDelta(t, 100, widths[0], 0.01)
	assert.InDelta(t, 100, widths[1], 0.01)
	assert.InDelta(t, 200, widths[2], 0.01)
}

func TestPushImageFallsBackToAltTextWhenNoBytes(t *testing.T) {
	d := newTestDocument()
	d.PushImage(Image{Alt: "a missing picture", Style: style.BasicTextStyle{Size: 12}})

	out, err := d.RenderToBytes()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}
