package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theiskaa/markdown2pdf/fonts"
	"github.com/theiskaa/markdown2pdf/lexer"
	"github.com/theiskaa/markdown2pdf/style"
)

func newTestRenderer() *Renderer {
	return New(style.DefaultRecord(), fonts.NewResolver(), fonts.DefaultConfig())
}

func TestRenderToBytesProducesValidPDF(t *testing.T) {
	cases := []string{
		"# Hello\n",
		"**bold *and italic* text**",
		"```rust\nfn main() {}\n```",
		"",
		"- one\n- two\n",
		"| a | b |\n|---|---|\n| 1 | 2 |\n",
	}

	for _, src := range cases {
		toks, err := lexer.Parse(src)
		require.NoError(t, err)

		out, err := newTestRenderer().RenderToBytes(toks)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(string(out), "%PDF-"), "input %q", src)
		assert.GreaterOrEqual(t, len(out), 100, "input %q", src)
	}
}

func TestEmptyInputStillProducesAPage(t *testing.T) {
	toks, err := lexer.Parse("")
	require.NoError(t, err)
	out, err := newTestRenderer().RenderToBytes(toks)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestCollectTextGathersAllKinds(t *testing.T) {
	toks, err := lexer.Parse("# Title\n\n[link](url) and `code` and plain text.\n")
	require.NoError(t, err)

	text := collectText(toks)
	assert.Contains(t, text, "Title")
	assert.Contains(t, text, "link")
	assert.Contains(t, text, "code")
	assert.Contains(t, text, "plain text")
}

func TestRenderToDocumentDoesNotFailOnUnresolvableImage(t *testing.T) {
	toks, err := lexer.Parse("![missing](/no/such/file.png)")
	require.NoError(t, err)

	r := newTestRenderer()
	_, err = r.RenderToDocument(toks)
	require.NoError(t, err)
	assert.NotEmpty(t, r.Warnings())
}
