package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theiskaa/markdown2pdf/token"
)

func TestSimpleHeading(t *testing.T) {
	toks, err := Parse("# Hello\n")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.KindHeading, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Level)
	require.Len(t, toks[0].Children, 1)
	assert.Equal(t, token.Text("Hello"), toks[0].Children[0])
	assert.Equal(t, token.Newline(), toks[1])
}

func TestNestedEmphasis(t *testing.T) {
	toks, err := Parse("**bold *and italic* text**")
	require.NoError(t, err)
	require.Len(t, toks, 1)

	outer := toks[0]
	assert.Equal(t, token.KindEmphasis, outer.Kind)
	assert.Equal(t, 2, outer.Level)
	require.Len(t, outer.Children, 3)

	assert.Equal(t, token.Text("bold "), outer.Children[0])
	assert.Equal(t, token.Text(" text"), outer.Children[2])

	inner := outer.Children[1]
	assert.Equal(t, token.KindEmphasis, inner.Kind)
	assert.Equal(t, 1, inner.Level)
	require.Len(t, inner.Children, 1)
	assert.Equal(t, token.Text("and italic"), inner.Children[0])
}

func TestFencedCodeBlock(t *testing.T) {
	src := "```rust\nfn main() {}\n```"
	toks, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindCode, toks[0].Kind)
	assert.Equal(t, "rust", toks[0].Language)
	assert.Equal(t, "fn main() {}\n", toks[0].Content)
	assert.True(t, toks[0].IsBlock())
}

func TestUnterminatedFenceIsError(t *testing.T) {
	_, err := Parse("```go\nfmt.Println(1)\n")
	require.Error(t, err)
	var parseErr *token.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, token.UnexpectedEndOfInput, parseErr.Kind)
}

func TestUnterminatedLinkBracketIsError(t *testing.T) {
	_, err := Parse("see [this link for more")
	require.Error(t, err)
	var parseErr *token.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, token.UnexpectedEndOfInput, parseErr.Kind)
}

func TestClosedBracketWithoutURLDegradesToText(t *testing.T) {
	toks, err := Parse("[not a link] just text")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindText, toks[0].Kind)
	assert.Equal(t, "[not a link] just text", toks[0].Content)
}

func TestLinkAndImage(t *testing.T) {
	toks, err := Parse("[go](https://go.dev) and ![logo](logo.png)")
	require.NoError(t, err)
	require.Len(t, toks, 3)

	assert.Equal(t, token.KindLink, toks[0].Kind)
	assert.Equal(t, "go", toks[0].Text)
	assert.Equal(t, "https://go.dev", toks[0].URL)

	assert.Equal(t, token.KindText, toks[1].Kind)

	assert.Equal(t, token.KindImage, toks[2].Kind)
	assert.Equal(t, "logo", toks[2].Text)
	assert.Equal(t, "logo.png", toks[2].URL)
}

func TestHorizontalRuleBoundary(t *testing.T) {
	toks, err := Parse("--")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindText, toks[0].Kind, "two dashes is plain text")

	toks, err = Parse("---")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindHorizontalRule, toks[0].Kind, "three or more dashes is a rule")
}

func TestHeadingLevelCapsAtSix(t *testing.T) {
	toks, err := Parse("####### Too deep")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, 6, toks[0].Level)
}

func TestTableRowsMatchAlignmentLength(t *testing.T) {
	src := "| a | b | c |\n|---|:---:|---:|\n| 1 | 2 |\n| 1 | 2 | 3 | 4 |\n"
	toks, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, toks, 2) // the table, then a Newline for the trailing blank line

	tbl := toks[0]
	require.Equal(t, token.KindTable, tbl.Kind)
	require.Len(t, tbl.Alignments, 3)
	assert.Equal(t, token.AlignLeft, tbl.Alignments[0])
	assert.Equal(t, token.AlignCenter, tbl.Alignments[1])
	assert.Equal(t, token.AlignRight, tbl.Alignments[2])

	assert.Len(t, tbl.Headers, 3)
	for _, row := range tbl.Rows {
		assert.Len(t, row, 3)
	}
}

func TestListItemOrderedIffNumberPresent(t *testing.T) {
	toks, err := Parse("- a\n1. b\n")
	require.NoError(t, err)
	require.Len(t, toks, 3) // two list items, then a Newline for the trailing blank line

	unordered := toks[0]
	assert.False(t, unordered.Ordered)
	assert.Nil(t, unordered.Number)

	ordered := toks[1]
	assert.True(t, ordered.Ordered)
	require.NotNil(t, ordered.Number)
	assert.Equal(t, 1, *ordered.Number)
}

func TestNestedListIndentation(t *testing.T) {
	src := strings.Join([]string{
		"- depth0",
		"  - depth1",
		"    - depth2",
		"      - depth3",
		"        - depth4",
		"          - depth5",
		"",
	}, "\n")

	toks, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, toks, 2) // the outer list item, then a Newline for the trailing blank line

	item := toks[0]
	for depth := 0; depth < 5; depth++ {
		require.NotEmpty(t, item.Children, "expected nested list item at depth %d", depth+1)
		var next token.Token
		found := false
		for _, c := range item.Children {
			if c.Kind == token.KindListItem {
				next = c
				found = true
				break
			}
		}
		require.True(t, found)
		item = next
	}
}

func TestEmptyInputProducesSingleNewline(t *testing.T) {
	toks, err := Parse("")
	require.NoError(t, err)
	assert.Len(t, toks, 1) // a single blank line -> one Newline token
	assert.Equal(t, token.Newline(), toks[0])
}

func TestHtmlCommentPreservedNotRendered(t *testing.T) {
	toks, err := Parse("<!-- note to self -->")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindHtmlComment, toks[0].Kind)
	assert.Equal(t, "note to self", toks[0].Content)
}

func TestSingleTextRunRoundTrips(t *testing.T) {
	toks, err := Parse("just plain text")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.Text("just plain text"), toks[0])
}
