package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlock(t *testing.T) {
	assert.True(t, Token{Kind: KindHeading}.IsBlock())
	assert.True(t, Token{Kind: KindBlockQuote}.IsBlock())
	assert.True(t, Token{Kind: KindListItem}.IsBlock())
	assert.True(t, Token{Kind: KindTable}.IsBlock())
	assert.True(t, Token{Kind: KindHorizontalRule}.IsBlock())

	assert.False(t, Token{Kind: KindText}.IsBlock())
	assert.False(t, Token{Kind: KindEmphasis}.IsBlock())
	assert.False(t, Token{Kind: KindLink}.IsBlock())
	assert.False(t, Token{Kind: KindNewline}.IsBlock())
}

func TestIsBlockCodeDependsOnNewline(t *testing.T) {
	inline := Token{Kind: KindCode, Content: "x := 1"}
	assert.False(t, inline.IsBlock())

	fenced := Token{Kind: KindCode, Content: "fn main() {}\n"}
	assert.True(t, fenced.IsBlock())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, Token{Kind: KindText, Content: "hi"}, Text("hi"))
	assert.Equal(t, Token{Kind: KindNewline}, Newline())
	assert.Equal(t, Token{Kind: KindHorizontalRule}, HorizontalRule())
	assert.Equal(t, Token{Kind: KindUnknown, Content: "??"}, Unknown("??"))
}

func TestParseErrorImplementsError(t *testing.T) {
	pos := Position{Line: 3, Column: 4}
	err := NewParseError(UnexpectedEndOfInput, "bad input", pos, "add a closing marker")

	var asErr error = err
	require.Error(t, asErr)
	assert.Contains(t, asErr.Error(), "bad input")
	assert.Equal(t, UnexpectedEndOfInput, err.Kind)
	assert.Equal(t, &pos, err.Position)
	assert.Equal(t, "add a closing marker", err.Suggestion)
}
