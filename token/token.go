// Package token defines the tree produced by the lexer and consumed by
// the renderer. Tokens are plain data: the lexer owns the tree until it
// hands it to the renderer, after which it is never mutated.
package token

import "strings"

// Kind tags which variant a Token holds.
type Kind int

// All recognized token variants.
const (
	KindHeading Kind = iota
	KindEmphasis
	KindStrongEmphasis
	KindCode
	KindBlockQuote
	KindListItem
	KindLink
	KindImage
	KindTable
	KindText
	KindHtmlComment
	KindNewline
	KindHorizontalRule
	KindUnknown
)

// Alignment is a table column or paragraph alignment.
type Alignment int

// Recognized alignments. AlignNone means "inherit/default."
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

// Token is a tagged variant covering every construct the lexer emits.
// Only the fields relevant to Kind are populated; the rest are zero.
type Token struct {
	Kind Kind

	// Heading, Emphasis, StrongEmphasis, ListItem: ordered child tokens.
	Children []Token

	// Heading: level in [1,6]. Emphasis: level in {1,2,3}.
	Level int

	// Code: language (may be empty) and verbatim content.
	Language string
	Content  string

	// ListItem.
	Ordered bool
	Number  *int

	// Link, Image: flattened text/alt plus target URL.
	Text string
	URL  string

	// Table.
	Headers    [][]Token
	Alignments []Alignment
	Rows       [][][]Token
}

// Text returns a Text token wrapping s.
func Text(s string) Token { return Token{Kind: KindText, Content: s} }

// Newline returns a bare Newline token.
func Newline() Token { return Token{Kind: KindNewline} }

// HorizontalRule returns a bare HorizontalRule token.
func HorizontalRule() Token { return Token{Kind: KindHorizontalRule} }

// Unknown returns a fall-through token for malformed input; never an error.
func Unknown(content string) Token { return Token{Kind: KindUnknown, Content: content} }

// IsBlock reports whether the token only ever appears at the top level of
// a sequence (as opposed to inline, inside a paragraph's run).
func (t Token) IsBlock() bool {
	switch t.Kind {
	case KindHeading, KindBlockQuote, KindListItem, KindTable, KindHorizontalRule:
		return true
	case KindCode:
		// A fenced code block is a block token; inline code is not.
		return strings.ContainsRune(t.Content, '\n')
	default:
		return false
	}
}
