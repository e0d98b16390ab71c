// Package lexer implements the single-pass, recursive Markdown tokenizer
// described by the core specification: it turns raw source text directly
// into a tree of token.Token values without a separate parse stage.
//
// The block scanner walks the input line by line, the way
// circuit-geek-pagepipe's PDF renderer walks lines to strip Markdown
// markers — except here each line produces tokens instead of stripped
// text, and inline constructs within a line are handled by a small
// recursive descent scanner in inline.go.
package lexer

import (
	"strings"

	"github.com/theiskaa/markdown2pdf/token"
)

// Parse tokenizes source into a sequence of Token values. It returns an
// error only for genuinely unrecoverable input: an unterminated fenced
// code block, or a link/image opening bracket with no closing bracket
// before end of input. Everything else degrades to literal Text.
func Parse(source string) ([]token.Token, error) {
	lines := strings.Split(source, "\n")
	var out []token.Token

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			out = append(out, token.Newline())
			i++

		case strings.HasPrefix(trimmed, "<!--"):
			tok, n := lexHTMLComment(lines, i)
			out = append(out, tok)
			i += n

		case isFenceLine(trimmed):
			tok, n, err := lexFencedCode(lines, i)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
			i += n

		case headingLevel(line) > 0:
			tok, err := lexHeading(line, i)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
			i++

		case strings.HasPrefix(trimmed, ">"):
			tok, n := lexBlockQuote(lines, i)
			out = append(out, tok)
			i += n

		case isTableHeaderLine(lines, i):
			tok, n, err := lexTable(lines, i)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
			i += n

		case isListItemLine(line):
			tok, n, err := lexListItem(lines, i, -1)
			if err != nil {
				return nil, err
			}
			out = append(out, tok)
			i += n

		case isHorizontalRuleLine(trimmed):
			out = append(out, token.HorizontalRule())
			i++

		default:
			toks, err := lexInline(line, i)
			if err != nil {
				return nil, err
			}
			out = append(out, toks...)
			i++
		}
	}

	return out, nil
}

// indentOf returns the number of leading space characters on line. Only
// spaces are counted: a tab ends the indentation like any other
// character, matching the space-only trimming used by isListItemLine.
func indentOf(line string) int {
	n := 0
	for _, ch := range line {
		if ch == ' ' {
			n++
		} else {
			break
		}
	}
	return n
}
