package lexer

import (
	"strings"

	"github.com/theiskaa/markdown2pdf/token"
)

// lexInline recursively scans s (one line, or one table/list cell body)
// for emphasis, inline code, links, and images, accumulating bare runs as
// Text tokens. lineIdx is only used to annotate ParseError positions.
func lexInline(s string, lineIdx int) ([]token.Token, error) {
	var out []token.Token
	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			out = append(out, token.Text(text.String()))
			text.Reset()
		}
	}

	runes := []rune(s)
	i := 0
	for i < len(runes) {
		ch := runes[i]

		switch {
		case ch == '*' || ch == '_':
			n := runLength(runes, i, ch)
			level := n
			if level > 3 {
				level = 3
			}
			matched := false
			for l := level; l >= 1; l-- {
				closeAt, ok := findCloser(runes, i+n, ch, l)
				if !ok {
					continue
				}
				inner := string(runes[i+n : closeAt])
				children, err := lexInline(inner, lineIdx)
				if err != nil {
					return nil, err
				}
				flushText()
				out = append(out, token.Token{Kind: token.KindEmphasis, Level: l, Children: children})
				i = closeAt + l
				matched = true
				break
			}
			if !matched {
				text.WriteString(string(runes[i : i+n]))
				i += n
			}

		case ch == '`':
			closeAt := indexRune(runes, i+1, '`')
			if closeAt == -1 {
				text.WriteRune(ch)
				i++
				continue
			}
			content := string(runes[i+1 : closeAt])
			flushText()
			out = append(out, token.Token{Kind: token.KindCode, Content: content})
			i = closeAt + 1

		case ch == '!' && i+1 < len(runes) && runes[i+1] == '[':
			alt, url, next, matched, err := lexLinkLike(runes, i+1, lineIdx, true)
			if err != nil {
				return nil, err
			}
			if matched {
				flushText()
				out = append(out, token.Token{Kind: token.KindImage, Text: alt, URL: url})
				i = next
			} else {
				text.WriteRune(ch)
				i++
			}

		case ch == '[':
			alt, url, next, matched, err := lexLinkLike(runes, i, lineIdx, false)
			if err != nil {
				return nil, err
			}
			if matched {
				flushText()
				out = append(out, token.Token{Kind: token.KindLink, Text: alt, URL: url})
				i = next
			} else {
				text.WriteRune(ch)
				i++
			}

		default:
			text.WriteRune(ch)
			i++
		}
	}

	flushText()
	return out, nil
}

// runLength returns how many consecutive ch runes start at i.
func runLength(runes []rune, i int, ch rune) int {
	n := 0
	for i+n < len(runes) && runes[i+n] == ch {
		n++
	}
	return n
}

// indexRune returns the index of the first occurrence of ch at or after
// start, or -1.
func indexRune(runes []rune, start int, ch rune) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == ch {
			return i
		}
	}
	return -1
}

// findCloser looks, starting at start, for a run of exactly n consecutive
// marker runes whose content since the opener is non-empty. It returns
// the index where that closing run begins.
func findCloser(runes []rune, start int, marker rune, n int) (int, bool) {
	for i := start; i < len(runes); i++ {
		if runes[i] != marker {
			continue
		}
		run := runLength(runes, i, marker)
		if run == n && i > start {
			return i, true
		}
		i += run - 1
	}
	return 0, false
}

// lexLinkLike scans a `[text](url)` or `![alt](url)` construct starting
// at the opening '[' (bracketStart). It returns the flattened text/alt,
// the target URL, the index just past the construct, and whether a
// complete construct was matched. An unclosed '[' before end of input is
// a ParseError, per the core specification's error model; a closed
// bracket with no following "(url)" degrades to literal text instead.
func lexLinkLike(runes []rune, bracketStart int, lineIdx int, isImage bool) (text, url string, next int, matched bool, err error) {
	closeBracket := indexRune(runes, bracketStart+1, ']')
	if closeBracket == -1 {
		kindWord := "link"
		marker := "["
		if isImage {
			kindWord = "image"
			marker = "!["
		}
		return "", "", 0, false, token.NewParseError(
			token.UnexpectedEndOfInput,
			kindWord+" opening '"+marker+"' has no closing ']' before end of input",
			token.Position{Line: lineIdx + 1, Column: bracketStart + 1},
			"add a closing ']' to complete the "+kindWord,
		)
	}

	if closeBracket+1 >= len(runes) || runes[closeBracket+1] != '(' {
		return "", "", 0, false, nil
	}
	closeParen := indexRune(runes, closeBracket+2, ')')
	if closeParen == -1 {
		return "", "", 0, false, nil
	}

	text = string(runes[bracketStart+1 : closeBracket])
	url = string(runes[closeBracket+2 : closeParen])
	return text, url, closeParen + 1, true, nil
}
