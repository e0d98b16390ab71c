package lexer

import (
	"strconv"
	"strings"

	"github.com/theiskaa/markdown2pdf/token"
)

// headingLevel returns the ATX heading level (1-6, clamped) for line, or 0
// if line is not a heading. A run of six or more '#' characters is capped
// to level 6, per the core specification's boundary rule.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n >= len(line) || line[n] != ' ' {
		return 0
	}
	if n > 6 {
		n = 6
	}
	return n
}

// lexHeading builds a Heading token from line, recursively lexing the
// remainder of the line (after the marker and its following space) as
// inline content.
func lexHeading(line string, lineIdx int) (token.Token, error) {
	raw := 0
	for raw < len(line) && line[raw] == '#' {
		raw++
	}
	level := raw
	if level > 6 {
		level = 6
	}
	rest := strings.TrimPrefix(line[raw:], " ")
	children, err := lexInline(rest, lineIdx)
	if err != nil {
		return token.Token{}, err
	}
	return token.Token{Kind: token.KindHeading, Level: level, Children: children}, nil
}

// isFenceLine reports whether trimmed opens (or closes) a fenced code
// block: three or more backticks.
func isFenceLine(trimmed string) bool {
	n := 0
	for n < len(trimmed) && trimmed[n] == '`' {
		n++
	}
	return n >= 3
}

// lexFencedCode consumes a fenced code block starting at lines[i] and
// returns the Code token, the number of lines consumed, and an error if
// the fence is never closed before end of input.
func lexFencedCode(lines []string, i int) (token.Token, int, error) {
	opening := strings.TrimSpace(lines[i])
	fenceLen := 0
	for fenceLen < len(opening) && opening[fenceLen] == '`' {
		fenceLen++
	}
	language := strings.TrimSpace(opening[fenceLen:])

	var body []string
	j := i + 1
	closed := false
	for j < len(lines) {
		t := strings.TrimSpace(lines[j])
		if isFenceLine(t) {
			closed = true
			break
		}
		body = append(body, lines[j])
		j++
	}
	if !closed {
		return token.Token{}, 0, token.NewParseError(
			token.UnexpectedEndOfInput,
			"fenced code block opened but never closed",
			token.Position{Line: i + 1, Column: 1},
			"add a closing ``` line to terminate the code fence",
		)
	}

	content := strings.Join(body, "\n")
	if !strings.Contains(content, "\n") {
		// Keep the fenced/inline distinction (content contains a
		// newline) true even for a zero- or one-line fenced body.
		content += "\n"
	}

	return token.Token{Kind: token.KindCode, Language: language, Content: content}, (j - i) + 1, nil
}

// lexBlockQuote joins consecutive '>'-prefixed lines starting at lines[i]
// into a single BlockQuote token.
func lexBlockQuote(lines []string, i int) (token.Token, int) {
	var parts []string
	j := i
	for j < len(lines) {
		trimmed := strings.TrimSpace(lines[j])
		if !strings.HasPrefix(trimmed, ">") {
			break
		}
		text := strings.TrimPrefix(trimmed, ">")
		text = strings.TrimPrefix(text, " ")
		parts = append(parts, text)
		j++
	}
	return token.Token{Kind: token.KindBlockQuote, Content: strings.Join(parts, "\n")}, j - i
}

// isHorizontalRuleLine reports whether trimmed is three or more '-'
// characters and nothing else. Per the core specification's boundary
// behavior, exactly two dashes is plain Text; three or more is a rule.
func isHorizontalRuleLine(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	for _, ch := range trimmed {
		if ch != '-' {
			return false
		}
	}
	return true
}

// isListItemLine reports whether line opens an unordered or ordered list
// item, regardless of indentation.
func isListItemLine(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return false
	}
	if (trimmed[0] == '-' || trimmed[0] == '*' || trimmed[0] == '+') && len(trimmed) > 1 && trimmed[1] == ' ' {
		return true
	}
	n := 0
	for n < len(trimmed) && trimmed[n] >= '0' && trimmed[n] <= '9' {
		n++
	}
	return n > 0 && n+1 < len(trimmed) && trimmed[n] == '.' && trimmed[n+1] == ' '
}

// lexListItem parses a single list item at lines[i], then recursively
// pulls in any more-deeply-indented list items as nested children.
// parentIndent is -1 when called for a top-level item.
func lexListItem(lines []string, i int, parentIndent int) (token.Token, int, error) {
	line := lines[i]
	indent := indentOf(line)
	trimmed := strings.TrimLeft(line, " ")

	var ordered bool
	var number *int
	var rest string

	if trimmed[0] == '-' || trimmed[0] == '*' || trimmed[0] == '+' {
		ordered = false
		rest = strings.TrimPrefix(trimmed[1:], " ")
	} else {
		n := 0
		for n < len(trimmed) && trimmed[n] >= '0' && trimmed[n] <= '9' {
			n++
		}
		num, _ := strconv.Atoi(trimmed[:n])
		ordered = true
		number = &num
		rest = strings.TrimPrefix(trimmed[n+1:], " ")
	}

	children, err := lexInline(rest, i)
	if err != nil {
		return token.Token{}, 0, err
	}

	consumed := 1
	j := i + 1
	for j < len(lines) {
		next := lines[j]
		if strings.TrimSpace(next) == "" {
			break
		}
		if !isListItemLine(next) {
			break
		}
		nextIndent := indentOf(next)
		if nextIndent <= indent {
			break
		}
		child, n, err := lexListItem(lines, j, indent)
		if err != nil {
			return token.Token{}, 0, err
		}
		children = append(children, child)
		consumed += n
		j += n
	}

	return token.Token{
		Kind:     token.KindListItem,
		Children: children,
		Ordered:  ordered,
		Number:   number,
	}, consumed, nil
}

// lexHTMLComment consumes an `<!-- ... -->` span, possibly across
// multiple lines, and returns an HtmlComment token. An unterminated
// comment is not an error: it simply swallows the rest of the input,
// matching the core specification's fallback-first error policy.
func lexHTMLComment(lines []string, i int) (token.Token, int) {
	joined := strings.Join(lines[i:], "\n")
	start := strings.Index(joined, "<!--")
	if start == -1 {
		return token.Unknown(lines[i]), 1
	}
	body := joined[start+len("<!--"):]
	end := strings.Index(body, "-->")
	if end == -1 {
		return token.Token{Kind: token.KindHtmlComment, Content: strings.TrimSpace(body)}, len(lines) - i
	}
	content := strings.TrimSpace(body[:end])
	consumedText := joined[:start+len("<!--")+end+len("-->")]
	consumed := strings.Count(consumedText, "\n") + 1
	return token.Token{Kind: token.KindHtmlComment, Content: content}, consumed
}
