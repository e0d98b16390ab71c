package lexer

import (
	"strings"

	"github.com/theiskaa/markdown2pdf/token"
)

// isTableHeaderLine reports whether lines[i] is a candidate table header
// (contains '|' with at least two cells) immediately followed by a valid
// separator line. Looking ahead this way disambiguates a bare '---' from
// a table separator without needing to track lookbehind state.
func isTableHeaderLine(lines []string, i int) bool {
	if !strings.Contains(lines[i], "|") {
		return false
	}
	cells := splitCells(lines[i])
	if len(cells) < 2 {
		return false
	}
	if i+1 >= len(lines) {
		return false
	}
	_, ok := parseSeparatorRow(lines[i+1])
	return ok
}

// splitCells splits a table row on '|', trimming a leading/trailing empty
// cell produced by a line that opens/closes with a pipe.
func splitCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// parseSeparatorRow parses a GFM-style separator line into per-column
// alignments. ok is false if the line is not a valid separator.
func parseSeparatorRow(line string) ([]token.Alignment, bool) {
	cells := splitCells(line)
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]token.Alignment, len(cells))
	for i, cell := range cells {
		if len(cell) < 3 {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		dashes := cell
		if left {
			dashes = strings.TrimPrefix(dashes, ":")
		}
		if right {
			dashes = strings.TrimSuffix(dashes, ":")
		}
		if len(dashes) < 3 {
			return nil, false
		}
		for _, ch := range dashes {
			if ch != '-' {
				return nil, false
			}
		}
		switch {
		case left && right:
			aligns[i] = token.AlignCenter
		case right:
			aligns[i] = token.AlignRight
		case left:
			aligns[i] = token.AlignLeft
		default:
			aligns[i] = token.AlignLeft
		}
	}
	return aligns, true
}

// lexTable consumes a header line, its separator, and every following
// consecutive '|'-bearing data line, returning a Table token.
func lexTable(lines []string, i int) (token.Token, int, error) {
	headerCells := splitCells(lines[i])
	aligns, _ := parseSeparatorRow(lines[i+1])

	headers := make([][]token.Token, len(aligns))
	for c := range headers {
		cellText := ""
		if c < len(headerCells) {
			cellText = headerCells[c]
		}
		toks, err := lexInline(cellText, i)
		if err != nil {
			return token.Token{}, 0, err
		}
		headers[c] = toks
	}

	var rows [][][]token.Token
	j := i + 2
	for j < len(lines) {
		if strings.TrimSpace(lines[j]) == "" || !strings.Contains(lines[j], "|") {
			break
		}
		cells := splitCells(lines[j])
		row := make([][]token.Token, len(aligns))
		for c := range row {
			cellText := ""
			if c < len(cells) {
				// Long rows are truncated: only the first
				// len(aligns) cells are kept.
				cellText = cells[c]
			}
			toks, err := lexInline(cellText, j)
			if err != nil {
				return token.Token{}, 0, err
			}
			row[c] = toks
		}
		rows = append(rows, row)
		j++
	}

	return token.Token{
		Kind:       token.KindTable,
		Headers:    headers,
		Alignments: aligns,
		Rows:       rows,
	}, j - i, nil
}
