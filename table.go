package mdhtml

import (
	"fmt"
	"regexp"
	"strings"
)

// The table formatter is a three-state machine. A candidate header row
// moves it to detecting; only a separator row on the very next non-blank
// line confirms the table. On mismatch the buffered candidate is handed
// back so a false positive never swallows input.

type tableState int

const (
	tableNone tableState = iota
	tableDetecting
	tableProcessing
)

type tableAlign int

const (
	alignLeft tableAlign = iota
	alignCenter
	alignRight
)

func (a tableAlign) css() string {
	switch a {
	case alignCenter:
		return "center"
	case alignRight:
		return "right"
	default:
		return "left"
	}
}

var reSeparatorCell = regexp.MustCompile(`^:?-+:?$`)

type tableFormatter struct {
	state  tableState
	header string
	aligns []tableAlign
	rows   []string
}

func isTableRowCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || !strings.Contains(trimmed, "|") {
		return false
	}
	return !isSeparatorRow(line)
}

func isSeparatorRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || !strings.Contains(trimmed, "|") {
		return false
	}
	cells := splitTableCells(trimmed)
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !reSeparatorCell.MatchString(cell) {
			return false
		}
	}
	return true
}

func splitTableCells(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func parseAligns(separator string) []tableAlign {
	cells := splitTableCells(separator)
	aligns := make([]tableAlign, len(cells))
	for i, cell := range cells {
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			aligns[i] = alignCenter
		case right:
			aligns[i] = alignRight
		default:
			aligns[i] = alignLeft
		}
	}
	return aligns
}

// feed advances the machine with one line. It returns emitted HTML (if a
// table closed), lines the caller must reprocess as non-table input, and
// whether the line was consumed.
func (t *tableFormatter) feed(line string, opts Options) (emitted string, replay []string, consumed bool) {
	switch t.state {
	case tableNone:
		if isTableRowCandidate(line) {
			t.state = tableDetecting
			t.header = line
			return "", nil, true
		}
		return "", nil, false
	case tableDetecting:
		if strings.TrimSpace(line) == "" {
			// Lookahead skips blanks; keep waiting for the separator.
			return "", nil, true
		}
		if isSeparatorRow(line) {
			t.state = tableProcessing
			t.aligns = parseAligns(line)
			return "", nil, true
		}
		header := t.header
		t.reset()
		return "", []string{header}, false
	case tableProcessing:
		if isTableRowCandidate(line) || isSeparatorRow(line) {
			t.rows = append(t.rows, line)
			return "", nil, true
		}
		html := t.render(opts)
		t.reset()
		return html, nil, false
	}
	return "", nil, false
}

// finish flushes state at end of input: an unconfirmed candidate is
// replayed as plain text, a confirmed table is emitted.
func (t *tableFormatter) finish(opts Options) (emitted string, replay []string) {
	switch t.state {
	case tableDetecting:
		header := t.header
		t.reset()
		return "", []string{header}
	case tableProcessing:
		html := t.render(opts)
		t.reset()
		return html, nil
	}
	return "", nil
}

func (t *tableFormatter) reset() {
	t.state = tableNone
	t.header = ""
	t.aligns = nil
	t.rows = nil
}

func (t *tableFormatter) alignAt(i int) tableAlign {
	if i < len(t.aligns) {
		return t.aligns[i]
	}
	return alignLeft
}

func (t *tableFormatter) render(opts Options) string {
	c := opts.Theme.Colors()
	var b strings.Builder
	fmt.Fprintf(&b, `<table style="border-collapse:collapse;width:100%%;margin:%sem 0;">`,
		trimFloat(opts.Layout.BlockSpacing))

	b.WriteString("<thead><tr>")
	for i, cell := range splitTableCells(t.header) {
		fmt.Fprintf(&b, `<th style="border:1px solid %s;background:%s;padding:8px 12px;text-align:%s;">%s</th>`,
			c.TableBorder, c.TableHeadBg, t.alignAt(i).css(), renderInline(cell, opts))
	}
	b.WriteString("</tr></thead><tbody>")

	for _, row := range t.rows {
		b.WriteString("<tr>")
		for i, cell := range splitTableCells(row) {
			fmt.Fprintf(&b, `<td style="border:1px solid %s;padding:8px 12px;text-align:%s;">%s</td>`,
				c.TableBorder, t.alignAt(i).css(), renderInline(cell, opts))
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
