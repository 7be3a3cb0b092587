package mdhtml

import (
	"fmt"
	"strings"

	"github.com/Yaidea/mdeditor-sub000/internal/palette"
)

// List handling is stateless per line: depth and kind are read from the
// current line alone, so runs with varying depth render correctly
// without an explicit stack.

const listIndentWidth = 2

type listKind int

const (
	listUnordered listKind = iota
	listOrdered
	listTask
)

type listItem struct {
	kind    listKind
	depth   int
	marker  string
	content string
	checked bool
}

// bullet glyph and relative scale per nesting depth, cycling past depth 3.
var bulletGlyphs = [4]struct {
	glyph string
	scale float64
}{
	{"•", 1.0},
	{"◦", 0.95},
	{"▪", 0.85},
	{"‣", 0.9},
}

// depthColorSteps darken the theme primary per depth: 0/30/50/70%.
var depthColorSteps = [4]int{0, 30, 50, 70}

// parseListItem reads one source line as a list item. Task items are
// checked before generic bullets so "- [x]" never parses as a plain
// bullet whose content starts with a bracket.
func parseListItem(line string) (listItem, bool) {
	indent := 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	rest := line[indent:]
	depth := indent / listIndentWidth

	if len(rest) >= 6 && (rest[0] == '-' || rest[0] == '*' || rest[0] == '+') && rest[1] == ' ' &&
		rest[2] == '[' && rest[4] == ']' && rest[5] == ' ' {
		switch rest[3] {
		case ' ':
			return listItem{kind: listTask, depth: depth, marker: string(rest[0]), content: strings.TrimSpace(rest[6:])}, true
		case 'x', 'X':
			return listItem{kind: listTask, depth: depth, marker: string(rest[0]), content: strings.TrimSpace(rest[6:]), checked: true}, true
		}
	}

	if len(rest) >= 2 && (rest[0] == '-' || rest[0] == '*' || rest[0] == '+') && rest[1] == ' ' {
		content := strings.TrimSpace(rest[2:])
		if content == "" {
			return listItem{}, false
		}
		return listItem{kind: listUnordered, depth: depth, marker: string(rest[0]), content: content}, true
	}

	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(rest) && (rest[i] == '.' || rest[i] == ')') && rest[i+1] == ' ' {
		content := strings.TrimSpace(rest[i+2:])
		if content == "" {
			return listItem{}, false
		}
		return listItem{kind: listOrdered, depth: depth, marker: rest[:i+1], content: content}, true
	}
	return listItem{}, false
}

// depthColor selects the item color from the 4-entry palette derived
// from the theme primary.
func depthColor(primary string, depth int) string {
	return palette.Darken(primary, depthColorSteps[depth%4])
}

// orderedMarker converts the source line's own number into the glyph
// family for the item's depth: arabic, lower-alpha, lower-roman,
// parenthesized. Numbering follows the source, so it never resets per
// nesting level.
func orderedMarker(marker string, depth int) string {
	digits := strings.TrimRight(marker, ".)")
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	if n <= 0 {
		n = 1
	}
	switch depth % 4 {
	case 1:
		return toLowerAlpha(n) + "."
	case 2:
		return toLowerRoman(n) + "."
	case 3:
		return fmt.Sprintf("(%d)", n)
	default:
		return fmt.Sprintf("%d.", n)
	}
}

func toLowerAlpha(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('a' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

func toLowerRoman(n int) string {
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return b.String()
}

// renderListItem emits one styled list-item paragraph.
func renderListItem(it listItem, opts Options) string {
	c := opts.Theme.Colors()
	color := depthColor(c.Primary, it.depth)
	indentPx := it.depth * 24
	content := renderInline(it.content, opts)

	var markerSpan string
	switch it.kind {
	case listOrdered:
		markerSpan = fmt.Sprintf(`<span style="color:%s;font-weight:600;margin-right:6px;">%s</span>`,
			color, orderedMarker(it.marker, it.depth))
	case listTask:
		box := "☐"
		if it.checked {
			box = "☑"
			content = fmt.Sprintf(`<span style="text-decoration:line-through;opacity:0.6;">%s</span>`, content)
		}
		markerSpan = fmt.Sprintf(`<span style="color:%s;margin-right:6px;">%s</span>`, color, box)
	default:
		g := bulletGlyphs[it.depth%4]
		markerSpan = fmt.Sprintf(`<span style="color:%s;font-size:%sem;margin-right:6px;">%s</span>`,
			color, trimFloat(g.scale), g.glyph)
	}

	return fmt.Sprintf(`<p style="margin:0.25em 0;padding-left:%dpx;">%s%s</p>`, indentPx, markerSpan, content)
}
