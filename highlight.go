package mdhtml

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"
)

// The highlighter is a minimal multi-pass tokenizer, not a lexer. Rules
// run in priority order over HTML-escaped code text; each match claims a
// character range and later rules skip anything already claimed.

type highlightRule struct {
	re *regexp.Regexp
	// role picks the color from SyntaxColors. The reserved "entity"
	// role claims a range without wrapping it, keeping escape entities
	// in one piece.
	role string
	// trimTrailing drops that many bytes from the end of each match
	// before claiming (used for the identifier-before-paren rule,
	// which has to include the paren in the pattern).
	trimTrailing int
	// boundary marks rules whose pattern starts with a one-byte
	// whitespace boundary that must not be claimed.
	boundary bool
}

var highlightRules = []highlightRule{
	{re: regexp.MustCompile(`//[^\n]*|/\*[\s\S]*?\*/|&lt;!--[\s\S]*?--&gt;`), role: "comment"},
	{re: regexp.MustCompile(`(?m)(?:^|[ \t])#[^\n]*`), role: "comment", boundary: true},
	{re: regexp.MustCompile(`&#3[49];.*?&#3[49];|` + "`[^`\n]*`"), role: "string"},
	// Escape entities are claimed unwrapped so the number rule cannot
	// split &#34; down the middle.
	{re: regexp.MustCompile(`&#\d+;|&[a-zA-Z]+;`), role: "entity"},
	{re: regexp.MustCompile(`\b(func|function|return|if|else|for|while|switch|case|break|continue|const|let|var|type|struct|interface|import|package|class|def|public|private|static|new|nil|null|none|true|false|range|go|defer|chan|select|map|async|await|try|catch|finally|throw|raise|in|of|void|int|string|bool|float|double)\b`), role: "keyword"},
	{re: regexp.MustCompile(`\b\d+(\.\d+)?\b`), role: "number"},
	{re: regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\(`), role: "function", trimTrailing: 1},
}

type claimedSpan struct {
	start, end int
	color      string
}

func syntaxColor(s SyntaxColors, role string) string {
	switch role {
	case "comment":
		return s.Comment
	case "string":
		return s.String
	case "keyword":
		return s.Keyword
	case "number":
		return s.Number
	case "function":
		return s.Function
	}
	return ""
}

func overlaps(spans []claimedSpan, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}

// highlightLine tokenizes one already-unescaped code line into themed
// spans and converts spaces to non-breaking entities so indentation
// survives copy/paste. Tags inserted by the tokenizer are swapped for
// sentinels before the space pass so it cannot corrupt them.
func highlightLine(line string, style CodeStyle) string {
	escaped := html.EscapeString(line)
	var spans []claimedSpan
	for _, rule := range highlightRules {
		color := syntaxColor(style.Syntax, rule.role)
		if color == "" && rule.role != "entity" {
			continue
		}
		for _, loc := range rule.re.FindAllStringIndex(escaped, -1) {
			start, end := loc[0], loc[1]-rule.trimTrailing
			if rule.boundary && start < end && (escaped[start] == ' ' || escaped[start] == '\t') {
				start++
			}
			if end <= start || overlaps(spans, start, end) {
				continue
			}
			spans = append(spans, claimedSpan{start: start, end: end, color: color})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		b.WriteString(escaped[pos:s.start])
		if s.color == "" {
			b.WriteString(escaped[s.start:s.end])
		} else {
			fmt.Fprintf(&b, `<span style="color:%s;">%s</span>`, s.color, escaped[s.start:s.end])
		}
		pos = s.end
	}
	b.WriteString(escaped[pos:])

	return hardenSpaces(b.String())
}

var reAnyTag = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)

// hardenSpaces converts literal spaces to &nbsp; while leaving HTML tags
// untouched. Tags are replaced with uniquely-scoped sentinels first so
// attribute spaces survive the substitution.
func hardenSpaces(s string) string {
	pc := newPlaceholderContext("TAG")
	protected := reAnyTag.ReplaceAllStringFunc(s, func(tag string) string {
		return pc.protect(tag)
	})
	protected = strings.ReplaceAll(protected, " ", "&nbsp;")
	return pc.restore(protected)
}

// renderCodeBlock assembles a fenced block: optional decorated header,
// then the highlighted body with one line per row.
func renderCodeBlock(code []string, lang string, opts Options) string {
	style := opts.Code
	var b strings.Builder
	fmt.Fprintf(&b, `<div style="background:%s;border-radius:8px;overflow-x:auto;margin:%sem 0;">`,
		style.Background, trimFloat(opts.Layout.BlockSpacing))

	if style.MacDots || (style.ShowLanguage && lang != "") {
		fmt.Fprintf(&b, `<div style="background:%s;padding:8px 14px;border-radius:8px 8px 0 0;">`, style.HeaderBg)
		if style.MacDots {
			for _, dot := range [3]string{"#ff5f56", "#ffbd2e", "#27c93f"} {
				fmt.Fprintf(&b, `<span style="display:inline-block;width:12px;height:12px;border-radius:50%%;background:%s;margin-right:8px;"></span>`, dot)
			}
		}
		if style.ShowLanguage && lang != "" {
			fmt.Fprintf(&b, `<span style="color:%s;font-size:12px;font-family:%s;float:right;">%s</span>`,
				style.Text, fontStacks["mono"], html.EscapeString(lang))
		}
		b.WriteString(`</div>`)
	}

	fmt.Fprintf(&b, `<pre style="margin:0;padding:14px;"><code style="font-family:%s;font-size:14px;color:%s;display:block;">`,
		fontStacks["mono"], style.Text)
	for i, line := range code {
		if i > 0 {
			b.WriteString("<br>")
		}
		b.WriteString(highlightLine(line, style))
	}
	b.WriteString(`</code></pre></div>`)
	return b.String()
}
