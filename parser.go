package mdhtml

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/Yaidea/mdeditor-sub000/internal/palette"
)

// parseContext is the mutable scratch state for one parse call. It is
// created at parse start and discarded at parse end; nothing in it is
// shared across calls.
type parseContext struct {
	opts Options

	inCodeBlock bool
	codeFence   string
	codeLang    string
	codeLines   []string

	inMathBlock bool
	mathLines   []string

	inBlockquote bool
	quoteLines   []string

	paraLines []string

	table tableFormatter
	slugs map[string]int

	blocks []string
}

func parseBlocks(src string, opts Options) string {
	ctx := &parseContext{opts: opts, slugs: make(map[string]int)}
	for _, line := range strings.Split(src, "\n") {
		ctx.handleLine(line, true)
	}
	ctx.finish()
	return strings.Join(ctx.blocks, "\n")
}

func (ctx *parseContext) emit(block string) {
	if block != "" {
		ctx.blocks = append(ctx.blocks, block)
	}
}

func (ctx *parseContext) handleLine(line string, allowTable bool) {
	if ctx.inCodeBlock {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ctx.codeFence) && strings.TrimSpace(trimmed[len(ctx.codeFence):]) == "" {
			ctx.emit(renderCodeBlock(ctx.codeLines, ctx.codeLang, ctx.opts))
			ctx.inCodeBlock = false
			ctx.codeLines = nil
			ctx.codeLang = ""
			return
		}
		ctx.codeLines = append(ctx.codeLines, line)
		return
	}
	if ctx.inMathBlock {
		if strings.TrimSpace(line) == "$$" {
			ctx.emit(renderMathBlock(strings.Join(ctx.mathLines, "\n"), ctx.opts))
			ctx.inMathBlock = false
			ctx.mathLines = nil
			return
		}
		ctx.mathLines = append(ctx.mathLines, line)
		return
	}
	if ctx.inBlockquote {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(strings.TrimLeft(line, " \t"), ">") {
			ctx.quoteLines = append(ctx.quoteLines, line)
			return
		}
		ctx.flushQuote()
		// fall through: the current line starts something new
	}
	if allowTable && ctx.table.state != tableNone {
		emitted, replay, consumed := ctx.table.feed(line, ctx.opts)
		ctx.emit(emitted)
		for _, r := range replay {
			ctx.handleLine(r, false)
		}
		if consumed {
			return
		}
		// table closed or rejected; the current line starts fresh
		ctx.handleLine(line, true)
		return
	}
	ctx.dispatch(line, allowTable)
}

var reMathBlockLine = regexp.MustCompile(`^\$\$([^$]+)\$\$$`)

// dispatch tests a free line in fixed priority order: code fence, math
// fence, table candidate, list item, horizontal rule, heading,
// blockquote, paragraph.
func (ctx *parseContext) dispatch(line string, allowTable bool) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
		ctx.flushPara()
		ctx.inCodeBlock = true
		ctx.codeFence = trimmed[:3]
		ctx.codeLang = strings.TrimSpace(trimmed[3:])
		ctx.codeLines = nil
		return
	}
	if trimmed == "$$" {
		ctx.flushPara()
		ctx.inMathBlock = true
		ctx.mathLines = nil
		return
	}
	if m := reMathBlockLine.FindStringSubmatch(trimmed); m != nil {
		ctx.flushPara()
		ctx.emit(renderMathBlock(m[1], ctx.opts))
		return
	}
	if allowTable && isTableRowCandidate(line) {
		ctx.flushPara()
		if _, _, consumed := ctx.table.feed(line, ctx.opts); consumed {
			return
		}
	}
	if it, ok := parseListItem(line); ok {
		ctx.flushPara()
		ctx.emit(renderListItem(it, ctx.opts))
		return
	}
	if isHorizontalRule(trimmed) {
		ctx.flushPara()
		c := ctx.opts.Theme.Colors()
		ctx.emit(fmt.Sprintf(`<hr style="border:none;border-top:2px solid %s;margin:%sem 0;">`,
			c.Rule, trimFloat(ctx.opts.Layout.BlockSpacing*1.5)))
		return
	}
	if level, content, ok := parseHeading(trimmed); ok {
		ctx.flushPara()
		ctx.emit(ctx.renderHeading(level, content))
		return
	}
	if strings.HasPrefix(trimmed, ">") {
		ctx.flushPara()
		ctx.inBlockquote = true
		ctx.quoteLines = []string{line}
		return
	}
	if trimmed == "" {
		ctx.flushPara()
		return
	}
	ctx.paraLines = append(ctx.paraLines, trimmed)
}

// finish flushes every open buffer: unterminated code, math, quote and
// table content is rendered rather than dropped.
func (ctx *parseContext) finish() {
	if ctx.inCodeBlock {
		ctx.emit(renderCodeBlock(ctx.codeLines, ctx.codeLang, ctx.opts))
		ctx.inCodeBlock = false
	}
	if ctx.inMathBlock {
		ctx.emit(renderMathBlock(strings.Join(ctx.mathLines, "\n"), ctx.opts))
		ctx.inMathBlock = false
	}
	if ctx.inBlockquote {
		ctx.flushQuote()
	}
	emitted, replay := ctx.table.finish(ctx.opts)
	ctx.emit(emitted)
	for _, r := range replay {
		ctx.handleLine(r, false)
	}
	ctx.flushPara()
}

func (ctx *parseContext) flushPara() {
	if len(ctx.paraLines) == 0 {
		return
	}
	rendered := make([]string, len(ctx.paraLines))
	for i, l := range ctx.paraLines {
		rendered[i] = renderInline(l, ctx.opts)
	}
	ctx.paraLines = nil
	ctx.emit(fmt.Sprintf(`<p style="margin:%sem 0;">%s</p>`,
		trimFloat(ctx.opts.Layout.BlockSpacing), strings.Join(rendered, "<br>")))
}

func isHorizontalRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	ch := trimmed[0]
	if ch != '-' && ch != '*' && ch != '_' {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != ch {
			return false
		}
	}
	return true
}

func parseHeading(trimmed string) (int, string, bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level > 6 {
		return 0, "", false
	}
	if level >= len(trimmed) || trimmed[level] != ' ' {
		return 0, "", false
	}
	content := strings.TrimSpace(trimmed[level+1:])
	if content == "" {
		return 0, "", false
	}
	return level, content, true
}

func (ctx *parseContext) renderHeading(level int, content string) string {
	opts := ctx.opts
	c := opts.Theme.Colors()
	size := float64(opts.Font.Size) * opts.Layout.HeadingScale[level-1]
	slug := ctx.slugFor(content)
	return fmt.Sprintf(`<h%d id="%s" style="color:%s;font-size:%s;line-height:%s;font-weight:700;margin:%sem 0 %sem;">%s</h%d>`,
		level, slug, c.Heading, px(size), trimFloat(opts.Layout.HeadingLineHeight),
		trimFloat(opts.Layout.BlockSpacing*1.2), trimFloat(opts.Layout.BlockSpacing*0.6),
		renderInline(content, opts), level)
}

// slugFor derives a heading anchor id: lowercase, whitespace to hyphens,
// punctuation dropped, numeric suffix on duplicates within the call.
func (ctx *parseContext) slugFor(content string) string {
	slug := slugify(content)
	ctx.slugs[slug]++
	if n := ctx.slugs[slug]; n > 1 {
		return fmt.Sprintf("%s-%d", slug, n)
	}
	return slug
}

func slugify(text string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "section"
	}
	return slug
}

func (ctx *parseContext) flushQuote() {
	lines := trimTrailingBlankLines(ctx.quoteLines)
	ctx.inBlockquote = false
	ctx.quoteLines = nil
	if len(lines) == 0 {
		return
	}
	ctx.emit(ctx.renderQuote(lines, 1))
}

func trimTrailingBlankLines(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

// stripQuoteLevel removes one leading '>' marker (and one following
// space) from a quote line.
func stripQuoteLevel(line string) string {
	rest := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(rest, ">") {
		return line
	}
	rest = rest[1:]
	if strings.HasPrefix(rest, " ") {
		rest = rest[1:]
	}
	return rest
}

// renderQuote renders buffered quote lines, recursively re-splitting by
// quote depth so nested quotes become nested blockquote elements with
// depth-scaled visual weight.
func (ctx *parseContext) renderQuote(lines []string, depth int) string {
	inner := make([]string, len(lines))
	for i, l := range lines {
		inner[i] = stripQuoteLevel(l)
	}

	var parts []string
	var para []string
	flushP := func() {
		if len(para) == 0 {
			return
		}
		rendered := make([]string, len(para))
		for i, l := range para {
			rendered[i] = renderInline(l, ctx.opts)
		}
		parts = append(parts, fmt.Sprintf(`<p style="margin:0.4em 0;">%s</p>`, strings.Join(rendered, "<br>")))
		para = nil
	}

	for i := 0; i < len(inner); {
		l := inner[i]
		if strings.HasPrefix(strings.TrimLeft(l, " \t"), ">") {
			flushP()
			var nested []string
			for i < len(inner) && (strings.HasPrefix(strings.TrimLeft(inner[i], " \t"), ">") || strings.TrimSpace(inner[i]) == "") {
				nested = append(nested, inner[i])
				i++
			}
			parts = append(parts, ctx.renderQuote(trimTrailingBlankLines(nested), depth+1))
			continue
		}
		if strings.TrimSpace(l) == "" {
			flushP()
			i++
			continue
		}
		if it, ok := parseListItem(l); ok {
			flushP()
			parts = append(parts, renderListItem(it, ctx.opts))
			i++
			continue
		}
		para = append(para, strings.TrimSpace(l))
		i++
	}
	flushP()

	c := ctx.opts.Theme.Colors()
	barWidth := 4 - depth
	if barWidth < 2 {
		barWidth = 2
	}
	barColor := palette.Darken(c.QuoteBar, (depth-1)*12)
	return fmt.Sprintf(`<blockquote style="margin:%sem 0;padding:8px 16px;border-left:%dpx solid %s;color:%s;background:%s;">%s</blockquote>`,
		trimFloat(ctx.opts.Layout.BlockSpacing), barWidth, barColor, c.Quote,
		palette.Alpha(c.Primary, 0.04), strings.Join(parts, ""))
}
